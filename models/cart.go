package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one product line in a user's cart. A cart never holds two
// lines for the same productId, and a stored line always has quantity >= 1.
type CartItem struct {
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice"`
}

// Cart is owned by exactly one user. TotalPrice is derived from the lines
// and recomputed on every mutation; it is never set directly.
type Cart struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId"`
	Items      []CartItem         `json:"items" bson:"items"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// FindItem returns the index of the line holding productID, or -1.
func (c *Cart) FindItem(productID primitive.ObjectID) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

type WishlistItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
}

// Wishlist carries no quantities or totals, only product references.
type Wishlist struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Items     []WishlistItem     `json:"items" bson:"items"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

func (w *Wishlist) FindItem(productID primitive.ObjectID) int {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
