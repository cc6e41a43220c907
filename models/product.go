package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog record. Price is mutated only through the
// fix-prices flow; the cart and order engines treat it as read-only.
type Product struct {
	ID           primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	Title        string              `json:"title" bson:"title"`
	Description  string              `json:"description,omitempty" bson:"description,omitempty"`
	SKU          string              `json:"sku" bson:"sku"`
	Type         string              `json:"type,omitempty" bson:"type,omitempty"`
	Tags         string              `json:"tags,omitempty" bson:"tags,omitempty"` // "Best Seller", "New Arrival", "Top Rated"
	Images       []string            `json:"images,omitempty" bson:"images,omitempty"`
	Price        float64             `json:"price" bson:"price"`
	Weight       float64             `json:"weight" bson:"weight"`
	Purity       string              `json:"purity" bson:"purity"`
	Stock        int                 `json:"stock" bson:"stock"`
	MakingCharge float64             `json:"makingCharge" bson:"makingCharge"`
	SubCategory  *primitive.ObjectID `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	AddedBy      *primitive.ObjectID `json:"addedBy,omitempty" bson:"addedBy,omitempty"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt" bson:"updatedAt"`
}

type MainCategory struct {
	ID              primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	Name            string              `json:"name" bson:"name"`
	Image           string              `json:"image,omitempty" bson:"image,omitempty"`
	CreatedBy       *primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	CreatedByUserID *primitive.ObjectID `json:"createdByUserId,omitempty" bson:"createdByUserId,omitempty"`
}

type SubCategory struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	MainCategory primitive.ObjectID `json:"mainCategory" bson:"mainCategory"`
}
