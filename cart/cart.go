package cart

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/products"
	"github.com/AurifyAE/Aurify-backend/utils"
)

// findCart loads a user's cart. Returns ErrNotFound when none exists.
func findCart(ctx context.Context, userID primitive.ObjectID) (*models.Cart, error) {
	var c models.Cart
	err := db.CartsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundf("cart does not exist for the user")
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// saveCart persists the whole cart document, stamping updatedAt.
func saveCart(ctx context.Context, c *models.Cart) error {
	c.UpdatedAt = time.Now()
	_, err := db.CartsCollection.ReplaceOne(ctx,
		bson.M{"userId": c.UserID},
		c,
		options.Replace().SetUpsert(true),
	)
	return err
}

// refreshTotals re-reads the current price of every product in the cart
// and recomputes all totals from them.
func refreshTotals(ctx context.Context, c *models.Cart) error {
	ids := make([]primitive.ObjectID, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.ProductID
	}
	prices, err := products.PriceMap(ctx, ids)
	if err != nil {
		return err
	}
	recomputeTotals(c, prices)
	return nil
}

// AddProduct is the first-add entry point: creates the cart on first use
// and refuses a product that is already carted.
func AddProduct(ctx context.Context, userID, adminID, productID primitive.ObjectID) (*models.Cart, error) {
	product, err := products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	c, err := findCart(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		c = &models.Cart{
			UserID:     userID,
			Items:      []models.CartItem{{ProductID: productID, Quantity: 1, TotalPrice: product.Price}},
			TotalPrice: product.Price,
		}
		return c, saveCart(ctx, c)
	}

	if c.FindItem(productID) != -1 {
		return nil, utils.Conflictf("product already exists in cart")
	}

	c.Items = append(c.Items, models.CartItem{ProductID: productID, Quantity: 1})
	if err := refreshTotals(ctx, c); err != nil {
		return nil, err
	}
	return c, saveCart(ctx, c)
}

// SetQuantity is the set/replace entry point. The cart must already exist;
// its absence is a soft not-found result, not an infrastructure fault.
func SetQuantity(ctx context.Context, userID, adminID, productID primitive.ObjectID, qty int) (*models.Cart, error) {
	if _, err := products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	c, err := findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := setQuantity(c, productID, qty); err != nil {
		return nil, err
	}
	if err := refreshTotals(ctx, c); err != nil {
		return nil, err
	}
	return c, saveCart(ctx, c)
}

// ApplyDelta is the increment/decrement entry point. Creates the cart when
// absent so a first positive delta behaves like an add.
func ApplyDelta(ctx context.Context, userID, adminID, productID primitive.ObjectID, delta int) (*models.Cart, error) {
	if _, err := products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	c, err := findCart(ctx, userID)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		c = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}

	if err := incrementQuantity(c, productID, delta); err != nil {
		return nil, err
	}
	if err := refreshTotals(ctx, c); err != nil {
		return nil, err
	}
	return c, saveCart(ctx, c)
}

// RemoveItem deletes one line. The product must belong to the admin the
// request was made under; totals are recomputed from the remaining lines
// using authoritative current prices.
func RemoveItem(ctx context.Context, userID, productID, adminID primitive.ObjectID) (*models.Cart, error) {
	c, err := findCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := products.FindOwned(ctx, productID, adminID); err != nil {
		return nil, err
	}

	idx := c.FindItem(productID)
	if idx == -1 {
		return nil, utils.NotFoundf("product not found in cart")
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)

	if err := refreshTotals(ctx, c); err != nil {
		return nil, err
	}
	return c, saveCart(ctx, c)
}

func isNotFound(err error) bool {
	return errors.Is(err, utils.ErrNotFound)
}
