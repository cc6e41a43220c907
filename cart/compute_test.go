package cart

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/utils"
)

func newTestCart(items ...models.CartItem) *models.Cart {
	return &models.Cart{UserID: primitive.NewObjectID(), Items: items}
}

func TestSetQuantityReplaceVsAdd(t *testing.T) {
	productID := primitive.NewObjectID()

	tests := []struct {
		name     string
		existing int
		qty      int
		want     int
	}{
		{"existing one unit replaces", 1, 5, 5},
		{"existing many units adds", 3, 5, 8},
		{"existing many units negative decrements", 4, -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCart(models.CartItem{ProductID: productID, Quantity: tt.existing})
			if err := setQuantity(c, productID, tt.qty); err != nil {
				t.Fatalf("setQuantity: %v", err)
			}
			idx := c.FindItem(productID)
			if idx == -1 {
				t.Fatal("item unexpectedly removed")
			}
			if got := c.Items[idx].Quantity; got != tt.want {
				t.Fatalf("quantity = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSetQuantityRemovesOnNonPositive(t *testing.T) {
	productID := primitive.NewObjectID()

	// 1 unit, set -2: replace leaves -2, which removes the line
	c := newTestCart(models.CartItem{ProductID: productID, Quantity: 1})
	if err := setQuantity(c, productID, -2); err != nil {
		t.Fatalf("setQuantity: %v", err)
	}
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(c.Items))
	}

	// 3 units, add -3: exact zero removes the line
	c = newTestCart(models.CartItem{ProductID: productID, Quantity: 3})
	if err := setQuantity(c, productID, -3); err != nil {
		t.Fatalf("setQuantity: %v", err)
	}
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(c.Items))
	}
}

func TestSetQuantityAbsentLine(t *testing.T) {
	productID := primitive.NewObjectID()

	c := newTestCart()
	if err := setQuantity(c, productID, 2); err != nil {
		t.Fatalf("setQuantity: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", c.Items)
	}

	c = newTestCart()
	err := setQuantity(c, productID, -1)
	if !errors.Is(err, utils.ErrInvalidOperation) {
		t.Fatalf("expected invalid operation, got %v", err)
	}
	err = setQuantity(c, productID, 0)
	if !errors.Is(err, utils.ErrInvalidOperation) {
		t.Fatalf("expected invalid operation for zero, got %v", err)
	}
}

func TestIncrementQuantity(t *testing.T) {
	productID := primitive.NewObjectID()

	// plain add regardless of current quantity
	c := newTestCart(models.CartItem{ProductID: productID, Quantity: 1})
	if err := incrementQuantity(c, productID, 4); err != nil {
		t.Fatalf("incrementQuantity: %v", err)
	}
	if got := c.Items[0].Quantity; got != 5 {
		t.Fatalf("quantity = %d, want 5", got)
	}

	// decrement to zero removes
	if err := incrementQuantity(c, productID, -5); err != nil {
		t.Fatalf("incrementQuantity: %v", err)
	}
	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart after decrement to zero, got %+v", c.Items)
	}

	// decrement of an absent line is invalid
	err := incrementQuantity(c, productID, -1)
	if !errors.Is(err, utils.ErrInvalidOperation) {
		t.Fatalf("expected invalid operation, got %v", err)
	}

	// positive delta on an absent line creates it
	if err := incrementQuantity(c, productID, 2); err != nil {
		t.Fatalf("incrementQuantity: %v", err)
	}
	if len(c.Items) != 1 || c.Items[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", c.Items)
	}
}

func TestRecomputeTotalsUsesCurrentPrices(t *testing.T) {
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	c := newTestCart(
		models.CartItem{ProductID: p1, Quantity: 2, TotalPrice: 999}, // stale line total
		models.CartItem{ProductID: p2, Quantity: 3},
	)
	prices := map[primitive.ObjectID]float64{p1: 10.5, p2: 4}

	recomputeTotals(c, prices)

	if got := c.Items[0].TotalPrice; got != 21 {
		t.Fatalf("line 1 total = %v, want 21", got)
	}
	if got := c.Items[1].TotalPrice; got != 12 {
		t.Fatalf("line 2 total = %v, want 12", got)
	}
	if got := c.TotalPrice; got != 33 {
		t.Fatalf("cart total = %v, want 33", got)
	}

	// empty cart totals to zero
	c.Items = nil
	recomputeTotals(c, prices)
	if c.TotalPrice != 0 {
		t.Fatalf("empty cart total = %v, want 0", c.TotalPrice)
	}
}
