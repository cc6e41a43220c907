package cart

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/utils"
)

// setQuantity is the set/replace mutation: when the existing line holds
// exactly one unit the passed quantity replaces it, otherwise it is added.
// A resulting quantity <= 0 removes the line.
func setQuantity(c *models.Cart, productID primitive.ObjectID, qty int) error {
	idx := c.FindItem(productID)
	if idx == -1 {
		if qty <= 0 {
			return utils.InvalidOperationf("cannot decrement a non-existing item in the cart")
		}
		c.Items = append(c.Items, models.CartItem{ProductID: productID, Quantity: qty})
		return nil
	}

	if c.Items[idx].Quantity == 1 {
		c.Items[idx].Quantity = qty
	} else {
		c.Items[idx].Quantity += qty
	}

	if c.Items[idx].Quantity <= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	}
	return nil
}

// incrementQuantity is the plain increment/decrement mutation. A resulting
// quantity <= 0 removes the line; decrementing an absent line is invalid.
func incrementQuantity(c *models.Cart, productID primitive.ObjectID, delta int) error {
	idx := c.FindItem(productID)
	if idx == -1 {
		if delta <= 0 {
			return utils.InvalidOperationf("cannot decrement non-existing product in cart")
		}
		c.Items = append(c.Items, models.CartItem{ProductID: productID, Quantity: delta})
		return nil
	}

	c.Items[idx].Quantity += delta
	if c.Items[idx].Quantity <= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	}
	return nil
}

// recomputeTotals refreshes every line total and the cart total from the
// current catalog prices. Stale per-line unit prices are never trusted.
func recomputeTotals(c *models.Cart, prices map[primitive.ObjectID]float64) {
	total := 0.0
	for i := range c.Items {
		c.Items[i].TotalPrice = float64(c.Items[i].Quantity) * prices[c.Items[i].ProductID]
		total += c.Items[i].TotalPrice
	}
	c.TotalPrice = total
}
