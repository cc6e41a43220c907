package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AurifyAE/Aurify-backend/utils"
)

func pathIDs(ps httprouter.Params) (userID, adminID, productID primitive.ObjectID, err error) {
	if userID, err = utils.ObjectIDParam(ps, "userId"); err != nil {
		return
	}
	if adminID, err = utils.ObjectIDParam(ps, "adminId"); err != nil {
		return
	}
	productID, err = utils.ObjectIDParam(ps, "productId")
	return
}

// quantityBody reads an optional {quantity} payload, defaulting when the
// body is empty or the field absent.
func quantityBody(r *http.Request, def int) (int, error) {
	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return def, nil
		}
		return 0, utils.InvalidOperationf("invalid JSON payload")
	}
	if body.Quantity == nil {
		return def, nil
	}
	return *body.Quantity, nil
}

// AddItemToCart handles the first-add POST.
func AddItemToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, adminID, productID, err := pathIDs(ps)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	c, err := AddProduct(ctx, userID, adminID, productID)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Item successfully added to cart", utils.M{"cart": c})
}

// IncrementCartItem applies a positive delta (default +1).
func IncrementCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, adminID, productID, err := pathIDs(ps)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	qty, err := quantityBody(r, 1)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	c, err := ApplyDelta(ctx, userID, adminID, productID, qty)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Item successfully added to cart", utils.M{"cart": c})
}

// DecrementCartItem applies a negative delta (default -1).
func DecrementCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, adminID, productID, err := pathIDs(ps)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	qty, err := quantityBody(r, -1)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	c, err := ApplyDelta(ctx, userID, adminID, productID, qty)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Item successfully removed from cart", utils.M{"cart": c})
}

// SetCartItemQuantity is the PUT set-quantity endpoint; the body must
// carry a nonzero integer quantity.
func SetCartItemQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, adminID, productID, err := pathIDs(ps)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Quantity == nil || *body.Quantity == 0 {
		utils.Fail(w, http.StatusBadRequest, "quantity must be a nonzero integer")
		return
	}

	c, err := SetQuantity(ctx, userID, adminID, productID, *body.Quantity)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Cart updated successfully", utils.M{"cart": c})
}

// DeleteCartItem removes one line under the admin's ownership guard.
func DeleteCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, adminID, productID, err := pathIDs(ps)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	c, err := RemoveItem(ctx, userID, productID, adminID)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Item deleted successfully from the cart.", utils.M{"cart": c})
}

// GetUserCart returns the joined cart view.
func GetUserCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := utils.ObjectIDParam(ps, "userId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	info, err := FetchUserCart(ctx, userID)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Item fetching successfully from the cart.", utils.M{"info": info})
}
