package wishlist

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/AurifyAE/Aurify-backend/utils"
)

// ToggleItem handles the add/remove endpoint; the action comes from the
// ?action= query parameter.
func ToggleItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := utils.ObjectIDParam(ps, "userId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	productID, err := utils.ObjectIDParam(ps, "productId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	action := Action(r.URL.Query().Get("action"))
	wl, err := Toggle(ctx, userID, adminID, productID, action)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	message := "Added to Wishlist"
	if action == ActionRemove {
		message = "Removed from Wishlist"
	}
	utils.Success(w, http.StatusOK, message, utils.M{"wishlist": wl})
}

// DeleteItem handles the DELETE endpoint.
func DeleteItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := utils.ObjectIDParam(ps, "userId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	productID, err := utils.ObjectIDParam(ps, "productId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	wl, err := RemoveItem(ctx, userID, productID, adminID)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Item deleted successfully from the Wishlist.", utils.M{"wishlist": wl})
}

// GetUserWishlist returns the joined wishlist view.
func GetUserWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := utils.ObjectIDParam(ps, "userId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	info, err := FetchUserWishlist(ctx, userID)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Item fetching successfully from the wishlist.", utils.M{"info": info})
}
