package products

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AurifyAE/Aurify-backend/rdx"
	"github.com/AurifyAE/Aurify-backend/spotrate"
	"github.com/AurifyAE/Aurify-backend/utils"
)

func GetMainCategoryProducts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	mainCateID, err := utils.ObjectIDParam(ps, "mainCateId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	result, err := FetchByMainCategory(ctx, mainCateID)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Fetching products successfully", utils.M{"info": result})
}

func GetAdminProducts(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	result, err := FetchForAdmin(ctx, adminID)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Fetching products successfully", utils.M{"info": result})
}

func shelfHandler(tag string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := FetchShelf(ctx, tag)
		if err != nil {
			utils.FailFromError(w, err)
			return
		}
		utils.Success(w, http.StatusOK, "Fetching products successfully", utils.M{"result": result})
	}
}

var (
	GetBestSeller = shelfHandler("Best Seller")
	GetNewArrival = shelfHandler("New Arrival")
	GetTopRated   = shelfHandler("Top Rated")
)

func GetViewAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, limit := utils.ParsePagination(r, 10, 100)

	filters := ListFilters{Tags: r.URL.Query().Get("tags")}
	if raw := r.URL.Query().Get("mainCategory"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			utils.Fail(w, http.StatusBadRequest, "invalid mainCategory")
			return
		}
		filters.MainCategory = &id
	}
	if raw := r.URL.Query().Get("adminId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			utils.Fail(w, http.StatusBadRequest, "invalid adminId")
			return
		}
		filters.AdminID = &id
	}

	result, err := FetchAll(ctx, page, limit, filters)
	if err != nil {
		log.Println("GetViewAll aggregate error:", err)
		utils.FailFromError(w, err)
		return
	}
	utils.Success(w, http.StatusOK, "Fetching products successfully", utils.M{
		"result":     result.Products,
		"totalCount": result.TotalCount,
		"totalPages": result.TotalPages,
	})
}

// FixProductPrices locks admin-confirmed prices onto the catalog and
// pushes the new prices to live-rate subscribers.
func FixProductPrices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var fixes []PriceFix
	if err := json.NewDecoder(r.Body).Decode(&fixes); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	updated, err := FixPrices(ctx, fixes)
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	for _, p := range updated {
		spotrate.BroadcastPriceFix(p.ID.Hex(), p.Price)
	}
	rdx.Invalidate(ctx, "products:shelf:Best Seller", "products:shelf:New Arrival", "products:shelf:Top Rated")

	utils.Success(w, http.StatusOK, "Product prices fixed successfully", utils.M{"data": updated})
}
