package content

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/utils"
)

// GetBanners handles GET /banners/:adminId.
func GetBanners(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	cursor, err := db.BannersCollection.Find(ctx, bson.M{"createdBy": adminID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to fetch banners")
		return
	}
	defer cursor.Close(ctx)

	banners := []models.Banner{}
	if err := cursor.All(ctx, &banners); err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to fetch banners")
		return
	}

	utils.Success(w, http.StatusOK, "Banners fetched successfully", utils.M{"data": banners})
}

// GetNews handles GET /news/:adminId.
func GetNews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	cursor, err := db.NewsCollection.Find(ctx, bson.M{"createdBy": adminID},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}
	defer cursor.Close(ctx)

	news := []models.News{}
	if err := cursor.All(ctx, &news); err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}

	utils.Success(w, http.StatusOK, "News fetched successfully", utils.M{"data": news})
}
