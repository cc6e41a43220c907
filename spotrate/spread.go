package spotrate

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/utils"
)

// GetSpotRate returns an admin's spread configuration.
func GetSpotRate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var rate models.SpotRate
	err = db.SpotRatesCollection.FindOne(ctx, bson.M{"createdBy": adminID}).Decode(&rate)
	if err == mongo.ErrNoDocuments {
		utils.Fail(w, http.StatusNotFound, "SpotRate data not found")
		return
	}
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.Success(w, http.StatusOK, "Fetching SpotRate successfully", utils.M{"info": rate})
}

// UpdateUserSpread sets the spread applied to one user's live rates and
// notifies the admin's subscribers.
func UpdateUserSpread(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}
	userID, err := utils.ObjectIDParam(ps, "userId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var body struct {
		Spread float64 `json:"spread"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := db.UsersCollection.UpdateOne(ctx,
		bson.M{"_id": userID, "createdBy": adminID},
		bson.M{"$set": bson.M{"spread": body.Spread}},
	)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result.MatchedCount == 0 {
		utils.Fail(w, http.StatusNotFound, "User not found")
		return
	}

	if Live != nil {
		Live.Broadcast(adminID.Hex(), RateUpdate{
			Event:     "spread-update",
			AdminID:   adminID.Hex(),
			Spread:    body.Spread,
			Timestamp: time.Now().Unix(),
		})
	}

	utils.Success(w, http.StatusOK, "Spread updated successfully", nil)
}

// UpsertSpotRate writes an admin's spread configuration.
func UpsertSpotRate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var rate models.SpotRate
	if err := json.NewDecoder(r.Body).Decode(&rate); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if rate.AdminID.IsZero() {
		utils.Fail(w, http.StatusBadRequest, "createdBy is required")
		return
	}
	rate.UpdatedAt = time.Now()

	_, err := db.SpotRatesCollection.UpdateOne(ctx,
		bson.M{"createdBy": rate.AdminID},
		bson.M{"$set": rate},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.Success(w, http.StatusOK, "SpotRate saved successfully", nil)
}
