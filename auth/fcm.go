package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/utils"
)

// RegisterFCMToken handles POST /register-fcm/:userId with {fcmToken}.
// Tokens accumulate per user, one per device; re-registering the same
// token is a no-op.
func RegisterFCMToken(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := utils.ObjectIDParam(ps, "userId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var body struct {
		FCMToken string `json:"fcmToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.FCMToken == "" {
		utils.Fail(w, http.StatusBadRequest, "fcmToken is required")
		return
	}

	_, err = db.FCMTokensCollection.UpdateOne(ctx,
		bson.M{"createdBy": userID},
		bson.M{"$addToSet": bson.M{"fcmTokens": bson.M{"token": body.FCMToken}}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		utils.Fail(w, http.StatusInternalServerError, "Failed to register FCM token")
		return
	}

	utils.Success(w, http.StatusOK, "FCM token registered successfully", nil)
}
