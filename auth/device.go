package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/utils"
)

func deviceLimit() int {
	if v, err := strconv.Atoi(os.Getenv("DEVICE_LIMIT")); err == nil && v > 0 {
		return v
	}
	return 3
}

// ActivateDevice registers a MAC address under the admin. The count
// check and the insert run in one transaction so two concurrent
// activations cannot both squeeze under the limit.
func ActivateDevice(ctx context.Context, adminID primitive.ObjectID, mac string) error {
	session, err := db.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var doc models.DeviceDoc
		err := db.DevicesCollection.FindOne(sc, bson.M{"adminId": adminID}).Decode(&doc)
		if err != nil && err != mongo.ErrNoDocuments {
			return nil, err
		}

		for _, d := range doc.Devices {
			if d.MacAddress == mac {
				return nil, utils.Conflictf("device already activated")
			}
		}
		if len(doc.Devices) >= deviceLimit() {
			return nil, utils.InvalidOperationf("device limit reached for this admin")
		}

		_, err = db.DevicesCollection.UpdateOne(sc,
			bson.M{"adminId": adminID},
			bson.M{"$push": bson.M{"devices": models.Device{
				MacAddress: mac,
				AddedAt:    time.Now(),
			}}},
			options.Update().SetUpsert(true),
		)
		return nil, err
	})
	return err
}

// ActivateDeviceHandler handles POST /activate-device/:adminId with
// {macAddress}.
func ActivateDeviceHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	adminID, err := utils.ObjectIDParam(ps, "adminId")
	if err != nil {
		utils.FailFromError(w, err)
		return
	}

	var body struct {
		MacAddress string `json:"macAddress"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.MacAddress == "" {
		utils.Fail(w, http.StatusBadRequest, "macAddress is required")
		return
	}

	if err := ActivateDevice(ctx, adminID, body.MacAddress); err != nil {
		utils.FailFromError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, "Device activated successfully", nil)
}
