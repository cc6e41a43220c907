package orders

import (
	"context"
	"log"
	"time"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/notify"
	"github.com/AurifyAE/Aurify-backend/rdx"
	"github.com/AurifyAE/Aurify-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Notifier delivers quantity-confirmation pushes. Assigned in main; a nil
// Notifier means reconciliation proceeds without notifications.
var Notifier notify.Dispatcher

// LineUpdate carries the admin's verdict on a single order line.
type LineUpdate struct {
	ItemID     primitive.ObjectID
	Quantity   int
	FixedPrice float64
	ItemStatus models.ItemStatus
}

// DeriveOrderStatus folds the line statuses into the order status.
// Every line approved wins over a pending user approval, which wins over
// the processing default. An order with no lines counts as all approved.
func DeriveOrderStatus(items []models.OrderItem) models.OrderStatus {
	allApproved := true
	awaitingUser := false
	for _, it := range items {
		if it.ItemStatus != models.ItemApproved {
			allApproved = false
		}
		if it.ItemStatus == models.ItemUserApprovalPending {
			awaitingUser = true
		}
	}
	switch {
	case allApproved:
		return models.OrderSuccess
	case awaitingUser:
		return models.OrderUserApprovalPending
	default:
		return models.OrderProcessing
	}
}

// applyLineUpdate rewrites one line in place and rederives the order
// totals and status. The confirmation flag is decided on the quantity as
// submitted, before it is clamped to a minimum of one, so a zero or
// negative quantity never triggers a push.
func applyLineUpdate(o *models.Order, upd LineUpdate, now time.Time) (needsConfirmation bool, err error) {
	idx := o.FindItem(upd.ItemID)
	if idx == -1 {
		return false, utils.NotFoundf("order item not found")
	}

	needsConfirmation = upd.Quantity > 1

	qty := upd.Quantity
	if qty < 1 {
		qty = 1
	}

	o.Items[idx].Quantity = qty
	o.Items[idx].FixedPrice = upd.FixedPrice
	o.Items[idx].ItemStatus = upd.ItemStatus

	total := 0.0
	for _, it := range o.Items {
		total += float64(it.Quantity) * it.FixedPrice
	}
	o.TotalPrice = total

	o.OrderStatus = DeriveOrderStatus(o.Items)
	if o.OrderStatus == models.OrderUserApprovalPending {
		t := now
		o.NotificationSentAt = &t
	}

	return needsConfirmation, nil
}

// UpdateOrderQuantity reconciles one order line: overwrite quantity,
// fixed price and item status, recompute the order total and status, and
// push a confirmation to the customer when the quantity warrants one.
func UpdateOrderQuantity(ctx context.Context, orderID primitive.ObjectID, upd LineUpdate) (*models.Order, error) {
	unlock := orderLocks.Lock(orderID.Hex())

	order, needsConfirmation, err := func() (*models.Order, bool, error) {
		defer unlock()

		var order models.Order
		if err := loadOrder(ctx, orderID, &order); err != nil {
			return nil, false, err
		}

		needsConfirmation, err := applyLineUpdate(&order, upd, time.Now())
		if err != nil {
			return nil, false, err
		}

		_, err = db.OrdersCollection.ReplaceOne(ctx, bson.M{"_id": orderID}, order)
		if err != nil {
			return nil, false, err
		}
		return &order, needsConfirmation, nil
	}()
	if err != nil {
		return nil, err
	}

	rdx.Invalidate(ctx, "bookings:"+order.AdminID.Hex())

	if needsConfirmation {
		sendQuantityConfirmation(ctx, order, upd.ItemID, upd.Quantity)
	}

	return order, nil
}

// sendQuantityConfirmation fans the push out to every registered device
// of the customer and prunes tokens firebase reports as dead. Delivery
// failures never fail the reconciliation that triggered them.
func sendQuantityConfirmation(ctx context.Context, order *models.Order, itemID primitive.ObjectID, quantity int) {
	if Notifier == nil {
		log.Printf("notification skipped for order %s: no dispatcher configured", order.ID.Hex())
		return
	}

	var doc models.FCMTokenDoc
	err := db.FCMTokensCollection.FindOne(ctx, bson.M{"createdBy": order.UserID}).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("fcm token lookup failed for user %s: %v", order.UserID.Hex(), err)
		}
		return
	}
	if len(doc.FCMTokens) == 0 {
		return
	}

	tokens := make([]string, 0, len(doc.FCMTokens))
	for _, t := range doc.FCMTokens {
		tokens = append(tokens, t.Token)
	}

	invalid := notify.DispatchQuantityConfirmation(ctx, Notifier, tokens, order.ID.Hex(), itemID.Hex(), quantity)
	if len(invalid) == 0 {
		return
	}

	_, err = db.FCMTokensCollection.UpdateOne(ctx,
		bson.M{"createdBy": order.UserID},
		bson.M{"$pull": bson.M{"fcmTokens": bson.M{"token": bson.M{"$in": invalid}}}},
	)
	if err != nil {
		log.Printf("failed to prune %d dead fcm tokens for user %s: %v", len(invalid), order.UserID.Hex(), err)
	}
}
