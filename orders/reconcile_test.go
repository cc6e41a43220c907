package orders

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/utils"
)

func newTestOrder(statuses ...models.ItemStatus) *models.Order {
	o := &models.Order{
		ID:          primitive.NewObjectID(),
		UserID:      primitive.NewObjectID(),
		AdminID:     primitive.NewObjectID(),
		OrderStatus: models.OrderProcessing,
	}
	for _, s := range statuses {
		o.Items = append(o.Items, models.OrderItem{
			ID:         primitive.NewObjectID(),
			ProductID:  primitive.NewObjectID(),
			Quantity:   1,
			FixedPrice: 100,
			ItemStatus: s,
		})
	}
	return o
}

func TestDeriveOrderStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.ItemStatus
		want     models.OrderStatus
	}{
		{"all approved", []models.ItemStatus{models.ItemApproved, models.ItemApproved}, models.OrderSuccess},
		{"single approved", []models.ItemStatus{models.ItemApproved}, models.OrderSuccess},
		{"pending user approval wins over pending", []models.ItemStatus{models.ItemApproved, models.ItemUserApprovalPending}, models.OrderUserApprovalPending},
		{"mixed pending defaults to processing", []models.ItemStatus{models.ItemApproved, models.ItemPending}, models.OrderProcessing},
		{"rejected line falls through to processing", []models.ItemStatus{models.ItemApproved, models.ItemRejected}, models.OrderProcessing},
		{"rejected loses to user approval pending", []models.ItemStatus{models.ItemRejected, models.ItemUserApprovalPending}, models.OrderUserApprovalPending},
		{"no lines counts as all approved", nil, models.OrderSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrder(tt.statuses...)
			if got := DeriveOrderStatus(o.Items); got != tt.want {
				t.Fatalf("DeriveOrderStatus = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyLineUpdateOverwritesLineAndTotal(t *testing.T) {
	o := newTestOrder(models.ItemPending, models.ItemPending)
	o.Items[1].Quantity = 2
	o.Items[1].FixedPrice = 50

	needsConfirmation, err := applyLineUpdate(o, LineUpdate{
		ItemID:     o.Items[0].ID,
		Quantity:   3,
		FixedPrice: 200,
		ItemStatus: models.ItemApproved,
	}, time.Now())
	if err != nil {
		t.Fatalf("applyLineUpdate: %v", err)
	}
	if !needsConfirmation {
		t.Fatal("expected confirmation for quantity 3")
	}

	if o.Items[0].Quantity != 3 || o.Items[0].FixedPrice != 200 || o.Items[0].ItemStatus != models.ItemApproved {
		t.Fatalf("line not overwritten: %+v", o.Items[0])
	}
	// total spans every line, not just the updated one: 3*200 + 2*50
	if o.TotalPrice != 700 {
		t.Fatalf("total = %v, want 700", o.TotalPrice)
	}
	if o.OrderStatus != models.OrderProcessing {
		t.Fatalf("status = %q, want %q", o.OrderStatus, models.OrderProcessing)
	}
}

func TestApplyLineUpdateQuantityDefaulting(t *testing.T) {
	tests := []struct {
		name        string
		quantity    int
		wantQty     int
		wantConfirm bool
	}{
		{"zero defaults to one without confirmation", 0, 1, false},
		{"negative defaults to one without confirmation", -4, 1, false},
		{"one stays one without confirmation", 1, 1, false},
		{"two triggers confirmation", 2, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOrder(models.ItemPending)
			confirm, err := applyLineUpdate(o, LineUpdate{
				ItemID:     o.Items[0].ID,
				Quantity:   tt.quantity,
				FixedPrice: 100,
				ItemStatus: models.ItemPending,
			}, time.Now())
			if err != nil {
				t.Fatalf("applyLineUpdate: %v", err)
			}
			if o.Items[0].Quantity != tt.wantQty {
				t.Fatalf("quantity = %d, want %d", o.Items[0].Quantity, tt.wantQty)
			}
			if confirm != tt.wantConfirm {
				t.Fatalf("confirmation = %v, want %v", confirm, tt.wantConfirm)
			}
		})
	}
}

func TestApplyLineUpdateStampsNotificationTime(t *testing.T) {
	o := newTestOrder(models.ItemPending, models.ItemApproved)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	_, err := applyLineUpdate(o, LineUpdate{
		ItemID:     o.Items[0].ID,
		Quantity:   1,
		FixedPrice: 100,
		ItemStatus: models.ItemUserApprovalPending,
	}, now)
	if err != nil {
		t.Fatalf("applyLineUpdate: %v", err)
	}

	if o.OrderStatus != models.OrderUserApprovalPending {
		t.Fatalf("status = %q, want %q", o.OrderStatus, models.OrderUserApprovalPending)
	}
	if o.NotificationSentAt == nil || !o.NotificationSentAt.Equal(now) {
		t.Fatalf("notificationSentAt = %v, want %v", o.NotificationSentAt, now)
	}

	// a later update that leaves user-approval state keeps the old stamp
	later := now.Add(time.Hour)
	_, err = applyLineUpdate(o, LineUpdate{
		ItemID:     o.Items[0].ID,
		Quantity:   1,
		FixedPrice: 100,
		ItemStatus: models.ItemApproved,
	}, later)
	if err != nil {
		t.Fatalf("applyLineUpdate: %v", err)
	}
	if o.OrderStatus != models.OrderSuccess {
		t.Fatalf("status = %q, want %q", o.OrderStatus, models.OrderSuccess)
	}
	if o.NotificationSentAt == nil || !o.NotificationSentAt.Equal(now) {
		t.Fatalf("notificationSentAt changed to %v, want %v kept", o.NotificationSentAt, now)
	}
}

func TestApplyLineUpdateUnknownItem(t *testing.T) {
	o := newTestOrder(models.ItemPending)
	_, err := applyLineUpdate(o, LineUpdate{
		ItemID:     primitive.NewObjectID(),
		Quantity:   2,
		FixedPrice: 100,
		ItemStatus: models.ItemApproved,
	}, time.Now())
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
