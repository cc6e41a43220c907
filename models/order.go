package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ItemStatus is the approval state of a single order line.
type ItemStatus string

const (
	ItemPending              ItemStatus = "Pending"
	ItemApproved             ItemStatus = "Approved"
	ItemUserApprovalPending  ItemStatus = "User Approval Pending"
	ItemRejected             ItemStatus = "Rejected"
)

// OrderStatus is derived from the line statuses; it is never written
// independently by the reconciliation flow.
type OrderStatus string

const (
	OrderProcessing          OrderStatus = "Processing"
	OrderUserApprovalPending OrderStatus = "User Approval Pending"
	OrderSuccess             OrderStatus = "Success"
	OrderRejected            OrderStatus = "Rejected"
)

// OrderItem is one product line in an order. FixedPrice is the price locked
// at order (or reconciliation) time, distinct from the live catalog price.
type OrderItem struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	ProductID  primitive.ObjectID `json:"productId" bson:"productId"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	FixedPrice float64            `json:"fixedPrice" bson:"fixedPrice"`
	ItemStatus ItemStatus         `json:"itemStatus" bson:"itemStatus"`
}

// Order is a purchase record. TotalPrice always equals the sum of
// quantity * fixedPrice over all items after any committed mutation.
type Order struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrderNumber        string             `json:"orderNumber" bson:"orderNumber"`
	UserID             primitive.ObjectID `json:"userId" bson:"userId"`
	AdminID            primitive.ObjectID `json:"adminId" bson:"adminId"`
	Items              []OrderItem        `json:"items" bson:"items"`
	TotalPrice         float64            `json:"totalPrice" bson:"totalPrice"`
	OrderStatus        OrderStatus        `json:"orderStatus" bson:"orderStatus"`
	OrderRemark        string             `json:"orderRemark,omitempty" bson:"orderRemark,omitempty"`
	PaymentStatus      string             `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	PaymentMethod      string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	TransactionID      string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	PricingOption      string             `json:"pricingOption,omitempty" bson:"pricingOption,omitempty"`
	PremiumAmount      float64            `json:"premiumAmount,omitempty" bson:"premiumAmount,omitempty"`
	DiscountAmount     float64            `json:"discountAmount,omitempty" bson:"discountAmount,omitempty"`
	OrderDate          time.Time          `json:"orderDate" bson:"orderDate"`
	DeliveryDate       *time.Time         `json:"deliveryDate,omitempty" bson:"deliveryDate,omitempty"`
	NotificationSentAt *time.Time         `json:"notificationSentAt,omitempty" bson:"notificationSentAt,omitempty"`
}

// FindItem returns the index of the line with the given id, or -1.
func (o *Order) FindItem(itemID primitive.ObjectID) int {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}
