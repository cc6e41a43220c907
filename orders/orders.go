package orders

import (
	"context"
	"time"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/products"
	"github.com/AurifyAE/Aurify-backend/rdx"
	"github.com/AurifyAE/Aurify-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func loadOrder(ctx context.Context, orderID primitive.ObjectID, out *models.Order) error {
	err := db.OrdersCollection.FindOne(ctx, bson.M{"_id": orderID}).Decode(out)
	if err == mongo.ErrNoDocuments {
		return utils.NotFoundf("order not found")
	}
	return err
}

// UpdateOrderStatus sets the order-level status and remark directly,
// bypassing derivation from the line items.
func UpdateOrderStatus(ctx context.Context, orderID primitive.ObjectID, status models.OrderStatus, remark string) (*models.Order, error) {
	update := bson.M{"orderStatus": status}
	if remark != "" {
		update["orderRemark"] = remark
	}

	var order models.Order
	err := db.OrdersCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("order not found")
		}
		return nil, err
	}

	rdx.Invalidate(ctx, "bookings:"+order.AdminID.Hex())
	return &order, nil
}

// RejectOrder marks the whole order rejected, including every line item,
// with the admin's remark explaining why.
func RejectOrder(ctx context.Context, orderID primitive.ObjectID, remark string) (*models.Order, error) {
	var order models.Order
	err := db.OrdersCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": orderID},
		bson.M{"$set": bson.M{
			"orderStatus":          models.OrderRejected,
			"orderRemark":          remark,
			"items.$[].itemStatus": models.ItemRejected,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("order not found")
		}
		return nil, err
	}

	rdx.Invalidate(ctx, "bookings:"+order.AdminID.Hex())
	return &order, nil
}

// PlaceOrderInput carries the checkout choices alongside the identities.
type PlaceOrderInput struct {
	PaymentMethod  string
	PricingOption  string
	PremiumAmount  float64
	DiscountAmount float64
	DeliveryDate   *time.Time
}

// PlaceOrder converts the user's cart into an order. Prices are fixed at
// the catalog price in effect right now; lines start pending and the
// order starts processing. The cart is emptied, not deleted.
func PlaceOrder(ctx context.Context, userID, adminID primitive.ObjectID, in PlaceOrderInput) (*models.Order, error) {
	var cart models.Cart
	err := db.CartsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("cart does not exist for the user")
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, utils.InvalidOperationf("cannot place an order from an empty cart")
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, it := range cart.Items {
		ids = append(ids, it.ProductID)
	}
	prices, err := products.PriceMap(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]models.OrderItem, 0, len(cart.Items))
	total := 0.0
	for _, it := range cart.Items {
		price, ok := prices[it.ProductID]
		if !ok {
			return nil, utils.NotFoundf("product %s no longer exists", it.ProductID.Hex())
		}
		items = append(items, models.OrderItem{
			ID:         primitive.NewObjectID(),
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			FixedPrice: price,
			ItemStatus: models.ItemPending,
		})
		total += float64(it.Quantity) * price
	}

	order := models.Order{
		ID:             primitive.NewObjectID(),
		OrderNumber:    utils.OrderNumber(),
		UserID:         userID,
		AdminID:        adminID,
		Items:          items,
		TotalPrice:     total,
		OrderStatus:    models.OrderProcessing,
		PaymentStatus:  "Pending",
		PaymentMethod:  in.PaymentMethod,
		TransactionID:  utils.GetUUID(),
		PricingOption:  in.PricingOption,
		PremiumAmount:  in.PremiumAmount,
		DiscountAmount: in.DiscountAmount,
		OrderDate:      now,
		DeliveryDate:   in.DeliveryDate,
	}

	if _, err := db.OrdersCollection.InsertOne(ctx, order); err != nil {
		return nil, err
	}

	cart.Items = nil
	cart.TotalPrice = 0
	cart.UpdatedAt = now
	if _, err := db.CartsCollection.ReplaceOne(ctx, bson.M{"userId": userID}, cart); err != nil {
		return nil, err
	}

	rdx.Invalidate(ctx, "bookings:"+adminID.Hex())
	return &order, nil
}
