package orders

import (
	"context"
	"time"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/rdx"
	"github.com/AurifyAE/Aurify-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const bookingCacheTTL = 30 * time.Second

// FetchBookingDetails returns every order under the admin, newest first,
// with the customer profile and product details joined in. Results are
// cached briefly; order mutations invalidate the cache.
func FetchBookingDetails(ctx context.Context, adminID primitive.ObjectID) ([]bson.M, error) {
	cacheKey := "bookings:" + adminID.Hex()
	var cached []bson.M
	if rdx.GetJSON(ctx, cacheKey, &cached) {
		return cached, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"adminId": adminID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "customerDetails",
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from": "products",
			"let":  bson.M{"orderItems": "$items"},
			"pipeline": mongo.Pipeline{
				{{Key: "$match", Value: bson.M{
					"$expr": bson.M{"$in": bson.A{"$_id", bson.M{
						"$map": bson.M{
							"input": "$$orderItems",
							"as":    "item",
							"in":    "$$item.productId",
						},
					}}},
				}}},
				{{Key: "$project", Value: bson.M{
					"_id":          1,
					"title":        1,
					"price":        1,
					"images":       1,
					"sku":          1,
					"type":         1,
					"weight":       1,
					"purity":       1,
					"makingCharge": 1,
				}}},
			},
			"as": "productDetails",
		}}},
		{{Key: "$project", Value: bson.M{
			"orderNumber":        1,
			"totalPrice":         1,
			"orderStatus":        1,
			"orderRemark":        1,
			"paymentStatus":      1,
			"paymentMethod":      1,
			"transactionId":      1,
			"pricingOption":      1,
			"premiumAmount":      1,
			"discountAmount":     1,
			"orderDate":          1,
			"deliveryDate":       1,
			"notificationSentAt": 1,
			"customer": bson.M{"$let": bson.M{
				"vars": bson.M{"cust": bson.M{"$arrayElemAt": bson.A{"$customerDetails", 0}}},
				"in": bson.M{
					"_id":     "$$cust._id",
					"name":    "$$cust.name",
					"contact": "$$cust.contact",
					"email":   "$$cust.email",
				},
			}},
			"items": bson.M{"$map": bson.M{
				"input": "$items",
				"as":    "item",
				"in": bson.M{"$let": bson.M{
					"vars": bson.M{"product": bson.M{"$first": bson.M{
						"$filter": bson.M{
							"input": "$productDetails",
							"as":    "p",
							"cond":  bson.M{"$eq": bson.A{"$$p._id", "$$item.productId"}},
						},
					}}},
					"in": bson.M{
						"_id":            "$$item._id",
						"productId":      "$$item.productId",
						"quantity":       "$$item.quantity",
						"fixedPrice":     "$$item.fixedPrice",
						"itemStatus":     "$$item.itemStatus",
						"productDetails": "$$product",
					},
				}},
			}},
		}}},
		{{Key: "$sort", Value: bson.M{"orderDate": -1}}},
	}

	cursor, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []bson.M
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, utils.NotFoundf("no orders found for this admin")
	}

	rdx.SetJSON(ctx, cacheKey, bookings, bookingCacheTTL)
	return bookings, nil
}

// FetchUserOrders lists the customer's own orders, newest first.
func FetchUserOrders(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.M{"orderDate": -1}}},
	}

	cursor, err := db.OrdersCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []bson.M
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, utils.NotFoundf("no orders found for this user")
	}
	return orders, nil
}
