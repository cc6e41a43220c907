package cart

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AurifyAE/Aurify-backend/db"
)

// FetchUserCart joins the cart lines against the catalog and category
// collections and returns the denormalized view. Line and cart totals in
// the projection are computed from the live product price.
func FetchUserCart(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	if _, err := findCart(ctx, userID); err != nil {
		return nil, err
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "products",
			"localField":   "items.productId",
			"foreignField": "_id",
			"as":           "productDetails",
		}}},
		{{Key: "$unwind", Value: "$productDetails"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "subcategories",
			"localField":   "productDetails.subCategory",
			"foreignField": "_id",
			"as":           "productDetails.subCategoryDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$productDetails.subCategoryDetails", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "maincategories",
			"localField":   "productDetails.subCategoryDetails.mainCategory",
			"foreignField": "_id",
			"as":           "productDetails.mainCategoryDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$productDetails.mainCategoryDetails", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$group", Value: bson.M{
			"_id":    "$_id",
			"userId": bson.M{"$first": "$userId"},
			"items": bson.M{"$push": bson.M{
				"productId": "$items.productId",
				"quantity":  "$items.quantity",
				"productDetails": bson.M{
					"title":        "$productDetails.title",
					"description":  "$productDetails.description",
					"images":       "$productDetails.images",
					"price":        "$productDetails.price",
					"purity":       "$productDetails.purity",
					"sku":          "$productDetails.sku",
					"stock":        "$productDetails.stock",
					"makingCharge": "$productDetails.makingCharge",
					"type":         "$productDetails.type",
					"tags":         "$productDetails.tags",
					"weight":       "$productDetails.weight",
					"subCategory":  "$productDetails.subCategoryDetails.name",
					"mainCategory": "$productDetails.mainCategoryDetails.name",
				},
				"itemTotal": bson.M{"$multiply": bson.A{"$items.quantity", "$productDetails.price"}},
			}},
			"totalPrice": bson.M{"$sum": bson.M{"$multiply": bson.A{"$items.quantity", "$productDetails.price"}}},
			"updatedAt":  bson.M{"$first": "$updatedAt"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id": 1, "userId": 1, "items": 1, "totalPrice": 1, "updatedAt": 1,
		}}},
	}

	cursor, err := db.CartsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []bson.M
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = []bson.M{}
	}
	return result, nil
}
