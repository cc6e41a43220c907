package wishlist

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/products"
	"github.com/AurifyAE/Aurify-backend/utils"
)

// Action selects what Toggle should do with the product.
type Action string

const (
	ActionAdd    Action = "add"
	ActionRemove Action = "remove"
)

// Toggle adds or removes a product reference. Adding a present product is
// a conflict; removing an absent one is not found. The product must belong
// to the admin the request was made under.
func Toggle(ctx context.Context, userID, adminID, productID primitive.ObjectID, action Action) (*models.Wishlist, error) {
	if _, err := products.FindOwned(ctx, productID, adminID); err != nil {
		return nil, err
	}

	var wl models.Wishlist
	err := db.WishlistsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&wl)
	if err == mongo.ErrNoDocuments {
		wl = models.Wishlist{UserID: userID, Items: []models.WishlistItem{}}
	} else if err != nil {
		return nil, err
	}

	idx := wl.FindItem(productID)
	switch action {
	case ActionAdd:
		if idx != -1 {
			return nil, utils.Conflictf("product already in wishlist")
		}
		wl.Items = append(wl.Items, models.WishlistItem{ProductID: productID})
	case ActionRemove:
		if idx == -1 {
			return nil, utils.NotFoundf("product not found in wishlist")
		}
		wl.Items = append(wl.Items[:idx], wl.Items[idx+1:]...)
	default:
		return nil, utils.InvalidOperationf("invalid action specified")
	}

	wl.UpdatedAt = time.Now()
	_, err = db.WishlistsCollection.ReplaceOne(ctx,
		bson.M{"userId": userID},
		&wl,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return &wl, nil
}

// RemoveItem deletes one product reference via a targeted $pull.
func RemoveItem(ctx context.Context, userID, productID, adminID primitive.ObjectID) (*models.Wishlist, error) {
	var wl models.Wishlist
	err := db.WishlistsCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&wl)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundf("wishlist not found")
	}
	if err != nil {
		return nil, err
	}

	if _, err := products.FindOwned(ctx, productID, adminID); err != nil {
		return nil, err
	}

	var updated models.Wishlist
	err = db.WishlistsCollection.FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{"$pull": bson.M{"items": bson.M{"productId": productID}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundf("wishlist not found or product was not in wishlist")
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FetchUserWishlist joins the wishlist against the catalog and category
// collections, mirroring the cart view without quantities or totals.
func FetchUserWishlist(ctx context.Context, userID primitive.ObjectID) ([]bson.M, error) {
	count, err := db.WishlistsCollection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, utils.NotFoundf("wishlist not found")
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
				"productDetails": bson.M{
					"title":        "$productDetails.title",
					"description":  "$productDetails.description",
					"images":       "$productDetails.images",
					"price":        "$productDetails.price",
					"purity":       "$productDetails.purity",
					"type":         "$productDetails.type",
					"tags":         "$productDetails.tags",
					"sku":          "$productDetails.sku",
					"stock":        "$productDetails.stock",
					"makingCharge": "$productDetails.makingCharge",
					"weight":       "$productDetails.weight",
					"subCategory":  "$productDetails.subCategoryDetails.name",
					"mainCategory": "$productDetails.mainCategoryDetails.name",
				},
			}},
			"updatedAt": bson.M{"$first": "$updatedAt"},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id": 1, "userId": 1, "items": 1, "updatedAt": 1,
		}}},
	}

	cursor, err := db.WishlistsCollection.Aggregate(ctx, pipeline)
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
