package products

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AurifyAE/Aurify-backend/db"
	"github.com/AurifyAE/Aurify-backend/models"
	"github.com/AurifyAE/Aurify-backend/rdx"
	"github.com/AurifyAE/Aurify-backend/utils"
)

const shelfCacheTTL = 5 * time.Minute

// FetchShelf returns the three most recent products carrying a shelf tag
// ("Best Seller", "New Arrival", "Top Rated"), cached in redis.
func FetchShelf(ctx context.Context, tag string) ([]models.Product, error) {
	cacheKey := "products:shelf:" + tag

	var cached []models.Product
	if rdx.GetJSON(ctx, cacheKey, &cached) {
		return cached, nil
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(3)
	cursor, err := db.ProductsCollection.Find(ctx, bson.M{"tags": tag}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []models.Product
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, utils.NotFoundf("no '%s' products found", tag)
	}

	rdx.SetJSON(ctx, cacheKey, result, shelfCacheTTL)
	return result, nil
}

// ListFilters narrows the paginated catalog listing.
type ListFilters struct {
	Tags         string
	MainCategory *primitive.ObjectID
	AdminID      *primitive.ObjectID
}

// ListResult is one page of the catalog plus counts.
type ListResult struct {
	Products   []bson.M `json:"products"`
	TotalCount int      `json:"totalCount"`
	TotalPages int      `json:"totalPages"`
}

// FetchAll pages through the catalog with category joins applied, mirroring
// the admin-scoped storefront listing.
func FetchAll(ctx context.Context, page, limit int, filters ListFilters) (*ListResult, error) {
	skip := (page - 1) * limit

	match := bson.M{}
	if filters.Tags != "" {
		match["tags"] = filters.Tags
	}
	if filters.MainCategory != nil {
		match["mainCategoryDetails._id"] = *filters.MainCategory
	}
	if filters.AdminID != nil {
		match["addedBy"] = *filters.AdminID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "subcategories",
			"localField":   "subCategory",
			"foreignField": "_id",
			"as":           "subCategoryDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$subCategoryDetails", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "maincategories",
			"localField":   "subCategoryDetails.mainCategory",
			"foreignField": "_id",
			"as":           "mainCategoryDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$mainCategoryDetails", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$match", Value: match}},
		{{Key: "$facet", Value: bson.M{
			"metadata": bson.A{bson.M{"$count": "totalCount"}},
			"data":     bson.A{bson.M{"$skip": skip}, bson.M{"$limit": limit}},
		}}},
	}

	cursor, err := db.ProductsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pages []struct {
		Metadata []struct {
			TotalCount int `bson:"totalCount"`
		} `bson:"metadata"`
		Data []bson.M `bson:"data"`
	}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}

	result := &ListResult{Products: []bson.M{}}
	if len(pages) > 0 {
		result.Products = pages[0].Data
		if len(pages[0].Metadata) > 0 {
			result.TotalCount = pages[0].Metadata[0].TotalCount
			result.TotalPages = (result.TotalCount + limit - 1) / limit
		}
	}
	return result, nil
}

// FetchByMainCategory returns every product under a main category's
// subcategories with the category names joined in.
func FetchByMainCategory(ctx context.Context, mainCategoryID primitive.ObjectID) ([]bson.M, error) {
	subCursor, err := db.SubCategoriesCollection.Find(ctx, bson.M{"mainCategory": mainCategoryID})
	if err != nil {
		return nil, err
	}
	defer subCursor.Close(ctx)

	var subCategories []models.SubCategory
	if err := subCursor.All(ctx, &subCategories); err != nil {
		return nil, err
	}
	if len(subCategories) == 0 {
		return nil, utils.NotFoundf("no subcategories found for the given main category")
	}

	subIDs := make([]primitive.ObjectID, len(subCategories))
	for i, sub := range subCategories {
		subIDs[i] = sub.ID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"subCategory": bson.M{"$in": subIDs}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "subcategories",
			"localField":   "subCategory",
			"foreignField": "_id",
			"as":           "subCategoryDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$subCategoryDetails", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "maincategories",
			"localField":   "subCategoryDetails.mainCategory",
			"foreignField": "_id",
			"as":           "mainCategoryDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$mainCategoryDetails", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"title": 1, "description": 1, "images": 1, "price": 1,
			"weight": 1, "purity": 1, "stock": 1, "makingCharge": 1,
			"tags": 1, "type": 1, "sku": 1,
			"subCategoryDetails": bson.M{
				"_id":  "$subCategoryDetails._id",
				"name": "$subCategoryDetails.name",
			},
			"mainCategoryDetails": bson.M{
				"_id":   "$mainCategoryDetails._id",
				"name":  "$mainCategoryDetails.name",
				"image": "$mainCategoryDetails.image",
			},
			"createdAt": 1, "updatedAt": 1,
		}}},
	}

	cursor, err := db.ProductsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []bson.M
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// FetchForAdmin returns the admin's products plus unowned shared stock.
func FetchForAdmin(ctx context.Context, adminID primitive.ObjectID) ([]bson.M, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"addedBy": adminID},
				bson.M{"addedBy": nil},
			},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "subcategories",
			"localField":   "subCategory",
			"foreignField": "_id",
			"as":           "subCategoryDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$subCategoryDetails", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "maincategories",
			"localField":   "subCategoryDetails.mainCategory",
			"foreignField": "_id",
			"as":           "mainCategoryDetails",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$mainCategoryDetails", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"title": 1, "description": 1, "images": 1, "price": 1,
			"weight": 1, "purity": 1, "stock": 1, "makingCharge": 1,
			"tags": 1, "type": 1, "sku": 1,
			"subCategoryDetails": 1, "mainCategoryDetails": 1,
			"createdAt": 1, "updatedAt": 1,
		}}},
	}

	cursor, err := db.ProductsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []bson.M
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}
