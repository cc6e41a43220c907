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
	"github.com/AurifyAE/Aurify-backend/utils"
)

// FindByID loads one product.
func FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundf("product not found")
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindOwned loads a product only if it belongs to the given admin. This is
// the shop-ownership guard shared by cart removal and wishlist mutations.
func FindOwned(ctx context.Context, productID, adminID primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := db.ProductsCollection.FindOne(ctx, bson.M{"_id": productID, "addedBy": adminID}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, utils.NotFoundf("shop or product not found")
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// PriceMap returns the current catalog price for each requested product.
// Cart totals are always recomputed from these, never from prices stored
// on the cart lines.
func PriceMap(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]float64, error) {
	prices := make(map[primitive.ObjectID]float64, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}

	cursor, err := db.ProductsCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var found []models.Product
	if err := cursor.All(ctx, &found); err != nil {
		return nil, err
	}
	for _, p := range found {
		prices[p.ID] = p.Price
	}
	return prices, nil
}

// PriceFix is one entry in a fix-prices request.
type PriceFix struct {
	ProductID  primitive.ObjectID `json:"productId"`
	FixedPrice float64            `json:"fixedPrice"`
}

// FixPrices writes admin-fixed prices onto the catalog. This is the only
// mutation path for Product.price.
func FixPrices(ctx context.Context, fixes []PriceFix) ([]models.Product, error) {
	if len(fixes) == 0 {
		return nil, utils.InvalidOperationf("empty price fix request")
	}

	updated := make([]models.Product, 0, len(fixes))
	for _, fix := range fixes {
		if fix.FixedPrice <= 0 {
			return nil, utils.InvalidOperationf("invalid fixed price for product %s", fix.ProductID.Hex())
		}

		var product models.Product
		err := db.ProductsCollection.FindOneAndUpdate(ctx,
			bson.M{"_id": fix.ProductID},
			bson.M{"$set": bson.M{"price": fix.FixedPrice, "updatedAt": time.Now()}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(&product)
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundf("product %s not found", fix.ProductID.Hex())
		}
		if err != nil {
			return nil, err
		}
		updated = append(updated, product)
	}
	return updated, nil
}
