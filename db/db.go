package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	AdminsCollection         *mongo.Collection
	UsersCollection          *mongo.Collection
	ProductsCollection       *mongo.Collection
	MainCategoriesCollection *mongo.Collection
	SubCategoriesCollection  *mongo.Collection
	CartsCollection          *mongo.Collection
	WishlistsCollection      *mongo.Collection
	OrdersCollection         *mongo.Collection
	FCMTokensCollection      *mongo.Collection
	SpotRatesCollection      *mongo.Collection
	BannersCollection        *mongo.Collection
	NewsCollection           *mongo.Collection
	DevicesCollection        *mongo.Collection
	ServersCollection        *mongo.Collection
	Client                   *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := os.Getenv("MONGODB_DATABASE")
	if database == "" {
		database = "aurify"
	}

	AdminsCollection = Client.Database(database).Collection("admins")
	UsersCollection = Client.Database(database).Collection("users")
	ProductsCollection = Client.Database(database).Collection("products")
	MainCategoriesCollection = Client.Database(database).Collection("maincategories")
	SubCategoriesCollection = Client.Database(database).Collection("subcategories")
	CartsCollection = Client.Database(database).Collection("carts")
	WishlistsCollection = Client.Database(database).Collection("wishlists")
	OrdersCollection = Client.Database(database).Collection("orders")
	FCMTokensCollection = Client.Database(database).Collection("fcmtokens")
	SpotRatesCollection = Client.Database(database).Collection("spotrates")
	BannersCollection = Client.Database(database).Collection("banners")
	NewsCollection = Client.Database(database).Collection("news")
	DevicesCollection = Client.Database(database).Collection("devices")
	ServersCollection = Client.Database(database).Collection("servers")
}
