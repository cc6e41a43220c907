package routes

import (
	"github.com/julienschmidt/httprouter"

	"github.com/AurifyAE/Aurify-backend/auth"
	"github.com/AurifyAE/Aurify-backend/cart"
	"github.com/AurifyAE/Aurify-backend/content"
	"github.com/AurifyAE/Aurify-backend/middleware"
	"github.com/AurifyAE/Aurify-backend/orders"
	"github.com/AurifyAE/Aurify-backend/products"
	"github.com/AurifyAE/Aurify-backend/ratelim"
	"github.com/AurifyAE/Aurify-backend/spotrate"
	"github.com/AurifyAE/Aurify-backend/wishlist"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/admin/login", ratelim.RateLimit(auth.AdminLogin))
	router.POST("/api/auth/login/:adminId", ratelim.RateLimit(auth.UserLogin))
	router.GET("/api/auth/verify-token", middleware.Authenticate(auth.VerifyToken))
	router.POST("/api/auth/register-fcm/:userId", ratelim.RateLimit(middleware.Authenticate(auth.RegisterFCMToken)))
	router.POST("/api/auth/activate-device/:adminId", ratelim.RateLimit(auth.ActivateDeviceHandler))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart/:userId", middleware.Authenticate(cart.GetUserCart))
	router.POST("/api/cart/:userId/:adminId/:productId", ratelim.RateLimit(middleware.Authenticate(cart.AddItemToCart)))
	router.PUT("/api/cart/:userId/:adminId/:productId", ratelim.RateLimit(middleware.Authenticate(cart.SetCartItemQuantity)))
	router.PATCH("/api/cart/increment/:userId/:adminId/:productId", ratelim.RateLimit(middleware.Authenticate(cart.IncrementCartItem)))
	router.PATCH("/api/cart/decrement/:userId/:adminId/:productId", ratelim.RateLimit(middleware.Authenticate(cart.DecrementCartItem)))
	router.DELETE("/api/cart/:userId/:adminId/:productId", ratelim.RateLimit(middleware.Authenticate(cart.DeleteCartItem)))
}

func AddWishlistRoutes(router *httprouter.Router) {
	router.GET("/api/wishlist/:userId", middleware.Authenticate(wishlist.GetUserWishlist))
	router.POST("/api/wishlist/:userId/:adminId/:productId", ratelim.RateLimit(middleware.Authenticate(wishlist.ToggleItem)))
	router.DELETE("/api/wishlist/:userId/:adminId/:productId", ratelim.RateLimit(middleware.Authenticate(wishlist.DeleteItem)))
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products/view-all", products.GetViewAll)
	router.GET("/api/products/best-seller", products.GetBestSeller)
	router.GET("/api/products/new-arrival", products.GetNewArrival)
	router.GET("/api/products/top-rated", products.GetTopRated)
	router.GET("/api/products/main-category/:mainCateId", products.GetMainCategoryProducts)
	router.GET("/api/products/admin/:adminId", products.GetAdminProducts)
	router.PUT("/api/admin/fix-prices", ratelim.RateLimit(middleware.Authenticate(products.FixProductPrices)))
}

func AddOrderRoutes(router *httprouter.Router) {
	router.POST("/api/order/place-order/:userId/:adminId", ratelim.RateLimit(middleware.Authenticate(orders.PlaceOrderHandler)))
	router.PUT("/api/order/update-order/:orderId", ratelim.RateLimit(middleware.Authenticate(orders.UpdateOrderStatusHandler)))
	router.PUT("/api/order/update-order-quantity/:orderId", ratelim.RateLimit(middleware.Authenticate(orders.UpdateOrderQuantityHandler)))
	router.PUT("/api/order/update-order-reject/:orderId", ratelim.RateLimit(middleware.Authenticate(orders.RejectOrderHandler)))
	router.GET("/api/order/booking/:adminId", middleware.Authenticate(orders.GetBookingDetails))
	router.GET("/api/order/orders/:userId", middleware.Authenticate(orders.GetUserOrders))
	router.GET("/api/order/order-receipt/:orderId", middleware.Authenticate(orders.PrintOrderReceipt))
}

func AddSpotRateRoutes(router *httprouter.Router, hub *spotrate.Hub) {
	router.GET("/api/spotrate/:adminId", spotrate.GetSpotRate)
	router.POST("/api/spotrate", ratelim.RateLimit(middleware.Authenticate(spotrate.UpsertSpotRate)))
	router.PATCH("/api/spread/:adminId/:userId", ratelim.RateLimit(middleware.Authenticate(spotrate.UpdateUserSpread)))
	router.GET("/ws/rates/:adminId", spotrate.LiveRates(hub))
}

func AddContentRoutes(router *httprouter.Router) {
	router.GET("/api/banners/:adminId", content.GetBanners)
	router.GET("/api/news/:adminId", content.GetNews)
}

// RoutesWrapper registers every route group on the router.
func RoutesWrapper(router *httprouter.Router, hub *spotrate.Hub) {
	AddAuthRoutes(router)
	AddCartRoutes(router)
	AddWishlistRoutes(router)
	AddProductRoutes(router)
	AddOrderRoutes(router)
	AddSpotRateRoutes(router, hub)
	AddContentRoutes(router)
}
