// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vexor/internal/delivery/http/middleware"
	"vexor/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	CouponHandler   *handler.CouponHandler
	AddressHandler  *handler.AddressHandler
	ReviewHandler   *handler.ReviewHandler
	WishlistHandler *handler.WishlistHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	couponHandler   *handler.CouponHandler
	addressHandler  *handler.AddressHandler
	reviewHandler   *handler.ReviewHandler
	wishlistHandler *handler.WishlistHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:  params.CatalogHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		couponHandler:   params.CouponHandler,
		addressHandler:  params.AddressHandler,
		reviewHandler:   params.ReviewHandler,
		wishlistHandler: params.WishlistHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.catalogHandler.ListProducts)
		productGroup.GET("/featured", r.catalogHandler.FeaturedProducts)
		productGroup.GET("/categories", r.catalogHandler.Categories)
		productGroup.GET("/:idOrSlug", r.catalogHandler.GetProduct)
	}

	// Review routes; reading is public, writing requires authentication
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("/product/:productID", r.reviewHandler.ListProductReviews)
		reviewGroup.POST("", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)
		reviewGroup.DELETE("/:id", r.reviewHandler.DeleteReview, r.authMiddleware.Authenticate)
	}

	// Wishlist routes that require authentication
	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.ListWishlist)
		wishlistGroup.POST("/:productID", r.wishlistHandler.AddToWishlist)
		wishlistGroup.DELETE("/:productID", r.wishlistHandler.RemoveFromWishlist)
	}

	// Cart routes that require authentication
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Coupon quoting for the checkout page
	couponGroup := e.Group("/coupons")
	couponGroup.Use(r.authMiddleware.Authenticate)
	{
		couponGroup.POST("/validate", r.couponHandler.ValidateCoupon)
	}

	// Order routes that require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListMyOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}

	// Address-book routes that require authentication
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}

	// Admin routes that require authentication and a staff role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireStaff)
	{
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)

		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.PUT("/orders/:id/status", r.orderHandler.UpdateOrderStatus)
		adminGroup.GET("/orders/:id/invoice", r.adminHandler.GetInvoice)

		adminGroup.GET("/coupons", r.couponHandler.ListCoupons)
		adminGroup.POST("/coupons", r.couponHandler.CreateCoupon)
		adminGroup.DELETE("/coupons/:id", r.couponHandler.DeleteCoupon)

		adminGroup.GET("/dashboard", r.adminHandler.GetDashboardStats)
	}
}
