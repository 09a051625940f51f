package routes

import (
	"tripverse/config"
	"tripverse/controllers"
	"tripverse/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	analytics := &controllers.AnalyticsController{DB: config.DB}

	// Public API Routes

	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/auth/signup", controllers.SignupHandler)
		api.POST("/auth/login", controllers.LoginHandler)
		api.POST("/auth/logout", controllers.LogoutHandler)
		api.POST("/auth/refresh", controllers.RefreshTokenHandler)
		api.POST("/auth/forgot-password", controllers.ForgotPasswordHandler)
		api.POST("/auth/reset-password", controllers.ResetPasswordHandler)

		// Public catalog routes
		api.GET("/package/get-packages", controllers.GetPackages(config.DB))
		api.GET("/package/get-package-data/:id", controllers.GetPackageData(config.DB))
		api.GET("/package/gateway/token", controllers.GetGatewayToken())

		// Ratings are publicly readable
		api.GET("/rating/get-ratings/:id/:limit", controllers.GetRatings(config.DB))
		api.GET("/rating/average-rating/:id", controllers.GetAverageRating(config.DB))

		// Contact form and chat proxy
		api.POST("/contact", controllers.SubmitContact(config.DB))
		api.POST("/chat", controllers.ChatHandler())
	}

	// Protected User Routes (Require Login)

	booking := r.Group("/api/booking").Use(middlewares.AuthMiddleware())
	{
		booking.POST("/book-package/:packageId", controllers.BookPackage(config.DB))
		booking.POST("/cancel-booking/:id/:userId", middlewares.RequireSelfOrAdmin("userId"), controllers.CancelBooking(config.DB))
		booking.GET("/get-UserCurrentBookings/:userId", middlewares.RequireSelfOrAdmin("userId"), controllers.GetUserCurrentBookings(config.DB))
		booking.GET("/get-allUserBookings/:userId", middlewares.RequireSelfOrAdmin("userId"), controllers.GetUserBookingHistory(config.DB))
		booking.DELETE("/delete-booking-history/:id/:userId", middlewares.RequireSelfOrAdmin("userId"), controllers.DeleteBookingHistory(config.DB))
	}

	rating := r.Group("/api/rating").Use(middlewares.AuthMiddleware())
	{
		rating.POST("/give-rating", controllers.GiveRating(config.DB))
	}

	user := r.Group("/api/user").Use(middlewares.AuthMiddleware())
	{
		user.POST("/update/:id", middlewares.RequireSelfOrAdmin("id"), controllers.UpdateUser(config.DB))
		user.POST("/update-password/:id", middlewares.RequireSelfOrAdmin("id"), controllers.UpdatePassword(config.DB))
		user.POST("/update-profile-photo/:id", middlewares.RequireSelfOrAdmin("id"), controllers.UpdateProfilePhoto(config.DB))
		user.DELETE("/delete/:id", middlewares.RequireSelfOrAdmin("id"), controllers.DeleteUser(config.DB))
		user.GET("/payments", controllers.GetUserPayments(config.DB))
	}

	// Admin Routes (Require Admin Access); paths match the back-office client

	pkgAdmin := r.Group("/api/package").Use(middlewares.AdminMiddleware())
	{
		pkgAdmin.POST("/create-package", controllers.AdminCreatePackage(config.DB))
		pkgAdmin.POST("/update-package/:id", controllers.AdminUpdatePackage(config.DB))
		pkgAdmin.DELETE("/delete-package/:id", controllers.AdminDeletePackage(config.DB))
	}

	bookingAdmin := r.Group("/api/booking").Use(middlewares.AdminMiddleware())
	{
		bookingAdmin.GET("/get-allBookings", controllers.GetAllBookings(config.DB))
		bookingAdmin.GET("/get-booking/:id", controllers.GetBookingDetails(config.DB))
		bookingAdmin.GET("/export-bookings", controllers.ExportBookings(config.DB))
	}

	userAdmin := r.Group("/api/user").Use(middlewares.AdminMiddleware())
	{
		userAdmin.GET("/getAllUsers", controllers.GetAllUsers(config.DB))
		userAdmin.DELETE("/delete-user/:id", controllers.DeleteUser(config.DB))
		userAdmin.PUT("/block-user/:id", controllers.BlockUser(config.DB))
	}

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AdminMiddleware())
	{
		admin.GET("/stats", analytics.GetDashboardStats)
		admin.GET("/daily-revenue", analytics.GetDailyRevenue)
		admin.GET("/top-packages", analytics.GetTopPackages)
		admin.GET("/payments", controllers.GetAllPayments(config.DB))
		admin.GET("/contact-messages", controllers.GetContactMessages(config.DB))
	}

	// Fallback for Unknown Routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "message": "page not found"})
	})

	return r
}
