// File: /routes/routes.go
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"peerza-api/config"
	"peerza-api/controllers"
	"peerza-api/middleware"
	"peerza-api/repositories"
	"peerza-api/services"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client, emailService *services.EmailService) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	friendRepo := repositories.NewFriendRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	meetingRepo := repositories.NewMeetingRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	availabilityRepo := repositories.NewAvailabilityRepository(db)

	// Services
	presence := services.NewPresenceService(rdb, userRepo)

	// Controllers
	authController := controllers.NewAuthController(userRepo, cfg.JWTSecret, emailService, rdb)
	userController := controllers.NewUserController(userRepo, skillRepo, presence, cfg)
	skillController := controllers.NewSkillController(skillRepo, userRepo)
	friendController := controllers.NewFriendController(friendRepo, userRepo, notificationRepo)
	chatController := controllers.NewChatController(messageRepo, friendRepo, userRepo)
	meetingController := controllers.NewMeetingController(meetingRepo, userRepo, notificationRepo, presence)
	notificationController := controllers.NewNotificationController(notificationRepo)
	availabilityController := controllers.NewAvailabilityController(availabilityRepo, userRepo)
	paymentController := controllers.NewPaymentController(userRepo, cfg)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// Stripe calls this; it authenticates via signature, not bearer token
	v1.POST("/payments/webhook", paymentController.HandleWebhook)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret, rdb))
	protected.Use(middleware.PresenceTracker(presence))
	{
		protected.POST("/auth/logout", authController.Logout)
		protected.POST("/change-password", authController.ChangePassword)

		// Profile routes
		protected.GET("/profile", userController.GetProfile)
		protected.PATCH("/profile", userController.UpdateProfile)
		protected.POST("/firebase-uid", userController.RegisterFirebaseUID)
		protected.GET("/users/:id", userController.GetPublicProfile)

		// Skill routes
		protected.GET("/my-skills", skillController.GetMySkills)
		protected.POST("/my-skills", skillController.AddSkill)
		protected.DELETE("/my-skills/:id", skillController.DeleteSkill)
		protected.GET("/search", skillController.SearchPeers)

		// Friend routes
		friends := protected.Group("/friends")
		{
			friends.GET("", friendController.GetFriends)
			friends.GET("/requests", friendController.GetRequestInbox)
			friends.POST("/request/:user_id", friendController.SendFriendRequest)
			friends.POST("/respond/:request_id", friendController.RespondFriendRequest)
		}

		// Chat routes
		chat := protected.Group("/chat")
		{
			chat.GET("/conversations", chatController.GetConversations)
			chat.GET("/:user_id/messages", chatController.GetMessages)
			chat.POST("/:user_id/send", chatController.SendMessage)
			chat.POST("/:user_id/read", chatController.MarkRead)
		}

		// Meeting routes
		meetings := protected.Group("/meetings")
		{
			meetings.GET("", meetingController.GetMyMeetings)
			meetings.GET("/pending", meetingController.GetPendingMeetings)
			meetings.POST("/request", meetingController.RequestMeeting)
			meetings.POST("/:id/respond", meetingController.RespondMeeting)
		}

		// Call signaling routes
		call := protected.Group("/call")
		{
			call.POST("/start/:receiver_id", meetingController.StartCall)
			call.GET("/check", meetingController.CheckCalls)
			call.POST("/end/:receiver_id", meetingController.EndCall)
		}

		// Notification routes
		notifications := protected.Group("/notifications")
		{
			notifications.GET("", notificationController.GetNotifications)
			notifications.POST("/:id/read", notificationController.MarkAsRead)
			notifications.POST("/read-all", notificationController.MarkAllAsRead)
		}

		// Availability routes
		availability := protected.Group("/availability")
		{
			availability.GET("", availabilityController.GetMySlots)
			availability.POST("", availabilityController.UpsertSlot)
			availability.DELETE("/:id", availabilityController.DeleteSlot)
			availability.GET("/user/:id", availabilityController.GetUserSlots)
		}

		// Payment routes
		protected.POST("/payments/checkout", paymentController.CreateCheckoutSession)
	}
}

// SetupCORS allows the SPA frontend to talk to the API from another origin
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, Stripe-Signature")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
