package routes

import (
	"MindTrackGo/controllers"
	"MindTrackGo/middleware"
	"MindTrackGo/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, client *services.InferenceClient, storage *services.StorageService) {
	authController := controllers.AuthController{}
	userController := controllers.UserController{}
	historyController := controllers.HistoryController{}
	stressService := services.NewStressService(client)
	detectController := controllers.NewDetectController(stressService, storage)

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		private.POST("/auth/logout", authController.Logout)
		private.POST("/detect", detectController.Detect)
		private.GET("/history", historyController.GetHistory)
		private.GET("/user", userController.GetUser)
		private.GET("/uploads/:filename", detectController.ServeUpload)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
