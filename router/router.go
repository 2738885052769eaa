package router

import (
	"github.com/gin-gonic/gin"

	"ordering-app/controllers"
	"ordering-app/database"
	"ordering-app/middlewares"
)

func SetupRouter(db *database.Database, fulfiller controllers.Fulfiller) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	userCtrl := controllers.NewUserController(db)
	franchiseCtrl := controllers.NewFranchiseController(db)
	orderCtrl := controllers.NewOrderController(db, fulfiller)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Login and register get a stricter limiter than the rest.
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	api := r.Group("/api")

	api.GET("/order/menu", orderCtrl.GetMenu)
	api.GET("/franchise", middlewares.OptionalAuth(db), franchiseCtrl.ListFranchises)

	authed := api.Group("/")
	authed.Use(middlewares.AuthRequired(db))
	{
		authed.POST("/logout", userCtrl.Logout)
		authed.PATCH("/user/:user_id", userCtrl.UpdateUser)
		authed.GET("/user/:user_id/franchise", franchiseCtrl.ListUserFranchises)

		authed.POST("/franchise", franchiseCtrl.CreateFranchise)
		authed.DELETE("/franchise/:franchise_id", franchiseCtrl.DeleteFranchise)
		authed.POST("/franchise/:franchise_id/store", franchiseCtrl.CreateStore)
		authed.DELETE("/franchise/:franchise_id/store/:store_id", franchiseCtrl.DeleteStore)

		authed.PUT("/order/menu", orderCtrl.AddMenuItem)
		authed.GET("/order", orderCtrl.GetOrders)
		authed.POST("/order", orderCtrl.CreateOrder)
	}

	return r
}
