package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/controllers"
	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/utils"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP across the whole API.
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Receipt images are served back to the admin review page. Only image
	// files are reachable under /uploads.
	uploads := r.Group("/uploads", imageFilesOnly())
	uploads.Static("/", utils.UploadDir())

	userCtrl := controllers.NewUserController(db)
	menuCtrl := controllers.NewMenuController(db)
	cartCtrl := controllers.NewCartController(db)
	orderCtrl := controllers.NewOrderController(db)
	adminCtrl := controllers.NewAdminController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Menu browsing needs no account.
	r.GET("/menus", menuCtrl.GetAllMenuItems)
	r.GET("/menus/:menu_id", menuCtrl.GetMenuItemByID)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware(db))
	{
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/profile", userCtrl.GetProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddToCart)
		auth.PATCH("/cart/:item_id", cartCtrl.UpdateCartItem)
		auth.DELETE("/cart/:item_id", cartCtrl.RemoveFromCart)

		auth.POST("/orders", orderCtrl.SubmitOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		auth.GET("/orders/:order_id/qrcode", orderCtrl.GetOrderQRCode)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ROUTES
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(db), middlewares.RequireAdmin())
	{
		admin.GET("/dashboard", adminCtrl.GetDashboardStats)
		admin.GET("/orders", adminCtrl.GetAllOrders)
		admin.GET("/orders/pending", adminCtrl.GetPendingOrders)
		admin.GET("/orders/:order_id", adminCtrl.GetOrderDetail)
		admin.POST("/orders/:order_id/verify-payment", adminCtrl.VerifyPayment)
		admin.PATCH("/orders/:order_id/status", adminCtrl.UpdateOrderStatus)

		admin.POST("/menus", menuCtrl.CreateMenuItem)
		admin.PATCH("/menus/:menu_id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/menus/:menu_id", menuCtrl.DeleteMenuItem)
	}

	return r
}

func imageFilesOnly() gin.HandlerFunc {
	exts := []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

	return func(c *gin.Context) {
		path := strings.ToLower(c.Request.URL.Path)
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				c.Next()
				return
			}
		}
		c.AbortWithStatus(http.StatusForbidden)
	}
}
