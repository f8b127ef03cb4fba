package routes

import (
	"net/http"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/handlers"
	"github.com/01moynul/umkm-web-golang/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// corsMiddleware lets the configured frontends call the API with a bearer token.
func corsMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(h.Log))

	// --- APPLY THE CORS GUARD ---
	router.Use(corsMiddleware(h.AllowedOrigins))

	// Uploaded images are served from the upload dir.
	router.Static("/uploads", h.Upload.Dir)

	v1 := router.Group("/v1")
	{
		// --- Ping Route (Public) ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth & Setup Routes (Public) ---
		v1.POST("/login", h.Login)
		v1.GET("/setup/status", h.GetSetupStatus)
		v1.POST("/setup/first-admin", h.CreateFirstAdmin)

		// --- Public Site Routes ---
		v1.GET("/company", h.GetCompanyInfo)
		v1.GET("/menu", h.GetMenu)
		v1.GET("/categories", h.GetAllCategories)
		v1.GET("/products", h.SearchProducts)
		v1.GET("/products/featured", h.GetFeaturedProducts)
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/gallery", h.GetGallery)
		v1.GET("/online-shops", h.GetOnlineShops)
		v1.GET("/blog", h.GetPublishedArticles)
		v1.GET("/blog/:slug", h.GetArticleBySlug)
		v1.GET("/jobs", h.GetOpenJobs)
		v1.GET("/jobs/:id", h.GetOpenJob)
		v1.POST("/jobs/:id/applications", h.ApplyForJob)
		v1.POST("/contact", h.SubmitContactMessage)

		adminGuard := middleware.AdminMiddleware(h.Store.Admins, h.Log)

		// The websocket handshake cannot carry headers from a browser, so this
		// one route also accepts ?token=.
		v1.GET("/admin/messages/ws",
			middleware.AuthMiddleware(h.Tokens, true), adminGuard, h.StreamMessageEvents)

		// --- Admin Routes (Login + Admin Profile Required) ---
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(h.Tokens, false), adminGuard)
		{
			admin.GET("/dashboard", h.GetDashboardStats)

			admin.GET("/company", h.GetCompanyInfo)
			admin.PUT("/company", h.UpdateCompanyInfo)

			admin.GET("/categories", h.GetAllCategories)
			admin.POST("/categories", h.CreateCategory)
			admin.PUT("/categories/:id", h.UpdateCategory)
			admin.DELETE("/categories/:id", h.DeleteCategory)

			admin.GET("/products", h.AdminListProducts)
			admin.GET("/products/:id", h.AdminGetProduct)
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.GET("/gallery", h.AdminListGallery)
			admin.POST("/gallery", h.CreateGalleryItem)
			admin.PUT("/gallery/:id", h.UpdateGalleryItem)
			admin.DELETE("/gallery/:id", h.DeleteGalleryItem)

			admin.GET("/online-shops", h.AdminListOnlineShops)
			admin.POST("/online-shops", h.CreateOnlineShop)
			admin.PUT("/online-shops/:id", h.UpdateOnlineShop)
			admin.DELETE("/online-shops/:id", h.DeleteOnlineShop)

			admin.GET("/blog", h.AdminListArticles)
			admin.GET("/blog/:id", h.AdminGetArticle)
			admin.POST("/blog", h.CreateArticle)
			admin.PUT("/blog/:id", h.UpdateArticle)
			admin.PATCH("/blog/:id/publish", h.ToggleArticlePublished)
			admin.DELETE("/blog/:id", h.DeleteArticle)

			admin.GET("/jobs", h.AdminListJobs)
			admin.GET("/jobs/:id", h.AdminGetJob)
			admin.POST("/jobs", h.CreateJob)
			admin.PUT("/jobs/:id", h.UpdateJob)
			admin.PATCH("/jobs/:id/active", h.ToggleJobActive)
			admin.DELETE("/jobs/:id", h.DeleteJob)
			admin.GET("/jobs/:id/applications", h.GetJobApplications)
			admin.GET("/applications", h.GetAllApplications)

			admin.GET("/messages", h.GetInbox)
			admin.PATCH("/messages/:id/read", h.MarkMessageRead)
			admin.DELETE("/messages/:id", h.DeleteMessage)

			admin.GET("/menu", h.AdminListMenu)
			admin.PATCH("/menu/:id", h.SetMenuItemActive)

			admin.POST("/upload", h.UploadFile)

			admin.GET("/me", h.GetMe)
			admin.PATCH("/me/password", h.ChangePassword)

			// --- Super Admin Only ---
			superAdmin := admin.Group("/admins")
			superAdmin.Use(middleware.SuperAdminMiddleware())
			{
				superAdmin.GET("", h.ListAdmins)
				superAdmin.POST("", h.CreateAdmin)
			}
		}
	}

	return router
}
