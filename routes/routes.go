package routes

import (
	"bnc-store/controllers"
	"bnc-store/middleware"
	"bnc-store/repositories"
	"bnc-store/services"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	mailer, err := services.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
	}

	productRepo := repositories.NewProductRepository()
	orderRepo := repositories.NewOrderRepository()

	productSvc := services.NewProductService(productRepo)
	categorySvc := services.NewCategoryService(repositories.NewCategoryRepository())
	brandSvc := services.NewBrandService(repositories.NewBrandRepository())

	var orderMailer services.OrderMailer
	var contactMailer services.ContactMailer
	if mailer != nil {
		orderMailer = mailer
		contactMailer = mailer
	}
	orderSvc := services.NewOrderService(productRepo, orderRepo, orderMailer)
	contactSvc := services.NewContactService(repositories.NewContactRepository(), contactMailer)

	authCtrl := controllers.NewAuthController(services.NewAuthService())
	productCtrl := controllers.NewProductController(productSvc)
	categoryCtrl := controllers.NewCategoryController(categorySvc)
	brandCtrl := controllers.NewBrandController(brandSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	contactCtrl := controllers.NewContactController(contactSvc)
	uploadCtrl := controllers.NewUploadController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/admin/login", authCtrl.Login)

	router.GET("/product", productCtrl.GetAllProducts)
	router.GET("/product/active", productCtrl.GetActiveProducts)
	router.GET("/product/latest", productCtrl.GetLatestProducts)
	router.GET("/product/category/:categoryId", productCtrl.GetProductsByCategory)
	router.GET("/product/:id", productCtrl.GetProductByID)

	router.GET("/category", categoryCtrl.GetAllCategories)
	router.GET("/category/active", categoryCtrl.GetActiveCategories)
	router.GET("/category/:id", categoryCtrl.GetCategoryByID)

	router.GET("/brand", brandCtrl.GetAllBrands)
	router.GET("/brand/active", brandCtrl.GetActiveBrands)
	router.GET("/brand/:id", brandCtrl.GetBrandByID)

	router.POST("/order", orderCtrl.CreateOrder)
	router.POST("/contact", contactCtrl.CreateContact)

	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/order", orderCtrl.GetAllOrders)
		admin.GET("/order/active", orderCtrl.GetActiveOrders)
		admin.GET("/order/:id", orderCtrl.GetOrderByID)
		admin.PATCH("/order/:id", orderCtrl.UpdateOrder)
		admin.DELETE("/order/:id", orderCtrl.DeleteOrder)

		admin.POST("/product", productCtrl.CreateProduct)
		admin.PATCH("/product/:id", productCtrl.UpdateProduct)
		admin.DELETE("/product/:id", productCtrl.DeleteProduct)

		admin.POST("/category", categoryCtrl.CreateCategory)
		admin.PATCH("/category/:id", categoryCtrl.UpdateCategory)
		admin.DELETE("/category/:id", categoryCtrl.DeleteCategory)

		admin.POST("/brand", brandCtrl.CreateBrand)
		admin.PATCH("/brand/:id", brandCtrl.UpdateBrand)
		admin.DELETE("/brand/:id", brandCtrl.DeleteBrand)

		admin.GET("/contact", contactCtrl.GetAllContacts)
		admin.GET("/contact/:id", contactCtrl.GetContactByID)
		admin.DELETE("/contact/:id", contactCtrl.DeleteContact)

		admin.POST("/admin/upload", uploadCtrl.UploadImages)
	}

	router.Static("/uploads", "./uploads")
}
