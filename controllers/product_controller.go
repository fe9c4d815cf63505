package controllers

import (
	"bnc-store/models"
	"bnc-store/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// @Summary Get all products
// @Description List every product with category and brand, newest first
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /product [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// @Summary Get active products
// @Description List active products, newest first
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /product/active [get]
func (ctrl *ProductController) GetActiveProducts(c *gin.Context) {
	products, err := ctrl.service.FindActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// @Summary Get latest products
// @Description Ten newest active products for the home page
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /product/latest [get]
func (ctrl *ProductController) GetLatestProducts(c *gin.Context) {
	products, err := ctrl.service.FindLatest(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// @Summary Get products by category
// @Description Active products in one category, newest first
// @Tags Products
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {object} models.Response
// @Router /product/category/{categoryId} [get]
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	categoryID, _ := strconv.Atoi(c.Param("categoryId"))
	if categoryID <= 0 {
		respondBadRequest(c, "Invalid category ID")
		return
	}

	products, err := ctrl.service.FindByCategory(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
	})
}

// @Summary Get product by ID
// @Description Get a single product with category and brand
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /product/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid product ID")
		return
	}

	product, err := ctrl.service.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}

// @Summary Create product
// @Description Create a product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param product body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /product [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// @Summary Update product
// @Description Patch product fields (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /product/{id} [patch]
func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid product ID")
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product, err := ctrl.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// @Summary Deactivate product
// @Description Soft-delete a product; orders keep their snapshots (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /product/{id} [delete]
func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid product ID")
		return
	}

	product, message, err := ctrl.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Product not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: message,
		Data:    product,
	})
}
