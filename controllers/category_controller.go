package controllers

import (
	"bnc-store/models"
	"bnc-store/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

// @Summary Get all categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /category [get]
func (ctrl *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// @Summary Get active categories
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /category/active [get]
func (ctrl *CategoryController) GetActiveCategories(c *gin.Context) {
	categories, err := ctrl.service.FindActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// @Summary Get category by ID
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /category/{id} [get]
func (ctrl *CategoryController) GetCategoryByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid category ID")
		return
	}

	category, err := ctrl.service.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Category retrieved successfully",
		Data:    category,
	})
}

// @Summary Create category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body models.CreateCategoryRequest true "Category data"
// @Success 201 {object} models.Response
// @Router /category [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	category, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// @Summary Update category
// @Tags Admin - Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /category/{id} [patch]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid category ID")
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	category, err := ctrl.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Category updated successfully",
		Data:    category,
	})
}

// @Summary Deactivate category
// @Tags Admin - Categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /category/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid category ID")
		return
	}

	category, message, err := ctrl.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Category not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: message,
		Data:    category,
	})
}
