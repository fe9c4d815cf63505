package controllers

import (
	"bnc-store/models"
	"bnc-store/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type BrandController struct {
	service *services.BrandService
}

func NewBrandController(service *services.BrandService) *BrandController {
	return &BrandController{service: service}
}

// @Summary Get all brands
// @Tags Brands
// @Produce json
// @Success 200 {object} models.Response
// @Router /brand [get]
func (ctrl *BrandController) GetAllBrands(c *gin.Context) {
	brands, err := ctrl.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Brands retrieved successfully",
		Data:    brands,
	})
}

// @Summary Get active brands
// @Tags Brands
// @Produce json
// @Success 200 {object} models.Response
// @Router /brand/active [get]
func (ctrl *BrandController) GetActiveBrands(c *gin.Context) {
	brands, err := ctrl.service.FindActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Brands retrieved successfully",
		Data:    brands,
	})
}

// @Summary Get brand by ID
// @Tags Brands
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /brand/{id} [get]
func (ctrl *BrandController) GetBrandByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid brand ID")
		return
	}

	brand, err := ctrl.service.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Brand not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Brand retrieved successfully",
		Data:    brand,
	})
}

// @Summary Create brand
// @Tags Admin - Brands
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param brand body models.CreateBrandRequest true "Brand data"
// @Success 201 {object} models.Response
// @Router /brand [post]
func (ctrl *BrandController) CreateBrand(c *gin.Context) {
	var req models.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	brand, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Brand created successfully",
		Data:    brand,
	})
}

// @Summary Update brand
// @Tags Admin - Brands
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param brand body models.UpdateBrandRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /brand/{id} [patch]
func (ctrl *BrandController) UpdateBrand(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid brand ID")
		return
	}

	var req models.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	brand, err := ctrl.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err, "Brand not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Brand updated successfully",
		Data:    brand,
	})
}

// @Summary Deactivate brand
// @Tags Admin - Brands
// @Security BearerAuth
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /brand/{id} [delete]
func (ctrl *BrandController) DeleteBrand(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid brand ID")
		return
	}

	brand, message, err := ctrl.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Brand not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: message,
		Data:    brand,
	})
}
