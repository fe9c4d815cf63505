package controllers

import (
	"bnc-store/config"
	"bnc-store/libs"
	"bnc-store/models"
	"bnc-store/utils"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type UploadController struct{}

func NewUploadController() *UploadController {
	return &UploadController{}
}

// @Summary Upload product images
// @Description Upload up to three product images; returns their URLs (Admin)
// @Tags Admin - Upload
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param images formData file true "Image files"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/upload [post]
func (ctrl *UploadController) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondBadRequest(c, "Invalid multipart form")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondBadRequest(c, "No image files provided")
		return
	}
	if len(files) > 3 {
		respondBadRequest(c, "A product can have at most 3 images")
		return
	}

	urls := []string{}
	for _, fileHeader := range files {
		relPath, err := utils.UploadFile(c, fileHeader, "products")
		if err != nil {
			respondBadRequest(c, err.Error())
			return
		}

		if libs.IsConfigured() {
			hosted, err := libs.UploadProductImage(filepath.Join(config.AppConfig.UploadDir, relPath))
			if err != nil {
				respondError(c, err, "")
				return
			}
			urls = append(urls, hosted)
			continue
		}

		urls = append(urls, "/uploads/"+filepath.ToSlash(relPath))
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Images uploaded successfully",
		Data:    gin.H{"imageUrl": urls},
	})
}
