package controllers

import (
	"bnc-store/models"
	"bnc-store/services"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	service *services.ContactService
}

func NewContactController(service *services.ContactService) *ContactController {
	return &ContactController{service: service}
}

// @Summary Create contact enquiry
// @Description Store a customer enquiry and send an acknowledgment email
// @Tags Contacts
// @Accept json
// @Produce json
// @Param contact body models.CreateContactRequest true "Enquiry data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) CreateContact(c *gin.Context) {
	var req models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	contact, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(201, models.Response{
		Success: true,
		Message: "Enquiry received successfully",
		Data:    contact,
	})
}

// @Summary Get all enquiries
// @Tags Admin - Contacts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /contact [get]
func (ctrl *ContactController) GetAllContacts(c *gin.Context) {
	contacts, err := ctrl.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Enquiries retrieved successfully",
		Data:    contacts,
	})
}

// @Summary Get enquiry by ID
// @Tags Admin - Contacts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /contact/{id} [get]
func (ctrl *ContactController) GetContactByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid contact ID")
		return
	}

	contact, err := ctrl.service.FindOne(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Contact not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: "Enquiry retrieved successfully",
		Data:    contact,
	})
}

// @Summary Deactivate enquiry
// @Tags Admin - Contacts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /contact/{id} [delete]
func (ctrl *ContactController) DeleteContact(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if id <= 0 {
		respondBadRequest(c, "Invalid contact ID")
		return
	}

	contact, message, err := ctrl.service.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Contact not found")
		return
	}

	c.JSON(200, models.Response{
		Success: true,
		Message: message,
		Data:    contact,
	})
}
