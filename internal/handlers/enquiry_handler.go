package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/globalreach-edu/consultancy-api/internal/httperr"
	"github.com/globalreach-edu/consultancy-api/internal/httpresp"
	"github.com/globalreach-edu/consultancy-api/internal/models"
	"github.com/globalreach-edu/consultancy-api/internal/validators"
)

type EnquiryHandler struct {
	db *gorm.DB
}

func NewEnquiryHandler(db *gorm.DB) *EnquiryHandler {
	return &EnquiryHandler{db: db}
}

// --------- Requests ---------

type CreateEnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type EnquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var enquiryStatuses = map[string]bool{
	"new":       true,
	"contacted": true,
	"closed":    true,
}

// --------- Handlers ---------

// Submit is the public contact form endpoint.
func (h *EnquiryHandler) Submit(c *gin.Context) {
	var req CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid enquiry data.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.ValidEmail(email) {
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")
		return
	}

	enq := models.Enquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  "new",
	}

	if err := h.db.Create(&enq).Error; err != nil {
		httperr.Internal(c, "failed_to_create_enquiry", "Error submitting enquiry.")
		return
	}

	httpresp.Created(c, enq)
}

func (h *EnquiryHandler) List(c *gin.Context) {
	q := h.db.Order("created_at DESC, id DESC")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var enqs []models.Enquiry
	if err := q.Find(&enqs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_enquiries", "Error fetching enquiries.")
		return
	}

	httpresp.List(c, enqs)
}

func (h *EnquiryHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid enquiry id.")
		return
	}

	var req EnquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !enquiryStatuses[req.Status] {
		httperr.BadRequest(c, "invalid_status", "Invalid enquiry status.")
		return
	}

	var enq models.Enquiry
	if err := h.db.First(&enq, uint(id)).Error; err != nil {
		httperr.NotFound(c, "enquiry_not_found", "Enquiry not found.")
		return
	}

	enq.Status = req.Status
	if err := h.db.Save(&enq).Error; err != nil {
		httperr.Internal(c, "failed_to_update_enquiry", "Error updating enquiry.")
		return
	}

	httpresp.OK(c, enq)
}

func (h *EnquiryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid enquiry id.")
		return
	}

	var enq models.Enquiry
	if err := h.db.First(&enq, uint(id)).Error; err != nil {
		httperr.NotFound(c, "enquiry_not_found", "Enquiry not found.")
		return
	}

	if err := h.db.Delete(&enq).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_enquiry", "Error deleting enquiry.")
		return
	}

	httpresp.Message(c, "Enquiry deleted successfully.")
}
