package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/globalreach-edu/consultancy-api/internal/appointment"
	"github.com/globalreach-edu/consultancy-api/internal/audit"
	"github.com/globalreach-edu/consultancy-api/internal/httperr"
	"github.com/globalreach-edu/consultancy-api/internal/httpresp"
)

type AppointmentHandler struct {
	workflow *appointment.Workflow
	audit    *audit.Dispatcher
}

func NewAppointmentHandler(wf *appointment.Workflow, ad *audit.Dispatcher) *AppointmentHandler {
	return &AppointmentHandler{workflow: wf, audit: ad}
}

// --------- Requests ---------

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Public ---------

// Submit is the unauthenticated booking endpoint. Whatever the payload
// claims, the stored status is "new".
func (h *AppointmentHandler) Submit(c *gin.Context) {
	var req appointment.SubmitInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.workflow.Submit(c.Request.Context(), req)
	if err != nil {
		httperr.From(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, ap)
}

// --------- Staff ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.workflow.List(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error fetching appointments.")
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.workflow.Get(c.Request.Context(), uint(id))
	if err != nil {
		httperr.From(c, err, "failed_to_get_appointment")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "status_required", "Status is required.")
		return
	}

	ap, err := h.workflow.SetStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		httperr.From(c, err, "failed_to_update_status")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "appointment_status_changed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": ap.Status},
	})

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req appointment.UpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment data.")
		return
	}

	ap, err := h.workflow.Update(c.Request.Context(), uint(id), req)
	if err != nil {
		httperr.From(c, err, "failed_to_update_appointment")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	if err := h.workflow.Delete(c.Request.Context(), uint(id)); err != nil {
		httperr.From(c, err, "failed_to_delete_appointment")
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &entityID,
	})

	httpresp.Message(c, "Appointment deleted successfully.")
}
