package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/globalreach-edu/consultancy-api/internal/audit"
	"github.com/globalreach-edu/consultancy-api/internal/catalog"
	"github.com/globalreach-edu/consultancy-api/internal/httperr"
	"github.com/globalreach-edu/consultancy-api/internal/httpresp"
	"github.com/globalreach-edu/consultancy-api/internal/media"
	"github.com/globalreach-edu/consultancy-api/internal/models"
)

type ProgramStore = catalog.Store[models.Program, *models.Program]

type ProgramHandler struct {
	store   *ProgramStore
	storage media.Storage
	audit   *audit.Dispatcher
}

func NewProgramHandler(store *ProgramStore, st media.Storage, ad *audit.Dispatcher) *ProgramHandler {
	return &ProgramHandler{store: store, storage: st, audit: ad}
}

func programFieldKeys() []string {
	keys := []string{"title", "status"}
	for k := range (&models.Program{}).TextFields() {
		keys = append(keys, k)
	}
	return keys
}

func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.store.List(c.Request.Context(), catalog.Filters{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_programs", "Error fetching programs.")
		return
	}

	httpresp.List(c, programs)
}

func (h *ProgramHandler) GetBySlug(c *gin.Context) {
	program, err := h.store.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.From(c, err, "failed_to_get_program")
		return
	}

	httpresp.OK(c, program)
}

func (h *ProgramHandler) Create(c *gin.Context) {
	up, err := imageUpload(c, h.storage)
	if err != nil {
		httperr.From(c, err, "failed_to_store_upload")
		return
	}

	program, err := h.store.Create(c.Request.Context(), formFields(c, programFieldKeys()), up)
	if err != nil {
		httperr.From(c, err, "failed_to_create_program")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "program_created",
		Entity:   "program",
		EntityID: &program.ID,
	})

	httpresp.Created(c, program)
}

func (h *ProgramHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid program id.")
		return
	}

	up, err := imageUpload(c, h.storage)
	if err != nil {
		httperr.From(c, err, "failed_to_store_upload")
		return
	}

	program, err := h.store.Update(c.Request.Context(), uint(id), formFields(c, programFieldKeys()), up)
	if err != nil {
		httperr.From(c, err, "failed_to_update_program")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "program_updated",
		Entity:   "program",
		EntityID: &program.ID,
	})

	httpresp.OK(c, program)
}

func (h *ProgramHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid program id.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), uint(id)); err != nil {
		httperr.From(c, err, "failed_to_delete_program")
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "program_deleted",
		Entity:   "program",
		EntityID: &entityID,
	})

	httpresp.Message(c, "Program deleted successfully.")
}
