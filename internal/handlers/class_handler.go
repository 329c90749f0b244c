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

type ClassStore = catalog.Store[models.Class, *models.Class]

type ClassHandler struct {
	store   *ClassStore
	storage media.Storage
	audit   *audit.Dispatcher
}

func NewClassHandler(store *ClassStore, st media.Storage, ad *audit.Dispatcher) *ClassHandler {
	return &ClassHandler{store: store, storage: st, audit: ad}
}

func classFieldKeys() []string {
	keys := []string{"title", "status"}
	for k := range (&models.Class{}).TextFields() {
		keys = append(keys, k)
	}
	return keys
}

func (h *ClassHandler) List(c *gin.Context) {
	classes, err := h.store.List(c.Request.Context(), catalog.Filters{
		Status:   c.Query("status"),
		Category: c.Query("level"),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_classes", "Error fetching classes.")
		return
	}

	httpresp.List(c, classes)
}

func (h *ClassHandler) GetBySlug(c *gin.Context) {
	class, err := h.store.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.From(c, err, "failed_to_get_class")
		return
	}

	httpresp.OK(c, class)
}

func (h *ClassHandler) Create(c *gin.Context) {
	up, err := imageUpload(c, h.storage)
	if err != nil {
		httperr.From(c, err, "failed_to_store_upload")
		return
	}

	class, err := h.store.Create(c.Request.Context(), formFields(c, classFieldKeys()), up)
	if err != nil {
		httperr.From(c, err, "failed_to_create_class")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "class_created",
		Entity:   "class",
		EntityID: &class.ID,
	})

	httpresp.Created(c, class)
}

func (h *ClassHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid class id.")
		return
	}

	up, err := imageUpload(c, h.storage)
	if err != nil {
		httperr.From(c, err, "failed_to_store_upload")
		return
	}

	class, err := h.store.Update(c.Request.Context(), uint(id), formFields(c, classFieldKeys()), up)
	if err != nil {
		httperr.From(c, err, "failed_to_update_class")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "class_updated",
		Entity:   "class",
		EntityID: &class.ID,
	})

	httpresp.OK(c, class)
}

func (h *ClassHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid class id.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), uint(id)); err != nil {
		httperr.From(c, err, "failed_to_delete_class")
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		AdminID:  adminIDFrom(c),
		Action:   "class_deleted",
		Entity:   "class",
		EntityID: &entityID,
	})

	httpresp.Message(c, "Class deleted successfully.")
}
