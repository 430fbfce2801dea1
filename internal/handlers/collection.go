// internal/handlers/collection.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/phixforge/phixforge-backend/internal/services"
	"github.com/phixforge/phixforge-backend/internal/utils"
)

// CollectionHandler serves the reusable-data collections. All nine behave the
// same way: flat records, list ordered by a display field, full-record edits,
// plus a replace-all used when a whole collection is pasted in.
type CollectionHandler[T any] struct {
	service *services.CollectionService[T]
	name    string
}

func NewCollectionHandler[T any](service *services.CollectionService[T], name string) *CollectionHandler[T] {
	return &CollectionHandler[T]{service: service, name: name}
}

// GET /<collection>
func (h *CollectionHandler[T]) List(c *gin.Context) {
	records, err := h.service.List()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, records)
}

// GET /<collection>/:id
func (h *CollectionHandler[T]) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.service.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SuccessResponse(c, record)
}

// POST /<collection>
func (h *CollectionHandler[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.BadRequestResponse(c, "Invalid payload", err.Error())
		return
	}

	created, err := h.service.Create(&record)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}
	utils.CreatedResponse(c, created)
}

// PUT /<collection>/:id
func (h *CollectionHandler[T]) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.BadRequestResponse(c, "Invalid payload", err.Error())
		return
	}

	updated, err := h.service.Update(id, &record)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.SuccessResponse(c, updated)
}

// DELETE /<collection>/:id
func (h *CollectionHandler[T]) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(id); err != nil {
		h.respondError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": id})
}

// PUT /<collection>
func (h *CollectionHandler[T]) ReplaceAll(c *gin.Context) {
	var records []T
	if err := c.ShouldBindJSON(&records); err != nil {
		utils.BadRequestResponse(c, "Invalid payload", err.Error())
		return
	}

	if err := h.service.ReplaceAll(records); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, gin.H{"count": len(records)})
}

// Register mounts the handler's routes on a collection group.
func (h *CollectionHandler[T]) Register(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.PUT("", h.ReplaceAll)
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

func (h *CollectionHandler[T]) respondError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrRecordNotFound) {
		utils.NotFoundResponse(c, h.name)
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}
