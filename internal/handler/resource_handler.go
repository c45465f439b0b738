package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edugest/edugest-api/internal/models"
	"github.com/edugest/edugest-api/internal/service"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
	"github.com/edugest/edugest-api/pkg/export"
	"github.com/edugest/edugest-api/pkg/response"
)

type resourceService[T any] interface {
	Schema() models.Schema
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id int64, item *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}

type exportRenderer interface {
	Render(schema models.Schema, records interface{}, format export.Format) (*service.ExportFile, error)
}

// ResourceHandler exposes list, create, update, delete and export for one resource.
type ResourceHandler[T any] struct {
	service resourceService[T]
	exports exportRenderer
}

// NewResourceHandler constructs a ResourceHandler. A nil exporter disables the export route.
func NewResourceHandler[T any](svc resourceService[T], exports exportRenderer) *ResourceHandler[T] {
	return &ResourceHandler[T]{service: svc, exports: exports}
}

// Mount registers the routes on group, which is expected to be /api/<table>.
func (h *ResourceHandler[T]) Mount(group *gin.RouterGroup) {
	group.GET("", h.List)
	group.POST("", h.Create)
	if h.exports != nil {
		group.GET("/export", h.Export)
	}
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List rows
// @Description Returns every row of the resource, newest first
// @Tags Resources
// @Produce json
// @Security BearerAuth
// @Param resource path string true "schools, branches, teachers, students, classes or schedules"
// @Success 200 {array} object
// @Failure 500 {object} response.ErrorBody
// @Router /{resource} [get]
func (h *ResourceHandler[T]) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create godoc
// @Summary Create row
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource path string true "Resource name"
// @Success 200 {object} object
// @Failure 400 {object} response.ErrorBody
// @Router /{resource} [post]
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), &item)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, created)
}

// Update godoc
// @Summary Replace row
// @Description Replaces every column; omitted fields become null. Responds null when the id does not exist.
// @Tags Resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param resource path string true "Resource name"
// @Param id path int true "Row id"
// @Success 200 {object} object
// @Failure 400 {object} response.ErrorBody
// @Router /{resource}/{id} [put]
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id, ok := rowID(c)
	if !ok {
		return
	}

	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		response.Error(c, invalidPayload(err))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &item)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete row
// @Description Dependants are cascaded or nullified by the database
// @Tags Resources
// @Produce json
// @Security BearerAuth
// @Param resource path string true "Resource name"
// @Param id path int true "Row id"
// @Success 200 {object} response.OKBody
// @Failure 400 {object} response.ErrorBody
// @Router /{resource}/{id} [delete]
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id, ok := rowID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c)
}

// Export godoc
// @Summary Export rows
// @Tags Resources
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param resource path string true "Resource name"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.ErrorBody
// @Router /{resource}/export [get]
func (h *ResourceHandler[T]) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Formato de exportação inválido"))
		return
	}

	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := h.exports.Render(h.service.Schema(), items, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

func rowID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Identificador inválido"))
		return 0, false
	}
	return id, true
}

func invalidPayload(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Pedido inválido: "+err.Error())
}
