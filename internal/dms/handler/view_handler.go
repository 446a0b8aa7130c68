package handler

import (
	"bytes"

	"github.com/gin-gonic/gin"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/export"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/service"
)

// viewHandler 每个列表视图共用的读接口和状态修改
type viewHandler[T entity.Record] struct {
	h    *Handlers
	view *service.View[T]
}

// registerView GET /<view>、/counts、/tones、/export、/:id；POST /:id/status
func registerView[T entity.Record](g *gin.RouterGroup, h *Handlers, view *service.View[T]) *gin.RouterGroup {
	vh := &viewHandler[T]{h: h, view: view}
	rg := g.Group("/" + view.Name())
	rg.GET("", vh.List)
	rg.GET("/counts", vh.Counts)
	rg.GET("/tones", vh.Tones)
	rg.GET("/export", vh.Export)
	rg.GET("/:id", vh.Get)
	rg.POST("/:id/status", vh.UpdateStatus)
	return rg
}

// List GET /<view>
func (vh *viewHandler[T]) List(c *gin.Context) {
	q, err := parseQuery(c)
	if err != nil {
		vh.h.fail(c, err)
		return
	}
	res, err := vh.view.List(c.Request.Context(), q)
	if err != nil {
		vh.h.fail(c, err)
		return
	}
	Success(c, res)
}

// Counts GET /<view>/counts
func (vh *viewHandler[T]) Counts(c *gin.Context) {
	counts, err := vh.view.Counts(c.Request.Context())
	if err != nil {
		vh.h.fail(c, err)
		return
	}
	Success(c, counts)
}

// Tones GET /<view>/tones
func (vh *viewHandler[T]) Tones(c *gin.Context) {
	Success(c, vh.view.Tones())
}

// Get GET /<view>/:id
func (vh *viewHandler[T]) Get(c *gin.Context) {
	item, err := vh.view.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		vh.h.fail(c, err)
		return
	}
	Success(c, item)
}

// Export GET /<view>/export?format=csv|xlsx
func (vh *viewHandler[T]) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		vh.h.fail(c, err)
		return
	}
	q, err := parseQuery(c)
	if err != nil {
		vh.h.fail(c, err)
		return
	}
	table, err := vh.view.Export(c.Request.Context(), q)
	if err != nil {
		vh.h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, table); err != nil {
		vh.h.fail(c, err)
		return
	}
	filename := export.Filename(vh.view.Name(), format, vh.view.Now())
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(200, format.ContentType(), buf.Bytes())
}

// UpdateStatusRequest 修改状态请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus POST /<view>/:id/status
func (vh *viewHandler[T]) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	item, err := vh.view.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		vh.h.fail(c, err)
		return
	}
	Success(c, item)
}
