package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/store"
)

// SelectionView 勾选集响应
type SelectionView struct {
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

func selectionView(sel *store.Selection) SelectionView {
	return SelectionView{IDs: sel.IDs(), Count: sel.Len()}
}

// SelectRequest 批量勾选请求
type SelectRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// GetOrderSelection GET /orders/selection
func (h *Handlers) GetOrderSelection(c *gin.Context) {
	Success(c, selectionView(h.svc.Orders.Selection()))
}

// SelectOrders POST /orders/selection
func (h *Handlers) SelectOrders(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	sel := h.svc.Orders.Selection()
	sel.Add(req.IDs...)
	Success(c, selectionView(sel))
}

// ToggleOrder POST /orders/selection/:id/toggle
func (h *Handlers) ToggleOrder(c *gin.Context) {
	id := c.Param("id")
	selected := h.svc.Orders.Selection().Toggle(id)
	Success(c, gin.H{"id": id, "selected": selected})
}

// DeselectOrder DELETE /orders/selection/:id
func (h *Handlers) DeselectOrder(c *gin.Context) {
	id := c.Param("id")
	sel := h.svc.Orders.Selection()
	if !sel.Contains(id) {
		NotFound(c, "order not selected: "+id)
		return
	}
	sel.Remove(id)
	Success(c, selectionView(sel))
}

// ClearOrderSelection DELETE /orders/selection
func (h *Handlers) ClearOrderSelection(c *gin.Context) {
	sel := h.svc.Orders.Selection()
	sel.Clear()
	Success(c, selectionView(sel))
}

// SelectionStatus POST /orders/selection/status
// 勾选集保持不变，已不存在的订单在结果的 missing 中列出
func (h *Handlers) SelectionStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	result, err := h.svc.Orders.BulkUpdateSelection(c.Request.Context(), h.svc.Orders.Selection(), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	Success(c, result)
}
