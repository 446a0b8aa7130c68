package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/metrics"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/service"
)

// CreateOrder POST /orders
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	order, err := h.svc.Orders.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	Created(c, order)
}

// BulkOrderStatus POST /orders/bulk-status
func (h *Handlers) BulkOrderStatus(c *gin.Context) {
	var req service.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	result, err := h.svc.Orders.BulkUpdateStatus(c.Request.Context(), req.IDs, req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	Success(c, result)
}

// CreateCustomer POST /customers
func (h *Handlers) CreateCustomer(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	customer, err := h.svc.Customers.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	Created(c, customer)
}

// CreateInvoice POST /invoices
func (h *Handlers) CreateInvoice(c *gin.Context) {
	var req service.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	invoice, err := h.svc.Invoices.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	Created(c, invoice)
}

// MarkOverdue POST /invoices/mark-overdue
func (h *Handlers) MarkOverdue(c *gin.Context) {
	ids, err := h.svc.Invoices.MarkOverdue(c.Request.Context(), h.svc.Invoices.Now())
	if err != nil {
		h.fail(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	Success(c, gin.H{"updated": ids})
}

// InvoiceAging GET /invoices/:id/aging
func (h *Handlers) InvoiceAging(c *gin.Context) {
	aging, err := h.svc.Invoices.Aging(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	Success(c, aging)
}

// CreateProduct POST /inventory
func (h *Handlers) CreateProduct(c *gin.Context) {
	var req service.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	product, err := h.svc.Inventory.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	Created(c, product)
}

// AdjustStockRequest 库存调整请求，delta 可为负
type AdjustStockRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// AdjustStock POST /inventory/:id/adjust
func (h *Handlers) AdjustStock(c *gin.Context) {
	var req AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequestWithValidation(c, err)
		return
	}
	product, err := h.svc.Inventory.AdjustStock(c.Request.Context(), c.Param("id"), *req.Delta)
	if err != nil {
		h.fail(c, err)
		return
	}
	Success(c, product)
}

// StockLevel GET /inventory/:id/stock
func (h *Handlers) StockLevel(c *gin.Context) {
	id := c.Param("id")
	status, pct, err := h.svc.Inventory.StockStatus(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	Success(c, gin.H{
		"id":              id,
		"stockStatus":     status,
		"stockPercentage": pct,
		"tone":            metrics.ToneOf(status),
	})
}

// DashboardSummary GET /dashboard/summary
func (h *Handlers) DashboardSummary(c *gin.Context) {
	summary, err := h.svc.Dashboard.Summary(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	Success(c, summary)
}
