package handler

import "github.com/gin-gonic/gin"

// Register 挂载仪表盘接口，api 通常为 /api/v1/dash
func (h *Handlers) Register(api *gin.RouterGroup) {
	api.GET("/dashboard/summary", h.DashboardSummary)

	orders := registerView(api, h, h.svc.Orders.View)
	orders.POST("", h.CreateOrder)
	orders.POST("/bulk-status", h.BulkOrderStatus)
	selection := orders.Group("/selection")
	{
		selection.GET("", h.GetOrderSelection)
		selection.POST("", h.SelectOrders)
		selection.DELETE("", h.ClearOrderSelection)
		selection.POST("/status", h.SelectionStatus)
		selection.POST("/:id/toggle", h.ToggleOrder)
		selection.DELETE("/:id", h.DeselectOrder)
	}

	customers := registerView(api, h, h.svc.Customers.View)
	customers.POST("", h.CreateCustomer)

	invoices := registerView(api, h, h.svc.Invoices.View)
	invoices.POST("", h.CreateInvoice)
	invoices.POST("/mark-overdue", h.MarkOverdue)
	invoices.GET("/:id/aging", h.InvoiceAging)

	inventory := registerView(api, h, h.svc.Inventory.View)
	inventory.POST("", h.CreateProduct)
	inventory.POST("/:id/adjust", h.AdjustStock)
	inventory.GET("/:id/stock", h.StockLevel)

	registerView(api, h, h.svc.Deliveries.View)
	registerView(api, h, h.svc.Routes.View)
	registerView(api, h, h.svc.SalesReps.View)

	notifications := api.Group("/notifications")
	{
		notifications.GET("", h.ListNotifications)
		notifications.GET("/stream", h.StreamNotifications)
		notifications.DELETE("/:id", h.DismissNotification)
	}
}
