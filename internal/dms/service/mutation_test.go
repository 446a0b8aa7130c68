package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/notify"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/store"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

func TestCreateOrderContinuesSequence(t *testing.T) {
	svc, rec := newTestServices(t)

	order, err := svc.Orders.Create(ctx, &CreateOrderRequest{Customer: "Village Kiosk", Location: "Kiambu", Amount: 7250, Items: 6})
	require.NoError(t, err)
	assert.Equal(t, "ORD-2024-011", order.ID)
	assert.Equal(t, "KSh 7,250", order.Amount)
	assert.Equal(t, "2024-01-16", order.Date)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, entity.PriorityMedium, order.Priority)
	assert.Equal(t, notify.TypeSuccess, rec.last().Type)

	stored, err := svc.Orders.Get(ctx, "ORD-2024-011")
	require.NoError(t, err)
	assert.Equal(t, *order, stored)
}

func TestCreateOrderValidation(t *testing.T) {
	svc, rec := newTestServices(t)

	for _, req := range []CreateOrderRequest{
		{Customer: " ", Amount: 100, Items: 1},
		{Customer: "Corner Duka", Amount: 0, Items: 1},
		{Customer: "Corner Duka", Amount: 100, Items: 0},
		{Customer: "Corner Duka", Amount: 100, Items: 1, Priority: "urgent"},
	} {
		_, err := svc.Orders.Create(ctx, &req)
		assert.True(t, errorx.IsValidation(err), "%+v", req)
	}
	assert.EqualValues(t, 0, svc.Orders.Collection().Version())
	assert.Empty(t, rec.types())
}

func TestOrderStatusTransitions(t *testing.T) {
	svc, rec := newTestServices(t)

	order, err := svc.Orders.UpdateStatus(ctx, "ORD-2024-003", entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.Equal(t, "Order ORD-2024-003 marked processing", rec.last().Message)

	_, err = svc.Orders.UpdateStatus(ctx, "ORD-2024-001", entity.OrderStatusPending)
	assert.True(t, errorx.IsValidation(err))
	assert.Equal(t, notify.TypeError, rec.last().Type)

	_, err = svc.Orders.UpdateStatus(ctx, "ORD-2024-001", "lost")
	assert.True(t, errorx.IsValidation(err))

	_, err = svc.Orders.UpdateStatus(ctx, "ORD-2024-404", entity.OrderStatusShipped)
	assert.True(t, errorx.IsNotFound(err))
}

func TestSameStatusIsNoop(t *testing.T) {
	svc, rec := newTestServices(t)
	before := len(rec.types())

	order, err := svc.Orders.UpdateStatus(ctx, "ORD-2024-002", entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
	assert.EqualValues(t, 0, svc.Orders.Collection().Version())
	assert.Len(t, rec.types(), before)
}

func TestBulkUpdateStatusReportsEachOutcome(t *testing.T) {
	svc, rec := newTestServices(t)

	sel := store.NewSelection("ORD-2024-003", "ORD-2024-008", "ORD-2024-404", "ORD-2024-006", "ORD-2024-004")
	res, err := svc.Orders.BulkUpdateSelection(ctx, sel, entity.OrderStatusProcessing)
	require.NoError(t, err)

	assert.Equal(t, []string{"ORD-2024-003", "ORD-2024-008"}, res.Updated)
	assert.Equal(t, []string{"ORD-2024-004"}, res.Unchanged)
	assert.Equal(t, []string{"ORD-2024-404"}, res.Missing)
	assert.Contains(t, res.Failed, "ORD-2024-006")
	assert.Equal(t, 5, sel.Len())
	assert.Equal(t, []notify.Type{notify.TypeSuccess, notify.TypeWarning}, rec.types())

	_, err = svc.Orders.BulkUpdateStatus(ctx, nil, entity.OrderStatusShipped)
	assert.True(t, errorx.IsValidation(err))
	_, err = svc.Orders.BulkUpdateStatus(ctx, []string{"ORD-2024-003"}, "lost")
	assert.True(t, errorx.IsValidation(err))
}

func TestCreateCustomer(t *testing.T) {
	svc, _ := newTestServices(t)

	c, err := svc.Customers.Create(ctx, &CreateCustomerRequest{
		Name: "Jirani Mart", Type: entity.CustomerTypeRetail, Contact: "Esther Mueni", Location: "Ruaka",
	})
	require.NoError(t, err)
	assert.Equal(t, "CUS-008", c.ID)
	assert.Equal(t, entity.CustomerStatusActive, c.Status)
	assert.Equal(t, "KSh 0", c.TotalSpent)

	_, err = svc.Customers.Create(ctx, &CreateCustomerRequest{Name: "X", Type: "Kiosk", Contact: "Y", Location: "Z"})
	assert.True(t, errorx.IsValidation(err))
	_, err = svc.Customers.Create(ctx, &CreateCustomerRequest{Name: "X", Type: entity.CustomerTypeRetail, Location: "Z"})
	assert.True(t, errorx.IsValidation(err))
}

func TestCustomerStatusToggles(t *testing.T) {
	svc, _ := newTestServices(t)

	c, err := svc.Customers.UpdateStatus(ctx, "CUS-006", entity.CustomerStatusActive)
	require.NoError(t, err)
	assert.Equal(t, entity.CustomerStatusActive, c.Status)

	counts, err := svc.Customers.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, counts[entity.CustomerStatusActive])
	assert.Equal(t, 0, counts[entity.CustomerStatusInactive])
}

func TestCreateInvoiceFromLines(t *testing.T) {
	svc, _ := newTestServices(t)

	inv, err := svc.Invoices.Create(ctx, &CreateInvoiceRequest{
		OrderID: "ORD-2024-008",
		Items: []InvoiceLine{
			{Description: "Kimbo 1kg", Quantity: 4, UnitPrice: 700},
			{Description: "Bread 400g", Quantity: 20, UnitPrice: 65.5},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-008", inv.ID)
	assert.Equal(t, "Mama Njeri Shop", inv.Customer)
	assert.Equal(t, "KSh 4,110", inv.Amount)
	assert.Equal(t, "2024-01-16", inv.IssueDate)
	assert.Equal(t, "2024-02-15", inv.DueDate)
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, "KSh 65.50", inv.Items[1].UnitPrice)
	assert.Equal(t, "KSh 1,310", inv.Items[1].Total)
	assert.Equal(t, "INV-2024-008", inv.Items[0].InvoiceID)
}

func TestCreateInvoiceValidation(t *testing.T) {
	svc, _ := newTestServices(t)
	line := []InvoiceLine{{Description: "Omo 1kg", Quantity: 1, UnitPrice: 2000}}

	for _, req := range []CreateInvoiceRequest{
		{Customer: "Corner Duka"},
		{Items: line},
		{OrderID: "ORD-2024-404", Items: line},
		{Customer: "Corner Duka", DueDate: "someday", Items: line},
		{Customer: "Corner Duka", DueDate: "2024-01-01", Items: line},
		{Customer: "Corner Duka", Items: []InvoiceLine{{Description: "Omo", Quantity: 0, UnitPrice: 10}}},
	} {
		_, err := svc.Invoices.Create(ctx, &req)
		assert.True(t, errorx.IsValidation(err), "%+v", req)
	}
}

func TestMarkOverdueSweepsSentInvoices(t *testing.T) {
	svc, rec := newTestServices(t)

	marked, err := svc.Invoices.MarkOverdue(ctx, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"INV-2024-006"}, marked)

	inv, _ := svc.Invoices.Get(ctx, "INV-2024-006")
	assert.Equal(t, entity.InvoiceStatusOverdue, inv.Status)
	assert.Equal(t, notify.TypeWarning, rec.last().Type)

	again, err := svc.Invoices.MarkOverdue(ctx, fixedNow)
	require.NoError(t, err)
	assert.Empty(t, again)

	later, err := svc.Invoices.MarkOverdue(ctx, fixedNow.Add(60*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"INV-2024-002"}, later)
}

func TestAdjustStockRecomputesValue(t *testing.T) {
	svc, _ := newTestServices(t)

	p, err := svc.Inventory.AdjustStock(ctx, "PRD-006", 100)
	require.NoError(t, err)
	assert.Equal(t, 120, p.CurrentStock)
	assert.Equal(t, "KSh 45,000", p.TotalValue)
	assert.Equal(t, "2024-01-16", p.LastRestocked)

	status, pct, err := svc.Inventory.StockStatus(ctx, "PRD-006")
	require.NoError(t, err)
	assert.Equal(t, entity.StockIn, status)
	assert.Equal(t, 30.0, pct)
}

func TestAdjustStockOutflow(t *testing.T) {
	svc, rec := newTestServices(t)

	p, err := svc.Inventory.AdjustStock(ctx, "PRD-005", -100)
	require.NoError(t, err)
	assert.Equal(t, 20, p.CurrentStock)
	assert.Equal(t, "KSh 37,000", p.TotalValue)
	assert.Equal(t, "2024-01-10", p.LastRestocked)
	assert.Equal(t, []notify.Type{notify.TypeSuccess, notify.TypeWarning}, rec.types())

	_, err = svc.Inventory.AdjustStock(ctx, "PRD-005", -21)
	assert.True(t, errorx.IsValidation(err))

	_, err = svc.Inventory.AdjustStock(ctx, "PRD-404", 1)
	assert.True(t, errorx.IsNotFound(err))

	version := svc.Inventory.Collection().Version()
	_, err = svc.Inventory.AdjustStock(ctx, "PRD-005", 0)
	require.NoError(t, err)
	assert.Equal(t, version, svc.Inventory.Collection().Version())
}

func TestCreateProduct(t *testing.T) {
	svc, _ := newTestServices(t)

	p, err := svc.Inventory.Create(ctx, &CreateProductRequest{
		Name: "Ketepa Tea 250g", SKU: "bev-kt-250", Category: "Beverages", CurrentStock: 60, MinStock: 20, MaxStock: 200, UnitPrice: 180,
	})
	require.NoError(t, err)
	assert.Equal(t, "PRD-009", p.ID)
	assert.Equal(t, "BEV-KT-250", p.SKU)
	assert.Equal(t, "KSh 10,800", p.TotalValue)
	assert.Equal(t, "2024-01-16", p.LastRestocked)

	_, err = svc.Inventory.Create(ctx, &CreateProductRequest{Name: "Dup", SKU: "BEV-CC-500", MaxStock: 10, UnitPrice: 1})
	assert.True(t, errorx.IsValidation(err))
	_, err = svc.Inventory.Create(ctx, &CreateProductRequest{Name: "Bad", SKU: "X-1", MinStock: 50, MaxStock: 10, UnitPrice: 1})
	assert.True(t, errorx.IsValidation(err))
}

func TestConcurrentCreatesKeepSKUUnique(t *testing.T) {
	svc, _ := newTestServices(t)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dupes   int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Inventory.Create(ctx, &CreateProductRequest{
				Name: "Ketepa Tea 250g", SKU: "BEV-KT-250", MaxStock: 100, UnitPrice: 180,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errorx.IsValidation(err):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 19, dupes)
	assert.Equal(t, 9, svc.Inventory.Collection().Len())
}

func TestProductStatusIsDerived(t *testing.T) {
	svc, _ := newTestServices(t)
	_, err := svc.Inventory.UpdateStatus(ctx, "PRD-001", entity.StockIn)
	assert.True(t, errorx.IsValidation(err))
}

func TestRouteAndDeliveryTransitions(t *testing.T) {
	svc, rec := newTestServices(t)

	_, err := svc.Routes.UpdateStatus(ctx, "RT-002", entity.RouteStatusCompleted)
	assert.True(t, errorx.IsValidation(err))
	r, err := svc.Routes.UpdateStatus(ctx, "RT-002", entity.RouteStatusActive)
	require.NoError(t, err)
	assert.Equal(t, entity.RouteStatusActive, r.Status)

	d, err := svc.Deliveries.UpdateStatus(ctx, "DEL-004", entity.DeliveryStatusScheduled)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryStatusScheduled, d.Status)

	rep, err := svc.SalesReps.UpdateStatus(ctx, "SR-003", entity.SalesRepStatusActive)
	require.NoError(t, err)
	assert.Equal(t, entity.SalesRepStatusActive, rep.Status)
	assert.Equal(t, "Sales Rep SR-003 marked active", rec.last().Message)
}

func TestDashboardSummary(t *testing.T) {
	svc, _ := newTestServices(t)

	sum, err := svc.Dashboard.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "KSh 318,900", sum.Revenue)
	assert.Equal(t, "KSh 359,650", sum.Outstanding)
	assert.Equal(t, 1, sum.OverdueInvoices)
	assert.Equal(t, 2, sum.LowStock)
	assert.Equal(t, 1, sum.OutOfStock)
	assert.Equal(t, 2, sum.ActiveRoutes)
	assert.Equal(t, 6, sum.ActiveCustomers)
	assert.Equal(t, 10, sum.Totals[ViewOrders])
	assert.Equal(t, 2, sum.OrderStatus[entity.OrderStatusPending])
	assert.InDelta(t, 82.69, sum.TargetAttainment, 0.01)
	assert.Equal(t, fixedNow, sum.GeneratedAt)
}
