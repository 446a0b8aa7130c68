package service

import (
	"context"
	"time"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/metrics"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
)

// Summary 仪表盘汇总
type Summary struct {
	Totals            map[string]int `json:"totals"`
	OrderStatus       map[string]int `json:"orderStatus"`
	Revenue           string         `json:"revenue"`
	RevenueAmount     float64        `json:"revenueAmount"`
	Outstanding       string         `json:"outstanding"`
	OutstandingAmount float64        `json:"outstandingAmount"`
	OverdueInvoices   int            `json:"overdueInvoices"`
	LowStock          int            `json:"lowStock"`
	OutOfStock        int            `json:"outOfStock"`
	ActiveRoutes      int            `json:"activeRoutes"`
	ActiveCustomers   int            `json:"activeCustomers"`
	TargetAttainment  float64        `json:"targetAttainment"`
	GeneratedAt       time.Time      `json:"generatedAt"`
}

// DashboardService 跨视图汇总
type DashboardService struct {
	svc *Services
	now func() time.Time
}

func NewDashboardService(svc *Services, deps Deps) *DashboardService {
	return &DashboardService{svc: svc, now: deps.withDefaults().Clock}
}

// Summary 收入 = 已送达且已付款订单金额之和；应收 = sent + overdue 发票金额之和
func (s *DashboardService) Summary(ctx context.Context) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	orders := s.svc.Orders.coll.Snapshot()
	invoices := s.svc.Invoices.coll.Snapshot()
	products := s.svc.Inventory.coll.Snapshot()
	routes := s.svc.Routes.coll.Snapshot()
	customers := s.svc.Customers.coll.Snapshot()
	reps := s.svc.SalesReps.coll.Snapshot()

	sum := &Summary{
		Totals: map[string]int{
			ViewOrders:     len(orders),
			ViewCustomers:  len(customers),
			ViewInvoices:   len(invoices),
			ViewInventory:  len(products),
			ViewDeliveries: s.svc.Deliveries.coll.Len(),
			ViewRoutes:     len(routes),
			ViewSalesReps:  len(reps),
		},
		OrderStatus: OrderSchema.StatusCounts(orders),
		GeneratedAt: s.now(),
	}

	for _, o := range orders {
		if o.Status == entity.OrderStatusDelivered && o.PaymentStatus == entity.PaymentStatusPaid {
			sum.RevenueAmount += query.ParseAmount(o.Amount)
		}
	}
	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoiceStatusOverdue:
			sum.OverdueInvoices++
			sum.OutstandingAmount += query.ParseAmount(inv.Amount)
		case entity.InvoiceStatusSent:
			sum.OutstandingAmount += query.ParseAmount(inv.Amount)
		}
	}
	for _, p := range products {
		switch metrics.ProductStockStatus(p) {
		case entity.StockLow:
			sum.LowStock++
		case entity.StockOut:
			sum.OutOfStock++
		}
	}
	for _, r := range routes {
		if r.Status == entity.RouteStatusActive {
			sum.ActiveRoutes++
		}
	}
	for _, c := range customers {
		if c.Status == entity.CustomerStatusActive {
			sum.ActiveCustomers++
		}
	}
	var sales, target float64
	for _, r := range reps {
		sales += query.ParseAmount(r.Sales)
		target += query.ParseAmount(r.Target)
	}
	sum.TargetAttainment = metrics.Ratio(sales, target)

	sum.Revenue = query.FormatKSh(sum.RevenueAmount)
	sum.Outstanding = query.FormatKSh(sum.OutstandingAmount)
	return sum, nil
}
