// Package service implements the per-view use cases on top of the list engine
// and the in-memory collections.
package service

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/cache"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/seed"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/store"
)

// Deps 服务依赖，零值字段使用默认实现
type Deps struct {
	Cache    cache.ViewCache
	Notifier Notifier
	Logger   *zap.Logger
	Clock    func() time.Time
	// Instance 缓存键前缀，区分共享同一缓存的进程；为空时随机生成
	Instance string
}

func (d Deps) withDefaults() Deps {
	if d.Instance == "" {
		d.Instance = uuid.New().String()
	}
	if d.Cache == nil {
		d.Cache = cache.Noop{}
	}
	if d.Notifier == nil {
		d.Notifier = nopNotifier{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	return d
}

// Services 服务集合
type Services struct {
	Orders     *OrderService
	Customers  *CustomerService
	Invoices   *InvoiceService
	Inventory  *InventoryService
	Deliveries *DeliveryService
	Routes     *RouteService
	SalesReps  *SalesRepService
	Dashboard  *DashboardService
}

// NewServices 用初始数据集创建所有视图的集合和服务
func NewServices(ds *seed.Dataset, deps Deps) (*Services, error) {
	deps = deps.withDefaults()

	customers, err := store.New("customer", ds.Customers)
	if err != nil {
		return nil, err
	}
	orders, err := store.New("order", ds.Orders)
	if err != nil {
		return nil, err
	}
	invoices, err := store.New("invoice", ds.Invoices)
	if err != nil {
		return nil, err
	}
	products, err := store.New("product", ds.Products)
	if err != nil {
		return nil, err
	}
	deliveries, err := store.New("delivery", ds.Deliveries)
	if err != nil {
		return nil, err
	}
	routes, err := store.New("route", ds.Routes)
	if err != nil {
		return nil, err
	}
	reps, err := store.New("sales rep", ds.SalesReps)
	if err != nil {
		return nil, err
	}

	s := &Services{
		Orders:     NewOrderService(orders, deps),
		Customers:  NewCustomerService(customers, deps),
		Invoices:   NewInvoiceService(invoices, orders, deps),
		Inventory:  NewInventoryService(products, deps),
		Deliveries: NewDeliveryService(deliveries, deps),
		Routes:     NewRouteService(routes, deps),
		SalesReps:  NewSalesRepService(reps, deps),
	}
	s.Dashboard = NewDashboardService(s, deps)
	return s, nil
}

// DeliveryService 配送
type DeliveryService struct {
	*View[entity.Delivery]
}

func NewDeliveryService(coll *store.Collection[entity.Delivery], deps Deps) *DeliveryService {
	v := newView(ViewDeliveries, "delivery", DeliverySchema, coll, deps.withDefaults())
	v.status = &statusSpec[entity.Delivery]{
		get:         func(d entity.Delivery) string { return d.Status },
		set:         func(d *entity.Delivery, s string) { d.Status = s },
		transitions: entity.DeliveryTransitions,
	}
	return &DeliveryService{View: v}
}

// RouteService 线路
type RouteService struct {
	*View[entity.Route]
}

func NewRouteService(coll *store.Collection[entity.Route], deps Deps) *RouteService {
	v := newView(ViewRoutes, "route", RouteSchema, coll, deps.withDefaults())
	v.status = &statusSpec[entity.Route]{
		get:         func(r entity.Route) string { return r.Status },
		set:         func(r *entity.Route, s string) { r.Status = s },
		transitions: entity.RouteTransitions,
	}
	return &RouteService{View: v}
}

// SalesRepService 销售团队
type SalesRepService struct {
	*View[entity.SalesRep]
}

func NewSalesRepService(coll *store.Collection[entity.SalesRep], deps Deps) *SalesRepService {
	v := newView(ViewSalesReps, "sales rep", SalesRepSchema, coll, deps.withDefaults())
	v.status = &statusSpec[entity.SalesRep]{
		get:         func(r entity.SalesRep) string { return r.Status },
		set:         func(r *entity.SalesRep, s string) { r.Status = s },
		transitions: entity.SalesRepTransitions,
	}
	return &SalesRepService{View: v}
}
