package service

import (
	"strconv"
	"time"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/metrics"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
)

// 视图名，同时用作路由段和导出文件名
const (
	ViewOrders     = "orders"
	ViewCustomers  = "customers"
	ViewInvoices   = "invoices"
	ViewInventory  = "inventory"
	ViewDeliveries = "deliveries"
	ViewRoutes     = "routes"
	ViewSalesReps  = "sales-reps"
)

func text[T any](name string, value func(T) string) query.Field[T] {
	return query.Field[T]{Name: name, Kind: query.KindText, Value: value, Searchable: true, Sortable: true}
}

func enum[T any](name string, values []string, value func(T) string) query.Field[T] {
	return query.Field[T]{Name: name, Kind: query.KindEnum, Value: value, Values: values, Filterable: true, Sortable: true}
}

func number[T any](name string, value func(T) string) query.Field[T] {
	return query.Field[T]{Name: name, Kind: query.KindNumber, Value: value, Sortable: true}
}

func date[T any](name string, value func(T) string) query.Field[T] {
	return query.Field[T]{Name: name, Kind: query.KindDate, Value: value, Sortable: true}
}

// plain 只用于展示和导出
func plain[T any](name string, value func(T) string) query.Field[T] {
	return query.Field[T]{Name: name, Kind: query.KindText, Value: value}
}

func itoa(n int) string { return strconv.Itoa(n) }

// OrderSchema 订单视图字段
var OrderSchema = query.NewSchema[entity.Order](ViewOrders,
	text("id", func(o entity.Order) string { return o.ID }),
	text("customer", func(o entity.Order) string { return o.Customer }),
	text("location", func(o entity.Order) string { return o.Location }),
	date("date", func(o entity.Order) string { return o.Date }),
	number("amount", func(o entity.Order) string { return o.Amount }),
	number("items", func(o entity.Order) string { return itoa(o.Items) }),
	enum("status", entity.OrderStatuses, func(o entity.Order) string { return o.Status }),
	enum("paymentStatus", entity.PaymentStatuses, func(o entity.Order) string { return o.PaymentStatus }),
	enum("priority", entity.Priorities, func(o entity.Order) string { return o.Priority }),
	text("salesRep", func(o entity.Order) string { return o.SalesRep }),
).WithStatus("status")

// CustomerSchema 客户视图字段
var CustomerSchema = query.NewSchema[entity.Customer](ViewCustomers,
	text("id", func(c entity.Customer) string { return c.ID }),
	text("name", func(c entity.Customer) string { return c.Name }),
	enum("type", entity.CustomerTypes, func(c entity.Customer) string { return c.Type }),
	text("contact", func(c entity.Customer) string { return c.Contact }),
	plain("phone", func(c entity.Customer) string { return c.Phone }),
	text("email", func(c entity.Customer) string { return c.Email }),
	text("location", func(c entity.Customer) string { return c.Location }),
	number("totalOrders", func(c entity.Customer) string { return itoa(c.TotalOrders) }),
	number("totalSpent", func(c entity.Customer) string { return c.TotalSpent }),
	date("lastOrder", func(c entity.Customer) string { return c.LastOrder }),
	enum("status", entity.CustomerStatuses, func(c entity.Customer) string { return c.Status }),
).WithStatus("status")

// newInvoiceSchema daysOverdue 依赖当前时间
func newInvoiceSchema(now func() time.Time) *query.Schema[entity.Invoice] {
	return query.NewSchema[entity.Invoice](ViewInvoices,
		text("id", func(i entity.Invoice) string { return i.ID }),
		text("orderId", func(i entity.Invoice) string { return i.OrderID }),
		text("customer", func(i entity.Invoice) string { return i.Customer }),
		date("issueDate", func(i entity.Invoice) string { return i.IssueDate }),
		date("dueDate", func(i entity.Invoice) string { return i.DueDate }),
		number("amount", func(i entity.Invoice) string { return i.Amount }),
		enum("status", entity.InvoiceStatuses, func(i entity.Invoice) string { return i.Status }),
		number("daysOverdue", func(i entity.Invoice) string { return itoa(invoiceDaysOverdue(i, now())) }),
	).WithStatus("status")
}

// invoiceDaysOverdue 已付或已取消的发票不计逾期
func invoiceDaysOverdue(i entity.Invoice, now time.Time) int {
	if i.Status == entity.InvoiceStatusPaid || i.Status == entity.InvoiceStatusCancelled {
		return 0
	}
	return metrics.DaysOverdue(i.DueDate, now)
}

// ProductSchema 库存视图字段，stockStatus 为派生字段
var ProductSchema = query.NewSchema[entity.Product](ViewInventory,
	text("id", func(p entity.Product) string { return p.ID }),
	text("name", func(p entity.Product) string { return p.Name }),
	text("sku", func(p entity.Product) string { return p.SKU }),
	query.Field[entity.Product]{Name: "category", Kind: query.KindText, Value: func(p entity.Product) string { return p.Category }, Searchable: true, Filterable: true, Sortable: true},
	text("supplier", func(p entity.Product) string { return p.Supplier }),
	query.Field[entity.Product]{Name: "location", Kind: query.KindText, Value: func(p entity.Product) string { return p.Location }, Filterable: true, Sortable: true},
	number("currentStock", func(p entity.Product) string { return itoa(p.CurrentStock) }),
	number("minStock", func(p entity.Product) string { return itoa(p.MinStock) }),
	number("maxStock", func(p entity.Product) string { return itoa(p.MaxStock) }),
	number("unitPrice", func(p entity.Product) string { return p.UnitPrice }),
	number("totalValue", func(p entity.Product) string { return p.TotalValue }),
	date("lastRestocked", func(p entity.Product) string { return p.LastRestocked }),
	enum("stockStatus", entity.StockStatuses, metrics.ProductStockStatus),
	number("stockPercentage", func(p entity.Product) string {
		return strconv.FormatFloat(metrics.StockPercentage(p.CurrentStock, p.MaxStock), 'f', 1, 64)
	}),
).WithStatus("stockStatus")

// DeliverySchema 配送视图字段
var DeliverySchema = query.NewSchema[entity.Delivery](ViewDeliveries,
	text("id", func(d entity.Delivery) string { return d.ID }),
	text("orderId", func(d entity.Delivery) string { return d.OrderID }),
	text("customer", func(d entity.Delivery) string { return d.Customer }),
	text("address", func(d entity.Delivery) string { return d.Address }),
	text("driver", func(d entity.Delivery) string { return d.Driver }),
	text("vehicle", func(d entity.Delivery) string { return d.Vehicle }),
	date("scheduledDate", func(d entity.Delivery) string { return d.ScheduledDate }),
	enum("status", entity.DeliveryStatuses, func(d entity.Delivery) string { return d.Status }),
	enum("priority", entity.Priorities, func(d entity.Delivery) string { return d.Priority }),
).WithStatus("status")

// RouteSchema 线路视图字段
var RouteSchema = query.NewSchema[entity.Route](ViewRoutes,
	text("id", func(r entity.Route) string { return r.ID }),
	text("name", func(r entity.Route) string { return r.Name }),
	text("driver", func(r entity.Route) string { return r.Driver }),
	text("vehicle", func(r entity.Route) string { return r.Vehicle }),
	number("stops", func(r entity.Route) string { return itoa(r.Stops) }),
	number("distance", func(r entity.Route) string { return r.Distance }),
	plain("estimatedTime", func(r entity.Route) string { return r.EstimatedTime }),
	number("fuelCost", func(r entity.Route) string { return r.FuelCost }),
	date("date", func(r entity.Route) string { return r.Date }),
	enum("status", entity.RouteStatuses, func(r entity.Route) string { return r.Status }),
).WithStatus("status")

// SalesRepSchema 销售团队视图字段
var SalesRepSchema = query.NewSchema[entity.SalesRep](ViewSalesReps,
	text("id", func(r entity.SalesRep) string { return r.ID }),
	text("name", func(r entity.SalesRep) string { return r.Name }),
	text("email", func(r entity.SalesRep) string { return r.Email }),
	plain("phone", func(r entity.SalesRep) string { return r.Phone }),
	query.Field[entity.SalesRep]{Name: "territory", Kind: query.KindText, Value: func(r entity.SalesRep) string { return r.Territory }, Searchable: true, Filterable: true, Sortable: true},
	number("sales", func(r entity.SalesRep) string { return r.Sales }),
	number("target", func(r entity.SalesRep) string { return r.Target }),
	number("performance", func(r entity.SalesRep) string { return itoa(r.Performance) }),
	number("rating", func(r entity.SalesRep) string { return strconv.FormatFloat(r.Rating, 'f', 1, 64) }),
	number("customers", func(r entity.SalesRep) string { return itoa(r.Customers) }),
	enum("status", entity.SalesRepStatuses, func(r entity.SalesRep) string { return r.Status }),
).WithStatus("status")
