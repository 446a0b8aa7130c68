package seed

import "github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"

// Dataset 所有视图的初始集合
type Dataset struct {
	Customers  []entity.Customer
	Orders     []entity.Order
	Invoices   []entity.Invoice
	Products   []entity.Product
	Deliveries []entity.Delivery
	Routes     []entity.Route
	SalesReps  []entity.SalesRep
}

// Default 内置演示数据
func Default() *Dataset {
	return &Dataset{
		Customers:  Customers(),
		Orders:     Orders(),
		Invoices:   Invoices(),
		Products:   Products(),
		Deliveries: Deliveries(),
		Routes:     Routes(),
		SalesReps:  SalesReps(),
	}
}
