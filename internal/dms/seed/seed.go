// Package seed holds the collections every view mounts with.
// Each call returns a fresh slice so callers may own and mutate it.
package seed

import "github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"

// Customers 7 条客户记录
func Customers() []entity.Customer {
	return []entity.Customer{
		{ID: "CUS-001", Name: "Mama Njeri Shop", Type: entity.CustomerTypeRetail, Contact: "Grace Njeri", Phone: "+254 712 345 678", Email: "grace@mamanjeri.co.ke", Location: "Nairobi CBD", TotalOrders: 45, TotalSpent: "KSh 234,500", LastOrder: "2024-01-15", Status: entity.CustomerStatusActive},
		{ID: "CUS-002", Name: "Naivas Supermarket Westlands", Type: entity.CustomerTypeSupermarket, Contact: "Peter Mwangi", Phone: "+254 722 456 789", Email: "procurement@naivas.co.ke", Location: "Westlands", TotalOrders: 128, TotalSpent: "KSh 2,450,000", LastOrder: "2024-01-14", Status: entity.CustomerStatusActive},
		{ID: "CUS-003", Name: "Village Kiosk", Type: entity.CustomerTypeRetail, Contact: "John Otieno", Phone: "+254 733 567 890", Email: "otieno.kiosk@gmail.com", Location: "Kiambu", TotalOrders: 23, TotalSpent: "KSh 89,750", LastOrder: "2024-01-12", Status: entity.CustomerStatusActive},
		{ID: "CUS-004", Name: "Quickmart Kilimani", Type: entity.CustomerTypeSupermarket, Contact: "Sarah Wanjiku", Phone: "+254 744 678 901", Email: "orders@quickmart.co.ke", Location: "Kilimani", TotalOrders: 96, TotalSpent: "KSh 1,875,000", LastOrder: "2024-01-13", Status: entity.CustomerStatusActive},
		{ID: "CUS-005", Name: "Baraka Wholesalers", Type: entity.CustomerTypeWholesale, Contact: "Ali Hassan", Phone: "+254 755 789 012", Email: "ali@barakawholesale.co.ke", Location: "Gigiri Village Market", TotalOrders: 67, TotalSpent: "KSh 1,320,000", LastOrder: "2024-01-10", Status: entity.CustomerStatusActive},
		{ID: "CUS-006", Name: "Corner Duka", Type: entity.CustomerTypeRetail, Contact: "Mary Achieng", Phone: "+254 766 890 123", Email: "mary.duka@yahoo.com", Location: "Kibera", TotalOrders: 12, TotalSpent: "KSh 34,200", LastOrder: "2023-11-28", Status: entity.CustomerStatusInactive},
		{ID: "CUS-007", Name: "Tumaini Distributors", Type: entity.CustomerTypeWholesale, Contact: "James Kariuki", Phone: "+254 777 901 234", Email: "james@tumaini.co.ke", Location: "Nakuru", TotalOrders: 54, TotalSpent: "KSh 980,400", LastOrder: "2024-01-08", Status: entity.CustomerStatusActive},
	}
}

// Orders 10 条订单，金额互不相同
func Orders() []entity.Order {
	return []entity.Order{
		{ID: "ORD-2024-001", Customer: "Mama Njeri Shop", Location: "Nairobi CBD", Date: "2024-01-15", Amount: "KSh 12,500", Items: 8, Status: entity.OrderStatusDelivered, PaymentStatus: entity.PaymentStatusPaid, Priority: entity.PriorityMedium, SalesRep: "Jane Wambui"},
		{ID: "ORD-2024-002", Customer: "Naivas Supermarket Westlands", Location: "Westlands", Date: "2024-01-14", Amount: "KSh 185,000", Items: 64, Status: entity.OrderStatusShipped, PaymentStatus: entity.PaymentStatusPending, Priority: entity.PriorityHigh, SalesRep: "David Kimani"},
		{ID: "ORD-2024-003", Customer: "Village Kiosk", Location: "Kiambu", Date: "2024-01-14", Amount: "KSh 4,350", Items: 5, Status: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusPending, Priority: entity.PriorityLow, SalesRep: "Jane Wambui"},
		{ID: "ORD-2024-004", Customer: "Quickmart Kilimani", Location: "Kilimani", Date: "2024-01-13", Amount: "KSh 142,800", Items: 52, Status: entity.OrderStatusProcessing, PaymentStatus: entity.PaymentStatusPaid, Priority: entity.PriorityHigh, SalesRep: "David Kimani"},
		{ID: "ORD-2024-005", Customer: "Baraka Wholesalers", Location: "Gigiri Village Market", Date: "2024-01-12", Amount: "KSh 96,400", Items: 40, Status: entity.OrderStatusDelivered, PaymentStatus: entity.PaymentStatusPaid, Priority: entity.PriorityMedium, SalesRep: "Faith Chebet"},
		{ID: "ORD-2024-006", Customer: "Corner Duka", Location: "Kibera", Date: "2024-01-11", Amount: "KSh 2,100", Items: 3, Status: entity.OrderStatusCancelled, PaymentStatus: entity.PaymentStatusPending, Priority: entity.PriorityLow, SalesRep: "Brian Ouma"},
		{ID: "ORD-2024-007", Customer: "Tumaini Distributors", Location: "Nakuru", Date: "2024-01-10", Amount: "KSh 78,250", Items: 33, Status: entity.OrderStatusDelivered, PaymentStatus: entity.PaymentStatusOverdue, Priority: entity.PriorityMedium, SalesRep: "Faith Chebet"},
		{ID: "ORD-2024-008", Customer: "Mama Njeri Shop", Location: "Nairobi CBD", Date: "2024-01-09", Amount: "KSh 9,800", Items: 6, Status: entity.OrderStatusPending, PaymentStatus: entity.PaymentStatusPending, Priority: entity.PriorityMedium, SalesRep: "Jane Wambui"},
		{ID: "ORD-2024-009", Customer: "Naivas Supermarket Westlands", Location: "Westlands", Date: "2024-01-08", Amount: "KSh 210,000", Items: 75, Status: entity.OrderStatusDelivered, PaymentStatus: entity.PaymentStatusPaid, Priority: entity.PriorityHigh, SalesRep: "David Kimani"},
		{ID: "ORD-2024-010", Customer: "Village Kiosk", Location: "Kiambu", Date: "2024-01-05", Amount: "KSh 3,600", Items: 4, Status: entity.OrderStatusShipped, PaymentStatus: entity.PaymentStatusPaid, Priority: entity.PriorityLow, SalesRep: "Brian Ouma"},
	}
}

// Invoices 发票金额等于明细合计
func Invoices() []entity.Invoice {
	return []entity.Invoice{
		{ID: "INV-2024-001", OrderID: "ORD-2024-001", Customer: "Mama Njeri Shop", IssueDate: "2024-01-15", DueDate: "2024-02-14", Amount: "KSh 12,500", Status: entity.InvoiceStatusPaid, Items: []entity.InvoiceItem{
			{Description: "Coca-Cola 500ml (crate of 24)", Quantity: 5, UnitPrice: "KSh 1,300", Total: "KSh 6,500"},
			{Description: "Kimbo 1kg", Quantity: 10, UnitPrice: "KSh 600", Total: "KSh 6,000"},
		}},
		{ID: "INV-2024-002", OrderID: "ORD-2024-002", Customer: "Naivas Supermarket Westlands", IssueDate: "2024-01-14", DueDate: "2024-02-13", Amount: "KSh 185,000", Status: entity.InvoiceStatusSent, Items: []entity.InvoiceItem{
			{Description: "Unga Pembe 2kg (bale)", Quantity: 50, UnitPrice: "KSh 2,500", Total: "KSh 125,000"},
			{Description: "Brookside Milk 500ml (crate)", Quantity: 40, UnitPrice: "KSh 1,500", Total: "KSh 60,000"},
		}},
		{ID: "INV-2024-003", OrderID: "ORD-2024-007", Customer: "Tumaini Distributors", IssueDate: "2023-12-10", DueDate: "2024-01-09", Amount: "KSh 78,250", Status: entity.InvoiceStatusOverdue, Items: []entity.InvoiceItem{
			{Description: "Royco Cubes (carton)", Quantity: 25, UnitPrice: "KSh 1,850", Total: "KSh 46,250"},
			{Description: "Omo 1kg (carton)", Quantity: 16, UnitPrice: "KSh 2,000", Total: "KSh 32,000"},
		}},
		{ID: "INV-2024-004", OrderID: "ORD-2024-004", Customer: "Quickmart Kilimani", IssueDate: "2024-01-13", DueDate: "2024-02-12", Amount: "KSh 142,800", Status: entity.InvoiceStatusPaid, Items: []entity.InvoiceItem{
			{Description: "Kabras Sugar 2kg (bale)", Quantity: 42, UnitPrice: "KSh 3,400", Total: "KSh 142,800"},
		}},
		{ID: "INV-2024-005", OrderID: "ORD-2024-003", Customer: "Village Kiosk", IssueDate: "2024-01-14", DueDate: "2024-01-28", Amount: "KSh 4,350", Status: entity.InvoiceStatusDraft, Items: []entity.InvoiceItem{
			{Description: "Bread 400g", Quantity: 15, UnitPrice: "KSh 65", Total: "KSh 975"},
			{Description: "Fresh Fri 1L", Quantity: 9, UnitPrice: "KSh 375", Total: "KSh 3,375"},
		}},
		{ID: "INV-2024-006", OrderID: "ORD-2024-005", Customer: "Baraka Wholesalers", IssueDate: "2023-12-01", DueDate: "2023-12-31", Amount: "KSh 96,400", Status: entity.InvoiceStatusSent, Items: []entity.InvoiceItem{
			{Description: "Coca-Cola 500ml (crate of 24)", Quantity: 48, UnitPrice: "KSh 1,300", Total: "KSh 62,400"},
			{Description: "Dasani 1L (crate)", Quantity: 40, UnitPrice: "KSh 850", Total: "KSh 34,000"},
		}},
		{ID: "INV-2024-007", OrderID: "ORD-2024-006", Customer: "Corner Duka", IssueDate: "2024-01-11", DueDate: "2024-01-25", Amount: "KSh 2,100", Status: entity.InvoiceStatusCancelled, Items: []entity.InvoiceItem{
			{Description: "Kimbo 1kg", Quantity: 3, UnitPrice: "KSh 700", Total: "KSh 2,100"},
		}},
	}
}

// Products totalValue = currentStock × unitPrice
func Products() []entity.Product {
	return []entity.Product{
		{ID: "PRD-001", Name: "Coca-Cola 500ml (crate of 24)", SKU: "BEV-CC-500", Category: "Beverages", Supplier: "Coca-Cola Beverages Africa", Location: "Warehouse A", CurrentStock: 450, MinStock: 100, MaxStock: 500, UnitPrice: "KSh 1,300", TotalValue: "KSh 585,000", LastRestocked: "2024-01-12"},
		{ID: "PRD-002", Name: "Unga Pembe 2kg (bale)", SKU: "FLR-UP-2KG", Category: "Flour", Supplier: "Pembe Flour Mills", Location: "Warehouse A", CurrentStock: 45, MinStock: 50, MaxStock: 500, UnitPrice: "KSh 2,500", TotalValue: "KSh 112,500", LastRestocked: "2024-01-05"},
		{ID: "PRD-003", Name: "Brookside Milk 500ml (crate)", SKU: "DRY-BS-500", Category: "Dairy", Supplier: "Brookside Dairy", Location: "Cold Room 1", CurrentStock: 89, MinStock: 25, MaxStock: 200, UnitPrice: "KSh 1,500", TotalValue: "KSh 133,500", LastRestocked: "2024-01-14"},
		{ID: "PRD-004", Name: "Kabras Sugar 2kg (bale)", SKU: "SUG-KB-2KG", Category: "Sugar", Supplier: "West Kenya Sugar", Location: "Warehouse B", CurrentStock: 0, MinStock: 40, MaxStock: 300, UnitPrice: "KSh 3,400", TotalValue: "KSh 0", LastRestocked: "2023-12-20"},
		{ID: "PRD-005", Name: "Royco Cubes (carton)", SKU: "SPC-RC-CTN", Category: "Spices", Supplier: "Unilever Kenya", Location: "Warehouse B", CurrentStock: 120, MinStock: 30, MaxStock: 250, UnitPrice: "KSh 1,850", TotalValue: "KSh 222,000", LastRestocked: "2024-01-10"},
		{ID: "PRD-006", Name: "Fresh Fri 1L", SKU: "OIL-FF-1L", Category: "Cooking Oil", Supplier: "Pwani Oil", Location: "Warehouse A", CurrentStock: 20, MinStock: 60, MaxStock: 400, UnitPrice: "KSh 375", TotalValue: "KSh 7,500", LastRestocked: "2023-12-28"},
		{ID: "PRD-007", Name: "Omo 1kg (carton)", SKU: "DET-OM-1KG", Category: "Detergents", Supplier: "Unilever Kenya", Location: "Warehouse C", CurrentStock: 75, MinStock: 20, MaxStock: 150, UnitPrice: "KSh 2,000", TotalValue: "KSh 150,000", LastRestocked: "2024-01-08"},
		{ID: "PRD-008", Name: "Dasani 1L (crate)", SKU: "BEV-DS-1L", Category: "Beverages", Supplier: "Coca-Cola Beverages Africa", Location: "Warehouse C", CurrentStock: 280, MinStock: 50, MaxStock: 300, UnitPrice: "KSh 850", TotalValue: "KSh 238,000", LastRestocked: "2024-01-13"},
	}
}

func Deliveries() []entity.Delivery {
	return []entity.Delivery{
		{ID: "DEL-001", OrderID: "ORD-2024-001", Customer: "Mama Njeri Shop", Address: "Moi Avenue, Nairobi CBD", Driver: "Samuel Mutua", Vehicle: "KCA 123A", ScheduledDate: "2024-01-15", Status: entity.DeliveryStatusDelivered, Priority: entity.PriorityMedium},
		{ID: "DEL-002", OrderID: "ORD-2024-002", Customer: "Naivas Supermarket Westlands", Address: "Waiyaki Way, Westlands", Driver: "Joseph Kiprop", Vehicle: "KBZ 456B", ScheduledDate: "2024-01-16", Status: entity.DeliveryStatusInTransit, Priority: entity.PriorityHigh},
		{ID: "DEL-003", OrderID: "ORD-2024-004", Customer: "Quickmart Kilimani", Address: "Argwings Kodhek Rd, Kilimani", Driver: "Samuel Mutua", Vehicle: "KCA 123A", ScheduledDate: "2024-01-16", Status: entity.DeliveryStatusScheduled, Priority: entity.PriorityHigh},
		{ID: "DEL-004", OrderID: "ORD-2024-010", Customer: "Village Kiosk", Address: "Kiambu Road, Kiambu", Driver: "Peter Njoroge", Vehicle: "KDA 789C", ScheduledDate: "2024-01-14", Status: entity.DeliveryStatusFailed, Priority: entity.PriorityLow},
		{ID: "DEL-005", OrderID: "ORD-2024-005", Customer: "Baraka Wholesalers", Address: "Village Market, Gigiri", Driver: "Joseph Kiprop", Vehicle: "KBZ 456B", ScheduledDate: "2024-01-12", Status: entity.DeliveryStatusDelivered, Priority: entity.PriorityMedium},
		{ID: "DEL-006", OrderID: "ORD-2024-009", Customer: "Naivas Supermarket Westlands", Address: "Waiyaki Way, Westlands", Driver: "Peter Njoroge", Vehicle: "KDA 789C", ScheduledDate: "2024-01-08", Status: entity.DeliveryStatusDelivered, Priority: entity.PriorityHigh},
	}
}

func Routes() []entity.Route {
	return []entity.Route{
		{ID: "RT-001", Name: "CBD - Westlands Loop", Driver: "Samuel Mutua", Vehicle: "KCA 123A", Stops: 8, Distance: "32 km", EstimatedTime: "3h 15m", FuelCost: "KSh 4,200", Date: "2024-01-16", Status: entity.RouteStatusActive},
		{ID: "RT-002", Name: "Kiambu Road Run", Driver: "Peter Njoroge", Vehicle: "KDA 789C", Stops: 5, Distance: "45 km", EstimatedTime: "2h 40m", FuelCost: "KSh 5,600", Date: "2024-01-16", Status: entity.RouteStatusPlanned},
		{ID: "RT-003", Name: "Kilimani - Kibera", Driver: "Joseph Kiprop", Vehicle: "KBZ 456B", Stops: 11, Distance: "18 km", EstimatedTime: "4h 05m", FuelCost: "KSh 2,300", Date: "2024-01-15", Status: entity.RouteStatusCompleted},
		{ID: "RT-004", Name: "Nakuru Highway", Driver: "Samuel Mutua", Vehicle: "KCA 123A", Stops: 3, Distance: "160 km", EstimatedTime: "5h 30m", FuelCost: "KSh 18,500", Date: "2024-01-17", Status: entity.RouteStatusPlanned},
		{ID: "RT-005", Name: "Gigiri Circuit", Driver: "Joseph Kiprop", Vehicle: "KBZ 456B", Stops: 6, Distance: "24 km", EstimatedTime: "2h 10m", FuelCost: "KSh 3,100", Date: "2024-01-16", Status: entity.RouteStatusActive},
	}
}

func SalesReps() []entity.SalesRep {
	return []entity.SalesRep{
		{ID: "SR-001", Name: "Jane Wambui", Email: "jane.wambui@vendai.co.ke", Phone: "+254 711 111 222", Territory: "Nairobi Central", Sales: "KSh 1,250,000", Target: "KSh 1,500,000", Performance: 83, Rating: 4.6, Customers: 34, Status: entity.SalesRepStatusActive},
		{ID: "SR-002", Name: "David Kimani", Email: "david.kimani@vendai.co.ke", Phone: "+254 722 222 333", Territory: "Westlands & Kilimani", Sales: "KSh 2,840,000", Target: "KSh 2,500,000", Performance: 114, Rating: 4.9, Customers: 21, Status: entity.SalesRepStatusActive},
		{ID: "SR-003", Name: "Faith Chebet", Email: "faith.chebet@vendai.co.ke", Phone: "+254 733 333 444", Territory: "Rift Valley", Sales: "KSh 1,640,000", Target: "KSh 2,000,000", Performance: 82, Rating: 4.3, Customers: 28, Status: entity.SalesRepStatusOnLeave},
		{ID: "SR-004", Name: "Brian Ouma", Email: "brian.ouma@vendai.co.ke", Phone: "+254 744 444 555", Territory: "Kiambu & Kibera", Sales: "KSh 720,000", Target: "KSh 1,000,000", Performance: 72, Rating: 3.9, Customers: 41, Status: entity.SalesRepStatusActive},
		{ID: "SR-005", Name: "Lucy Atieno", Email: "lucy.atieno@vendai.co.ke", Phone: "+254 755 555 666", Territory: "Mombasa Road", Sales: "KSh 0", Target: "KSh 800,000", Performance: 0, Rating: 0, Customers: 0, Status: entity.SalesRepStatusInactive},
	}
}
