package entity

// CustomerType 客户类型
const (
	CustomerTypeRetail      = "Retail"
	CustomerTypeWholesale   = "Wholesale"
	CustomerTypeSupermarket = "Supermarket"
)

// CustomerStatus 客户状态
const (
	CustomerStatusActive   = "active"
	CustomerStatusInactive = "inactive"
)

var (
	CustomerTypes    = []string{CustomerTypeRetail, CustomerTypeWholesale, CustomerTypeSupermarket}
	CustomerStatuses = []string{CustomerStatusActive, CustomerStatusInactive}
)

var CustomerTransitions = NewTransitions("customer", map[string][]string{
	CustomerStatusActive:   {CustomerStatusInactive},
	CustomerStatusInactive: {CustomerStatusActive},
})

// Customer 客户
type Customer struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	Name        string `json:"name" gorm:"size:200;not null"`
	Type        string `json:"type" gorm:"size:20;not null;default:Retail"`
	Contact     string `json:"contact" gorm:"size:100"`
	Phone       string `json:"phone" gorm:"size:32"`
	Email       string `json:"email" gorm:"size:100"`
	Location    string `json:"location" gorm:"size:200"`
	TotalOrders int    `json:"totalOrders"`
	TotalSpent  string `json:"totalSpent" gorm:"size:32"`
	LastOrder   string `json:"lastOrder" gorm:"size:32"`
	Status      string `json:"status" gorm:"size:20;not null;default:active"`
}

func (Customer) TableName() string {
	return "dash_customers"
}

func (c Customer) Key() string { return c.ID }
