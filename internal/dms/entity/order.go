package entity

// OrderStatus 订单状态
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// PaymentStatus 付款状态
const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusOverdue = "overdue"
)

// Priority 优先级（订单、配送共用）
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

var (
	OrderStatuses   = []string{OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled}
	PaymentStatuses = []string{PaymentStatusPaid, PaymentStatusPending, PaymentStatusOverdue}
	Priorities      = []string{PriorityHigh, PriorityMedium, PriorityLow}
)

// OrderTransitions 订单状态流转：pending → processing → shipped → delivered，发货前可取消
var OrderTransitions = NewTransitions("order", map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
})

// Order 销售订单
type Order struct {
	ID            string `json:"id" gorm:"primaryKey;size:32"`
	Customer      string `json:"customer" gorm:"size:200;not null"`
	Location      string `json:"location" gorm:"size:200"`
	Date          string `json:"date" gorm:"size:32"`
	Amount        string `json:"amount" gorm:"size:32"`
	Items         int    `json:"items"`
	Status        string `json:"status" gorm:"size:20;not null;default:pending"`
	PaymentStatus string `json:"paymentStatus" gorm:"size:20;not null;default:pending"`
	Priority      string `json:"priority" gorm:"size:20;not null;default:medium"`
	SalesRep      string `json:"salesRep" gorm:"size:100"`
}

func (Order) TableName() string {
	return "dash_orders"
}

func (o Order) Key() string { return o.ID }
