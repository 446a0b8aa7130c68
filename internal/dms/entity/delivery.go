package entity

// DeliveryStatus 配送状态
const (
	DeliveryStatusScheduled = "scheduled"
	DeliveryStatusInTransit = "in-transit"
	DeliveryStatusDelivered = "delivered"
	DeliveryStatusFailed    = "failed"
)

var DeliveryStatuses = []string{DeliveryStatusScheduled, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusFailed}

// DeliveryTransitions 失败的配送可以重新排期
var DeliveryTransitions = NewTransitions("delivery", map[string][]string{
	DeliveryStatusScheduled: {DeliveryStatusInTransit, DeliveryStatusFailed},
	DeliveryStatusInTransit: {DeliveryStatusDelivered, DeliveryStatusFailed},
	DeliveryStatusFailed:    {DeliveryStatusScheduled},
})

// Delivery 配送单
type Delivery struct {
	ID            string `json:"id" gorm:"primaryKey;size:32"`
	OrderID       string `json:"orderId" gorm:"size:32;index"`
	Customer      string `json:"customer" gorm:"size:200"`
	Address       string `json:"address" gorm:"size:300"`
	Driver        string `json:"driver" gorm:"size:100"`
	Vehicle       string `json:"vehicle" gorm:"size:32"`
	ScheduledDate string `json:"scheduledDate" gorm:"size:32"`
	Status        string `json:"status" gorm:"size:20;not null;default:scheduled"`
	Priority      string `json:"priority" gorm:"size:20;not null;default:medium"`
}

func (Delivery) TableName() string {
	return "dash_deliveries"
}

func (d Delivery) Key() string { return d.ID }
