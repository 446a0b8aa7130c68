package entity

// InvoiceStatus 发票状态
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

var InvoiceStatuses = []string{InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled}

var InvoiceTransitions = NewTransitions("invoice", map[string][]string{
	InvoiceStatusDraft:   {InvoiceStatusSent, InvoiceStatusCancelled},
	InvoiceStatusSent:    {InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled},
	InvoiceStatusOverdue: {InvoiceStatusPaid},
})

// Invoice 发票
type Invoice struct {
	ID        string        `json:"id" gorm:"primaryKey;size:32"`
	OrderID   string        `json:"orderId" gorm:"size:32;index"`
	Customer  string        `json:"customer" gorm:"size:200;not null"`
	IssueDate string        `json:"issueDate" gorm:"size:32"`
	DueDate   string        `json:"dueDate" gorm:"size:32"`
	Amount    string        `json:"amount" gorm:"size:32"`
	Status    string        `json:"status" gorm:"size:20;not null;default:draft"`
	Items     []InvoiceItem `json:"items" gorm:"foreignKey:InvoiceID"`
}

func (Invoice) TableName() string {
	return "dash_invoices"
}

func (i Invoice) Key() string { return i.ID }

// InvoiceItem 发票明细
type InvoiceItem struct {
	ID          uint   `json:"-" gorm:"primaryKey"`
	InvoiceID   string `json:"-" gorm:"size:32;index"`
	Description string `json:"description" gorm:"size:200"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unitPrice" gorm:"size:32"`
	Total       string `json:"total" gorm:"size:32"`
}

func (InvoiceItem) TableName() string {
	return "dash_invoice_items"
}
