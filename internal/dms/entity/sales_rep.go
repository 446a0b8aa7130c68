package entity

// SalesRepStatus 销售代表状态
const (
	SalesRepStatusActive   = "active"
	SalesRepStatusInactive = "inactive"
	SalesRepStatusOnLeave  = "on-leave"
)

var SalesRepStatuses = []string{SalesRepStatusActive, SalesRepStatusInactive, SalesRepStatusOnLeave}

var SalesRepTransitions = NewTransitions("sales rep", map[string][]string{
	SalesRepStatusActive:   {SalesRepStatusInactive, SalesRepStatusOnLeave},
	SalesRepStatusInactive: {SalesRepStatusActive},
	SalesRepStatusOnLeave:  {SalesRepStatusActive, SalesRepStatusInactive},
})

// SalesRep 销售代表
type SalesRep struct {
	ID          string  `json:"id" gorm:"primaryKey;size:32"`
	Name        string  `json:"name" gorm:"size:100;not null"`
	Email       string  `json:"email" gorm:"size:100"`
	Phone       string  `json:"phone" gorm:"size:32"`
	Territory   string  `json:"territory" gorm:"size:100"`
	Sales       string  `json:"sales" gorm:"size:32"`
	Target      string  `json:"target" gorm:"size:32"`
	Performance int     `json:"performance"`
	Rating      float64 `json:"rating"`
	Customers   int     `json:"customers"`
	Status      string  `json:"status" gorm:"size:20;not null;default:active"`
}

func (SalesRep) TableName() string {
	return "dash_sales_reps"
}

func (r SalesRep) Key() string { return r.ID }
