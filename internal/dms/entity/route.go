package entity

// RouteStatus 线路状态
const (
	RouteStatusPlanned   = "planned"
	RouteStatusActive    = "active"
	RouteStatusCompleted = "completed"
)

var RouteStatuses = []string{RouteStatusPlanned, RouteStatusActive, RouteStatusCompleted}

var RouteTransitions = NewTransitions("route", map[string][]string{
	RouteStatusPlanned: {RouteStatusActive},
	RouteStatusActive:  {RouteStatusCompleted},
})

// Route 配送线路
type Route struct {
	ID            string `json:"id" gorm:"primaryKey;size:32"`
	Name          string `json:"name" gorm:"size:200;not null"`
	Driver        string `json:"driver" gorm:"size:100"`
	Vehicle       string `json:"vehicle" gorm:"size:32"`
	Stops         int    `json:"stops"`
	Distance      string `json:"distance" gorm:"size:32"`
	EstimatedTime string `json:"estimatedTime" gorm:"size:32"`
	FuelCost      string `json:"fuelCost" gorm:"size:32"`
	Date          string `json:"date" gorm:"size:32"`
	Status        string `json:"status" gorm:"size:20;not null;default:planned"`
}

func (Route) TableName() string {
	return "dash_routes"
}

func (r Route) Key() string { return r.ID }
