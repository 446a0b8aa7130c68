// Package metrics holds the small derived-value helpers the views compute at
// query time: stock ratios and thresholds, status badge tones and overdue days.
package metrics

import (
	"math"
	"time"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
)

// OverstockRatio current >= OverstockRatio*max 视为积压
const OverstockRatio = 0.8

// StockPercentage min(current/max, 1) × 100，max <= 0 时为 0
func StockPercentage(current, max int) float64 {
	if max <= 0 {
		return 0
	}
	return math.Min(float64(current)/float64(max), 1) * 100
}

// StockStatus 库存阈值分类，判断顺序不可调整
func StockStatus(current, min, max int) string {
	switch {
	case current == 0:
		return entity.StockOut
	case current <= min:
		return entity.StockLow
	case float64(current) >= OverstockRatio*float64(max):
		return entity.StockOverstocked
	default:
		return entity.StockIn
	}
}

// ProductStockStatus 商品当前库存状态
func ProductStockStatus(p entity.Product) string {
	return StockStatus(p.CurrentStock, p.MinStock, p.MaxStock)
}

// Tone 状态徽标色调
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneInfo    Tone = "info"
	ToneNeutral Tone = "neutral"
)

var tones = map[string]Tone{
	entity.OrderStatusDelivered:    ToneSuccess,
	entity.InvoiceStatusPaid:       ToneSuccess,
	entity.CustomerStatusActive:    ToneSuccess,
	entity.RouteStatusCompleted:    ToneSuccess,
	entity.StockIn:                 ToneSuccess,
	entity.OrderStatusPending:      ToneWarning,
	entity.StockLow:                ToneWarning,
	entity.SalesRepStatusOnLeave:   ToneWarning,
	entity.OrderStatusCancelled:    ToneDanger,
	entity.InvoiceStatusOverdue:    ToneDanger,
	entity.DeliveryStatusFailed:    ToneDanger,
	entity.StockOut:                ToneDanger,
	entity.OrderStatusProcessing:   ToneInfo,
	entity.OrderStatusShipped:      ToneInfo,
	entity.InvoiceStatusSent:       ToneInfo,
	entity.DeliveryStatusInTransit: ToneInfo,
	entity.StockOverstocked:        ToneInfo,
	entity.PriorityHigh:            ToneDanger,
	entity.PriorityMedium:          ToneWarning,
	entity.PriorityLow:             ToneNeutral,
}

// ToneOf 未登记的状态（draft、inactive、scheduled、planned…）为 neutral
func ToneOf(status string) Tone {
	if t, ok := tones[status]; ok {
		return t
	}
	return ToneNeutral
}

// DaysOverdue 距到期日已过的整天数；未到期或日期无法解析时为 0
func DaysOverdue(dueDate string, now time.Time) int {
	due := query.ParseDate(dueDate)
	if due.IsZero() {
		return 0
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	if !today.After(due) {
		return 0
	}
	return int(today.Sub(due).Hours() / 24)
}

// Ratio part/whole 的百分比，whole 为 0 时为 0
func Ratio(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
