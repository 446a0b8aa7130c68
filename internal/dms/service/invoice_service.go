package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/metrics"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/notify"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/store"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

// DefaultPaymentTerms 未指定到期日时的账期
const DefaultPaymentTerms = 30 * 24 * time.Hour

// InvoiceService 发票
type InvoiceService struct {
	*View[entity.Invoice]
	orders *store.Collection[entity.Order]
}

func NewInvoiceService(coll *store.Collection[entity.Invoice], orders *store.Collection[entity.Order], deps Deps) *InvoiceService {
	deps = deps.withDefaults()
	v := newView(ViewInvoices, "invoice", newInvoiceSchema(deps.Clock), coll, deps)
	v.status = &statusSpec[entity.Invoice]{
		get:         func(i entity.Invoice) string { return i.Status },
		set:         func(i *entity.Invoice, s string) { i.Status = s },
		transitions: entity.InvoiceTransitions,
	}
	return &InvoiceService{View: v, orders: orders}
}

// InvoiceLine 发票明细请求
type InvoiceLine struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" binding:"required,gt=0"`
}

// CreateInvoiceRequest 创建发票请求
type CreateInvoiceRequest struct {
	OrderID  string        `json:"orderId"`
	Customer string        `json:"customer"`
	DueDate  string        `json:"dueDate"`
	Items    []InvoiceLine `json:"items" binding:"required,min=1,dive"`
}

// Create 金额为明细 数量×单价 之和；关联订单时客户默认取订单客户
func (s *InvoiceService) Create(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, errorx.Invalid("items", "at least one line item is required")
	}

	customer := strings.TrimSpace(req.Customer)
	if req.OrderID != "" {
		if s.orders == nil {
			return nil, errorx.Invalid("orderId", "orders are not available")
		}
		order, err := s.orders.Get(req.OrderID)
		if err != nil {
			return nil, errorx.Invalid("orderId", "order %s does not exist", req.OrderID)
		}
		if customer == "" {
			customer = order.Customer
		}
	}
	if customer == "" {
		return nil, errorx.Invalid("customer", "customer is required")
	}

	now := s.now()
	issue := now.Format("2006-01-02")
	due := now.Add(DefaultPaymentTerms).Format("2006-01-02")
	if req.DueDate != "" {
		d := query.ParseDate(req.DueDate)
		if d.IsZero() {
			return nil, errorx.Invalid("dueDate", "unrecognised date %q", req.DueDate)
		}
		if d.Format("2006-01-02") < issue {
			return nil, errorx.Invalid("dueDate", "due date is before the issue date")
		}
		due = d.Format("2006-01-02")
	}

	var total float64
	lines := make([]entity.InvoiceItem, 0, len(req.Items))
	for i, line := range req.Items {
		desc := strings.TrimSpace(line.Description)
		switch {
		case desc == "":
			return nil, errorx.Invalid(fmt.Sprintf("items[%d].description", i), "description is required")
		case line.Quantity <= 0:
			return nil, errorx.Invalid(fmt.Sprintf("items[%d].quantity", i), "quantity must be positive")
		case line.UnitPrice <= 0:
			return nil, errorx.Invalid(fmt.Sprintf("items[%d].unitPrice", i), "unit price must be positive")
		}
		lineTotal := float64(line.Quantity) * line.UnitPrice
		total += lineTotal
		lines = append(lines, entity.InvoiceItem{
			Description: desc,
			Quantity:    line.Quantity,
			UnitPrice:   query.FormatKSh(line.UnitPrice),
			Total:       query.FormatKSh(lineTotal),
		})
	}

	prefix := fmt.Sprintf("INV-%d-", now.Year())
	invoice, err := s.coll.InsertNext(prefix, 3, func(id string, _ []entity.Invoice) (entity.Invoice, error) {
		for i := range lines {
			lines[i].InvoiceID = id
		}
		return entity.Invoice{
			ID:        id,
			OrderID:   req.OrderID,
			Customer:  customer,
			IssueDate: issue,
			DueDate:   due,
			Amount:    query.FormatKSh(total),
			Status:    entity.InvoiceStatusDraft,
			Items:     lines,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	s.logger.Info("invoice created", zap.String("id", invoice.ID), zap.String("amount", invoice.Amount), zap.Int("lines", len(lines)))
	s.notifier.Post(notify.TypeSuccess, fmt.Sprintf("Invoice %s created for %s", invoice.ID, invoice.Customer))
	return &invoice, nil
}

// MarkOverdue 把已过到期日的 sent 发票改为 overdue，返回被修改的标识
func (s *InvoiceService) MarkOverdue(ctx context.Context, now time.Time) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	marked := []string{}
	for _, inv := range s.coll.Snapshot() {
		if inv.Status != entity.InvoiceStatusSent || invoiceDaysOverdue(inv, now) == 0 {
			continue
		}
		_, changed, err := s.setStatus(ctx, inv.ID, entity.InvoiceStatusOverdue)
		if err != nil {
			return marked, err
		}
		if changed {
			marked = append(marked, inv.ID)
		}
	}

	if len(marked) > 0 {
		s.logger.Info("invoices marked overdue", zap.Strings("ids", marked))
		s.notifier.Post(notify.TypeWarning, fmt.Sprintf("%d invoices are now overdue", len(marked)))
	}
	return marked, nil
}

// Aging 发票账龄
type Aging struct {
	ID          string       `json:"id"`
	Status      string       `json:"status"`
	DueDate     string       `json:"dueDate"`
	DaysOverdue int          `json:"daysOverdue"`
	Tone        metrics.Tone `json:"tone"`
}

// Aging 按当前时钟计算单张发票的逾期天数
func (s *InvoiceService) Aging(ctx context.Context, id string) (*Aging, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Aging{
		ID:          inv.ID,
		Status:      inv.Status,
		DueDate:     inv.DueDate,
		DaysOverdue: s.DaysOverdue(inv),
		Tone:        metrics.ToneOf(inv.Status),
	}, nil
}

// DaysOverdue 单张发票的逾期天数
func (s *InvoiceService) DaysOverdue(inv entity.Invoice) int {
	return invoiceDaysOverdue(inv, s.now())
}
