package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/notify"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/store"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

// OrderService 订单
type OrderService struct {
	*View[entity.Order]
	selection *store.Selection
}

func NewOrderService(coll *store.Collection[entity.Order], deps Deps) *OrderService {
	v := newView(ViewOrders, "order", OrderSchema, coll, deps.withDefaults())
	v.status = &statusSpec[entity.Order]{
		get:         func(o entity.Order) string { return o.Status },
		set:         func(o *entity.Order, s string) { o.Status = s },
		transitions: entity.OrderTransitions,
	}
	return &OrderService{View: v, selection: store.NewSelection()}
}

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	Customer string  `json:"customer" binding:"required"`
	Location string  `json:"location"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Items    int     `json:"items" binding:"required,gt=0"`
	Priority string  `json:"priority" binding:"omitempty,oneof=high medium low"`
	SalesRep string  `json:"salesRep"`
}

// Create 新订单为 pending / 未付款，编号按年份续接
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	customer := strings.TrimSpace(req.Customer)
	switch {
	case customer == "":
		return nil, errorx.Invalid("customer", "customer is required")
	case req.Amount <= 0:
		return nil, errorx.Invalid("amount", "amount must be positive")
	case req.Items <= 0:
		return nil, errorx.Invalid("items", "items must be positive")
	}
	priority := req.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !contains(entity.Priorities, priority) {
		return nil, errorx.Invalid("priority", "unsupported priority %q", priority)
	}

	prefix := fmt.Sprintf("ORD-%d-", s.now().Year())
	order, err := s.coll.InsertNext(prefix, 3, func(id string, _ []entity.Order) (entity.Order, error) {
		return entity.Order{
			ID:            id,
			Customer:      customer,
			Location:      strings.TrimSpace(req.Location),
			Date:          s.today(),
			Amount:        query.FormatKSh(req.Amount),
			Items:         req.Items,
			Status:        entity.OrderStatusPending,
			PaymentStatus: entity.PaymentStatusPending,
			Priority:      priority,
			SalesRep:      strings.TrimSpace(req.SalesRep),
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.logger.Info("order created", zap.String("id", order.ID), zap.String("customer", order.Customer), zap.String("amount", order.Amount))
	s.notifier.Post(notify.TypeSuccess, fmt.Sprintf("Order %s created for %s", order.ID, order.Customer))
	return &order, nil
}

// BulkStatusRequest 批量修改订单状态
type BulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1"`
	Status string   `json:"status" binding:"required"`
}

// BulkResult 批量操作结果；Missing 为已不在集合中的标识
type BulkResult struct {
	Updated   []string          `json:"updated"`
	Unchanged []string          `json:"unchanged"`
	Missing   []string          `json:"missing"`
	Failed    map[string]string `json:"failed"`
}

// BulkUpdateStatus 逐条按迁移表修改，单条失败不影响其余；重复标识只处理一次
func (s *OrderService) BulkUpdateStatus(ctx context.Context, ids []string, status string) (*BulkResult, error) {
	if len(ids) == 0 {
		return nil, errorx.Invalid("ids", "no orders selected")
	}
	return s.BulkUpdateSelection(ctx, store.NewSelection(ids...), status)
}

// BulkUpdateSelection 对选择集执行批量修改，选择集本身不做修改
func (s *OrderService) BulkUpdateSelection(ctx context.Context, sel *store.Selection, status string) (*BulkResult, error) {
	if sel.Len() == 0 {
		return nil, errorx.Invalid("ids", "no orders selected")
	}
	if !contains(entity.OrderStatuses, status) {
		return nil, errorx.Invalid("status", "unsupported order status %q", status)
	}

	present, missing := store.Partition(sel, s.coll)
	res := &BulkResult{
		Updated:   []string{},
		Unchanged: []string{},
		Missing:   append([]string{}, missing...),
		Failed:    map[string]string{},
	}
	for _, id := range present {
		_, changed, err := s.setStatus(ctx, id, status)
		switch {
		case errorx.IsNotFound(err):
			res.Missing = append(res.Missing, id)
		case err != nil && ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			res.Failed[id] = errorMessage(err)
		case changed:
			res.Updated = append(res.Updated, id)
		default:
			res.Unchanged = append(res.Unchanged, id)
		}
	}

	s.logger.Info("bulk status update",
		zap.String("status", status),
		zap.Int("updated", len(res.Updated)),
		zap.Int("missing", len(res.Missing)),
		zap.Int("failed", len(res.Failed)),
	)
	if len(res.Updated) > 0 {
		s.notifier.Post(notify.TypeSuccess, fmt.Sprintf("%d orders marked %s", len(res.Updated), status))
	}
	if n := len(res.Missing) + len(res.Failed); n > 0 {
		s.notifier.Post(notify.TypeWarning, fmt.Sprintf("%d selected orders could not be marked %s", n, status))
	}
	return res, nil
}

// Selection 仪表盘当前的订单勾选集
func (s *OrderService) Selection() *store.Selection {
	return s.selection
}
