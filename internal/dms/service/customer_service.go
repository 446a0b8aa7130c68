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

// CustomerService 客户
type CustomerService struct {
	*View[entity.Customer]
}

func NewCustomerService(coll *store.Collection[entity.Customer], deps Deps) *CustomerService {
	v := newView(ViewCustomers, "customer", CustomerSchema, coll, deps.withDefaults())
	v.status = &statusSpec[entity.Customer]{
		get:         func(c entity.Customer) string { return c.Status },
		set:         func(c *entity.Customer, s string) { c.Status = s },
		transitions: entity.CustomerTransitions,
	}
	return &CustomerService{View: v}
}

// CreateCustomerRequest 创建客户请求
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=Retail Wholesale Supermarket"`
	Contact  string `json:"contact" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
	Location string `json:"location" binding:"required"`
}

// Create 新客户为 active，无历史订单
func (s *CustomerService) Create(ctx context.Context, req *CreateCustomerRequest) (*entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	contact := strings.TrimSpace(req.Contact)
	location := strings.TrimSpace(req.Location)
	switch {
	case name == "":
		return nil, errorx.Invalid("name", "name is required")
	case contact == "":
		return nil, errorx.Invalid("contact", "contact is required")
	case location == "":
		return nil, errorx.Invalid("location", "location is required")
	case !contains(entity.CustomerTypes, req.Type):
		return nil, errorx.Invalid("type", "unsupported customer type %q", req.Type)
	}

	customer, err := s.coll.InsertNext("CUS-", 3, func(id string, _ []entity.Customer) (entity.Customer, error) {
		return entity.Customer{
			ID:         id,
			Name:       name,
			Type:       req.Type,
			Contact:    contact,
			Phone:      strings.TrimSpace(req.Phone),
			Email:      strings.TrimSpace(req.Email),
			Location:   location,
			TotalSpent: query.FormatKSh(0),
			Status:     entity.CustomerStatusActive,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.logger.Info("customer created", zap.String("id", customer.ID), zap.String("name", customer.Name))
	s.notifier.Post(notify.TypeSuccess, fmt.Sprintf("Customer %s added", customer.Name))
	return &customer, nil
}
