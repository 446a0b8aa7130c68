package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/metrics"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/notify"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/store"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

// InventoryService 库存。库存状态由阈值派生，不能直接设置。
type InventoryService struct {
	*View[entity.Product]
}

func NewInventoryService(coll *store.Collection[entity.Product], deps Deps) *InventoryService {
	return &InventoryService{View: newView(ViewInventory, "product", ProductSchema, coll, deps.withDefaults())}
}

// CreateProductRequest 创建商品请求
type CreateProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	SKU          string  `json:"sku" binding:"required"`
	Category     string  `json:"category"`
	Supplier     string  `json:"supplier"`
	Location     string  `json:"location"`
	CurrentStock int     `json:"currentStock" binding:"gte=0"`
	MinStock     int     `json:"minStock" binding:"gte=0"`
	MaxStock     int     `json:"maxStock" binding:"required,gt=0"`
	UnitPrice    float64 `json:"unitPrice" binding:"required,gt=0"`
}

// Create SKU 唯一，min ≤ max
func (s *InventoryService) Create(ctx context.Context, req *CreateProductRequest) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	sku := strings.ToUpper(strings.TrimSpace(req.SKU))
	switch {
	case name == "":
		return nil, errorx.Invalid("name", "name is required")
	case sku == "":
		return nil, errorx.Invalid("sku", "sku is required")
	case req.CurrentStock < 0 || req.MinStock < 0:
		return nil, errorx.Invalid("currentStock", "stock levels cannot be negative")
	case req.MaxStock <= 0:
		return nil, errorx.Invalid("maxStock", "maximum stock must be positive")
	case req.MinStock > req.MaxStock:
		return nil, errorx.Invalid("minStock", "minimum stock %d exceeds maximum %d", req.MinStock, req.MaxStock)
	case req.UnitPrice <= 0:
		return nil, errorx.Invalid("unitPrice", "unit price must be positive")
	}

	restocked := ""
	if req.CurrentStock > 0 {
		restocked = s.today()
	}
	product, err := s.coll.InsertNext("PRD-", 3, func(id string, existing []entity.Product) (entity.Product, error) {
		for _, p := range existing {
			if strings.EqualFold(p.SKU, sku) {
				return entity.Product{}, errorx.Invalid("sku", "sku %s already used by %s", sku, p.ID)
			}
		}
		return entity.Product{
			ID:            id,
			Name:          name,
			SKU:           sku,
			Category:      strings.TrimSpace(req.Category),
			Supplier:      strings.TrimSpace(req.Supplier),
			Location:      strings.TrimSpace(req.Location),
			CurrentStock:  req.CurrentStock,
			MinStock:      req.MinStock,
			MaxStock:      req.MaxStock,
			UnitPrice:     query.FormatKSh(req.UnitPrice),
			TotalValue:    query.FormatKSh(float64(req.CurrentStock) * req.UnitPrice),
			LastRestocked: restocked,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.logger.Info("product created", zap.String("id", product.ID), zap.String("sku", product.SKU))
	s.notifier.Post(notify.TypeSuccess, fmt.Sprintf("Product %s added to inventory", product.Name))
	return &product, nil
}

// AdjustStock 调整库存并重算 totalValue；入库时更新 lastRestocked
func (s *InventoryService) AdjustStock(ctx context.Context, id string, delta int) (*entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	before := ""
	product, err := s.coll.Update(id, func(p *entity.Product) error {
		if delta == 0 {
			return store.ErrUnchanged
		}
		next := p.CurrentStock + delta
		if next < 0 {
			return errorx.Invalid("delta", "only %d units of %s in stock", p.CurrentStock, p.Name)
		}
		before = metrics.ProductStockStatus(*p)
		p.CurrentStock = next
		p.TotalValue = query.FormatKSh(float64(next) * query.ParseAmount(p.UnitPrice))
		if delta > 0 {
			p.LastRestocked = s.today()
		}
		return nil
	})
	if err != nil {
		err = fmt.Errorf("adjust stock: %w", err)
		s.notifier.Post(notify.TypeError, fmt.Sprintf("Could not adjust stock for %s: %s", id, errorMessage(err)))
		return nil, err
	}
	if delta == 0 {
		return &product, nil
	}

	after := metrics.ProductStockStatus(product)
	s.logger.Info("stock adjusted",
		zap.String("id", id),
		zap.Int("delta", delta),
		zap.Int("stock", product.CurrentStock),
		zap.String("stock_status", after),
	)
	s.notifier.Post(notify.TypeSuccess, fmt.Sprintf("%s stock is now %d", product.Name, product.CurrentStock))
	if after != before && (after == entity.StockLow || after == entity.StockOut) {
		s.notifier.Post(notify.TypeWarning, fmt.Sprintf("%s is %s", product.Name, strings.ReplaceAll(after, "-", " ")))
	}
	return &product, nil
}

// StockStatus 商品的派生库存状态与百分比
func (s *InventoryService) StockStatus(ctx context.Context, id string) (string, float64, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return "", 0, err
	}
	return metrics.ProductStockStatus(p), metrics.StockPercentage(p.CurrentStock, p.MaxStock), nil
}
