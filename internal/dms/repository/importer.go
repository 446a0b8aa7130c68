// Package repository imports the initial collections from a SQL database.
// It only reads; the running service never writes back.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/seed"
)

// Importer 只读导入器
type Importer struct {
	db *gorm.DB
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// LoadAll 按主键顺序读取所有集合；发票预加载明细
func (r *Importer) LoadAll(ctx context.Context) (*seed.Dataset, error) {
	ds := &seed.Dataset{}
	db := r.db.WithContext(ctx)

	if err := db.Order("id").Find(&ds.Customers).Error; err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	if err := db.Order("id").Find(&ds.Orders).Error; err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id")
	}).Order("id").Find(&ds.Invoices).Error
	if err != nil {
		return nil, fmt.Errorf("load invoices: %w", err)
	}
	if err := db.Order("id").Find(&ds.Products).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	if err := db.Order("id").Find(&ds.Deliveries).Error; err != nil {
		return nil, fmt.Errorf("load deliveries: %w", err)
	}
	if err := db.Order("id").Find(&ds.Routes).Error; err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}
	if err := db.Order("id").Find(&ds.SalesReps).Error; err != nil {
		return nil, fmt.Errorf("load sales reps: %w", err)
	}
	return ds, nil
}

// Counts 各表行数，用于启动日志
func (r *Importer) Counts(ctx context.Context) (map[string]int64, error) {
	models := map[string]interface{}{
		"customers":  &entity.Customer{},
		"orders":     &entity.Order{},
		"invoices":   &entity.Invoice{},
		"inventory":  &entity.Product{},
		"deliveries": &entity.Delivery{},
		"routes":     &entity.Route{},
		"sales-reps": &entity.SalesRep{},
	}
	counts := make(map[string]int64, len(models))
	for name, model := range models {
		var n int64
		if err := r.db.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
