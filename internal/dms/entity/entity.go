package entity

import "gorm.io/gorm"

// Record 每条实体记录都有一个在集合内唯一且不可变的标识
type Record interface {
	Key() string
}

// AutoMigrate 自动迁移导入源表（仅开发/测试环境建表时使用）
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Order{},
		&Invoice{},
		&InvoiceItem{},
		&Product{},
		&Delivery{},
		&Route{},
		&SalesRep{},
	)
}
