package entity

// StockStatus 库存状态（派生字段，不存储）
const (
	StockOut         = "out-of-stock"
	StockLow         = "low-stock"
	StockOverstocked = "overstocked"
	StockIn          = "in-stock"
)

var StockStatuses = []string{StockIn, StockLow, StockOut, StockOverstocked}

// Product 库存商品
type Product struct {
	ID            string `json:"id" gorm:"primaryKey;size:32"`
	Name          string `json:"name" gorm:"size:200;not null"`
	SKU           string `json:"sku" gorm:"size:64;uniqueIndex"`
	Category      string `json:"category" gorm:"size:64"`
	Supplier      string `json:"supplier" gorm:"size:200"`
	Location      string `json:"location" gorm:"size:100"`
	CurrentStock  int    `json:"currentStock"`
	MinStock      int    `json:"minStock"`
	MaxStock      int    `json:"maxStock"`
	UnitPrice     string `json:"unitPrice" gorm:"size:32"`
	TotalValue    string `json:"totalValue" gorm:"size:32"`
	LastRestocked string `json:"lastRestocked" gorm:"size:32"`
}

func (Product) TableName() string {
	return "dash_products"
}

func (p Product) Key() string { return p.ID }
