package models

// Transaction is one recorded sale in the journal. Transactions live in a
// Redis-backed key-value store (the journal log), not in MongoDB, and are
// immutable once recorded.
type Transaction struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"totalPrice"`
	Date        string  `json:"date"` // YYYY-MM-DD
	CreatedAt   string  `json:"createdAt"`
}

// CustomProduct is a user-added journal product. It has no counterpart in
// the catalog collection.
type CustomProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Unit     string  `json:"unit"`
	IsCustom bool    `json:"isCustom"`
}

// CreateTransactionRequest is the POST /sales/transactions body.
type CreateTransactionRequest struct {
	ProductID   string   `json:"productId" binding:"required"`
	ProductName string   `json:"productName" binding:"required"`
	Category    string   `json:"category"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Quantity    int      `json:"quantity" binding:"required,min=1"`
	Date        string   `json:"date" binding:"required,datetime=2006-01-02"`
}

// CreateCustomProductRequest is the POST /sales/products body.
type CreateCustomProductRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category"`
	Price    *float64 `json:"price" binding:"required,gte=0"`
	Unit     string   `json:"unit"`
}

// PeriodSales is one time bucket in the revenue series.
type PeriodSales struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

// CategorySales is the revenue total for one category.
type CategorySales struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ProductSales is an aggregated per-product row, ranked by revenue.
type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"qty"`
	Revenue  float64 `json:"revenue"`
}

// SalesSummary is the full dashboard payload.
type SalesSummary struct {
	TotalRevenue    float64         `json:"totalRevenue"`
	TotalOrders     int             `json:"totalOrders"`
	AvgOrder        int             `json:"avgOrder"`
	SalesByPeriod   []PeriodSales   `json:"salesByPeriod"`
	SalesByCategory []CategorySales `json:"salesByCategory"`
	TopProducts     []ProductSales  `json:"topProducts"`
	SalesByProduct  []ProductSales  `json:"salesByProduct"`
}
