package services

import (
	"context"
	"math"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gearstore-backend/models"
	"gearstore-backend/repository"
)

// Aggregation periods for the revenue series.
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

const (
	topProductsLimit = 5
	maxPeriodBuckets = 12
)

// SalesService defines the interface for the sales journal and dashboard
// aggregation.
type SalesService interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, *ServiceError)
	AddTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, *ServiceError)
	DeleteTransaction(ctx context.Context, id string) *ServiceError
	ListCustomProducts(ctx context.Context) ([]models.CustomProduct, *ServiceError)
	AddCustomProduct(ctx context.Context, req *models.CreateCustomProductRequest) (*models.CustomProduct, *ServiceError)
	Summary(ctx context.Context, period string) (*models.SalesSummary, *ServiceError)
}

type salesServiceImpl struct {
	journal repository.JournalRepository
	logger  *zap.Logger
}

// NewSalesService creates a new SalesService.
func NewSalesService(journal repository.JournalRepository, logger *zap.Logger) SalesService {
	return &salesServiceImpl{journal: journal, logger: logger}
}

func (s *salesServiceImpl) ListTransactions(ctx context.Context) ([]models.Transaction, *ServiceError) {
	txs, err := s.journal.Transactions(ctx)
	if err != nil {
		s.logger.Error("Failed to load transactions", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	return txs, nil
}

// AddTransaction records a sale. New transactions are prepended so the
// journal reads newest first.
func (s *salesServiceImpl) AddTransaction(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, *ServiceError) {
	txs, err := s.journal.Transactions(ctx)
	if err != nil {
		s.logger.Error("Failed to load transactions", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	tx := models.Transaction{
		ID:          "TX" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12],
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Category:    req.Category,
		Price:       *req.Price,
		Quantity:    req.Quantity,
		TotalPrice:  *req.Price * float64(req.Quantity),
		Date:        req.Date,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	txs = append([]models.Transaction{tx}, txs...)
	if err := s.journal.SaveTransactions(ctx, txs); err != nil {
		s.logger.Error("Failed to save transactions", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	s.logger.Info("Transaction recorded",
		zap.String("tx_id", tx.ID),
		zap.String("product", tx.ProductName),
		zap.Float64("total", tx.TotalPrice),
	)
	return &tx, nil
}

// DeleteTransaction removes exactly the record with the given id; all other
// records keep their order.
func (s *salesServiceImpl) DeleteTransaction(ctx context.Context, id string) *ServiceError {
	txs, err := s.journal.Transactions(ctx)
	if err != nil {
		s.logger.Error("Failed to load transactions", zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	remaining := make([]models.Transaction, 0, len(txs))
	found := false
	for _, tx := range txs {
		if tx.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, tx)
	}
	if !found {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Transaction not found"}
	}

	if err := s.journal.SaveTransactions(ctx, remaining); err != nil {
		s.logger.Error("Failed to save transactions", zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	return nil
}

func (s *salesServiceImpl) ListCustomProducts(ctx context.Context) ([]models.CustomProduct, *ServiceError) {
	products, err := s.journal.CustomProducts(ctx)
	if err != nil {
		s.logger.Error("Failed to load custom products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	return products, nil
}

func (s *salesServiceImpl) AddCustomProduct(ctx context.Context, req *models.CreateCustomProductRequest) (*models.CustomProduct, *ServiceError) {
	products, err := s.journal.CustomProducts(ctx)
	if err != nil {
		s.logger.Error("Failed to load custom products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	product := models.CustomProduct{
		ID:       "CUSTOM_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:12],
		Name:     req.Name,
		Category: req.Category,
		Price:    *req.Price,
		Unit:     req.Unit,
		IsCustom: true,
	}
	if product.Category == "" {
		product.Category = "Other"
	}
	if product.Unit == "" {
		product.Unit = "unit"
	}

	products = append(products, product)
	if err := s.journal.SaveCustomProducts(ctx, products); err != nil {
		s.logger.Error("Failed to save custom products", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	return &product, nil
}

// Summary recomputes the full dashboard payload from the journal. Nothing is
// cached; every call re-aggregates from scratch.
func (s *salesServiceImpl) Summary(ctx context.Context, period string) (*models.SalesSummary, *ServiceError) {
	switch period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
	case "":
		period = PeriodMonthly
	default:
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "period must be daily, weekly or monthly"}
	}

	txs, err := s.journal.Transactions(ctx)
	if err != nil {
		s.logger.Error("Failed to load transactions", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	top := TopProducts(txs, topProductsLimit)
	totalRevenue, count, avg := SalesTotals(txs)

	return &models.SalesSummary{
		TotalRevenue:    totalRevenue,
		TotalOrders:     count,
		AvgOrder:        avg,
		SalesByPeriod:   SalesByPeriod(txs, period),
		SalesByCategory: SalesByCategory(txs),
		TopProducts:     top,
		SalesByProduct:  top,
	}, nil
}

// SalesTotals returns total revenue, transaction count and the rounded
// average order value (0 when the journal is empty).
func SalesTotals(txs []models.Transaction) (float64, int, int) {
	total := 0.0
	for _, tx := range txs {
		total += tx.TotalPrice
	}
	avg := 0
	if len(txs) > 0 {
		avg = int(math.Round(total / float64(len(txs))))
	}
	return total, len(txs), avg
}

// SalesByPeriod buckets revenue by day, calendar week or month and returns
// at most the 12 most recent buckets in chronological order.
func SalesByPeriod(txs []models.Transaction, period string) []models.PeriodSales {
	type bucket struct {
		start time.Time
		sales float64
	}
	buckets := map[time.Time]*bucket{}

	for _, tx := range txs {
		day, err := time.Parse("2006-01-02", tx.Date)
		if err != nil {
			// Undated records cannot be placed on the time axis.
			continue
		}
		start := bucketStart(day, period)
		if b, ok := buckets[start]; ok {
			b.sales += tx.TotalPrice
		} else {
			buckets[start] = &bucket{start: start, sales: tx.TotalPrice}
		}
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].start.Before(ordered[j].start) })

	if len(ordered) > maxPeriodBuckets {
		ordered = ordered[len(ordered)-maxPeriodBuckets:]
	}

	series := make([]models.PeriodSales, 0, len(ordered))
	for _, b := range ordered {
		series = append(series, models.PeriodSales{Name: bucketLabel(b.start, period), Sales: b.sales})
	}
	return series
}

// bucketStart normalizes a date to its bucket key. Weeks start on Sunday.
func bucketStart(day time.Time, period string) time.Time {
	switch period {
	case PeriodWeekly:
		return day.AddDate(0, 0, -int(day.Weekday()))
	case PeriodMonthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

func bucketLabel(start time.Time, period string) string {
	if period == PeriodMonthly {
		return start.Format("Jan 06")
	}
	return start.Format("02 Jan")
}

// SalesByCategory groups revenue by category. Records without a category
// fall into "Other". The result order follows first encounter; callers that
// need a fixed order must sort it themselves.
func SalesByCategory(txs []models.Transaction) []models.CategorySales {
	totals := map[string]float64{}
	order := []string{}

	for _, tx := range txs {
		cat := tx.Category
		if cat == "" {
			cat = "Other"
		}
		if _, ok := totals[cat]; !ok {
			order = append(order, cat)
		}
		totals[cat] += tx.TotalPrice
	}

	result := make([]models.CategorySales, 0, len(order))
	for _, cat := range order {
		result = append(result, models.CategorySales{Name: cat, Value: totals[cat]})
	}
	return result
}

// TopProducts groups by product name, summing quantity and revenue, and
// returns the top n by revenue. The sort is stable so ties keep their first
// encounter order.
func TopProducts(txs []models.Transaction, n int) []models.ProductSales {
	index := map[string]int{}
	ranked := []models.ProductSales{}

	for _, tx := range txs {
		i, ok := index[tx.ProductName]
		if !ok {
			i = len(ranked)
			index[tx.ProductName] = i
			ranked = append(ranked, models.ProductSales{Name: tx.ProductName})
		}
		ranked[i].Quantity += tx.Quantity
		ranked[i].Revenue += tx.TotalPrice
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Revenue > ranked[j].Revenue })

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
