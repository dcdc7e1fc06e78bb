package services

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"gearstore-backend/models"
	"gearstore-backend/repository"
)

// ServiceError is a typed error carrying the HTTP status code the controller
// should respond with.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// OrderService defines the interface for order business logic.
type OrderService interface {
	ListOrders(ctx context.Context) ([]models.Order, *ServiceError)
	GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError)
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	UpdateOrder(ctx context.Context, id string, req *models.UpdateOrderRequest) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id string) *ServiceError
}

type orderServiceImpl struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	logger   *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orders repository.OrderRepository, products repository.ProductRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{orders: orders, products: products, logger: logger}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	return orders, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order ID"}
	}
	order, err := s.orders.FindByID(ctx, oid)
	if err == repository.ErrNotFound {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
	}
	if err != nil {
		s.logger.Error("Failed to fetch order", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	return order, nil
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	customerID, err := primitive.ObjectIDFromHex(req.CustomerID)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid customer ID"}
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := primitive.ObjectIDFromHex(item.ProductID)
		if err != nil {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid product ID in items"}
		}
		items = append(items, models.OrderItem{
			ProductID:   productID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	// The total is stored as submitted; it is a snapshot, like the item
	// prices, and is never recomputed from items.
	order := &models.Order{
		CustomerID:   customerID,
		CustomerName: req.CustomerName,
		Items:        items,
		TotalAmount:  req.TotalAmount,
		Status:       models.OrderStatusPending,
		Note:         req.Note,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID.Hex()),
		zap.String("customer", order.CustomerName),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.TotalAmount),
	)
	return order, nil
}

// UpdateOrder applies a partial update. When the payload carries a status
// different from the stored one, the stock adjustment rule runs before the
// new status is persisted:
//
//   - pending -> processing/completed: deduct each item's quantity from its
//     product's stock (the order is leaving the shelf).
//   - processing/completed -> cancelled: restore each item's quantity.
//   - every other transition, including pending -> cancelled, leaves stock
//     untouched.
//
// Per-item stock writes commit independently; a failure partway through
// leaves earlier items adjusted. Acceptable at single-admin scale.
func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id string, req *models.UpdateOrderRequest) (*models.Order, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order ID"}
	}

	order, err := s.orders.FindByID(ctx, oid)
	if err == repository.ErrNotFound {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
	}
	if err != nil {
		s.logger.Error("Failed to fetch order", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	updates := bson.M{}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if req.Status != nil && *req.Status != order.Status {
		if svcErr := s.adjustStockForTransition(ctx, order, *req.Status); svcErr != nil {
			return nil, svcErr
		}
		updates["status"] = *req.Status
	}

	if len(updates) == 0 {
		return order, nil
	}

	if err := s.orders.Update(ctx, oid, updates); err != nil {
		s.logger.Error("Failed to update order", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}

	updated, err := s.orders.FindByID(ctx, oid)
	if err != nil {
		s.logger.Error("Failed to reload order after update", zap.String("id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	return updated, nil
}

func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id string) *ServiceError {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order ID"}
	}
	err = s.orders.Delete(ctx, oid)
	if err == repository.ErrNotFound {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
	}
	if err != nil {
		s.logger.Error("Failed to delete order", zap.String("id", id), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
	}
	return nil
}

// adjustStockForTransition applies the stock delta implied by a status
// change, one product at a time. A line item whose product no longer exists
// is logged and skipped; the remaining items are still applied.
func (s *orderServiceImpl) adjustStockForTransition(ctx context.Context, order *models.Order, newStatus string) *ServiceError {
	delta := stockDelta(order.Status, newStatus)
	if delta == 0 {
		return nil
	}

	for _, item := range order.Items {
		err := s.products.AdjustStock(ctx, item.ProductID, delta*item.Quantity)
		if err == repository.ErrNotFound {
			s.logger.Warn("Skipping stock adjustment for missing product",
				zap.String("order_id", order.ID.Hex()),
				zap.String("product_id", item.ProductID.Hex()),
				zap.Int("quantity", item.Quantity),
			)
			continue
		}
		if err != nil {
			s.logger.Error("Stock adjustment failed",
				zap.String("order_id", order.ID.Hex()),
				zap.String("product_id", item.ProductID.Hex()),
				zap.Error(err),
			)
			return &ServiceError{StatusCode: http.StatusInternalServerError, Message: err.Error()}
		}
	}

	s.logger.Info("Stock adjusted for status change",
		zap.String("order_id", order.ID.Hex()),
		zap.String("from", order.Status),
		zap.String("to", newStatus),
		zap.Int("direction", delta),
	)
	return nil
}

// stockDelta returns the per-unit stock direction for a status transition:
// -1 to deduct, +1 to restore, 0 for no effect. Callers must only invoke it
// when the statuses differ.
func stockDelta(current, next string) int {
	switch {
	case current == models.OrderStatusPending &&
		next != models.OrderStatusPending && next != models.OrderStatusCancelled:
		return -1
	case current != models.OrderStatusPending && current != models.OrderStatusCancelled &&
		next == models.OrderStatusCancelled:
		return 1
	default:
		return 0
	}
}
