package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"gearstore-backend/models"
	"gearstore-backend/repository"
	"gearstore-backend/services"
)

// --- Mock repositories ---

type mockProductRepo struct {
	stock map[primitive.ObjectID]int
	err   error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{stock: map[primitive.ObjectID]int{}}
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]models.Product, error) { return nil, nil }

func (m *mockProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	stock, ok := m.stock[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &models.Product{ID: id, Stock: stock}, nil
}

func (m *mockProductRepo) Create(_ context.Context, _ *models.Product) error { return nil }

func (m *mockProductRepo) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) error {
	return nil
}

func (m *mockProductRepo) Delete(_ context.Context, _ primitive.ObjectID) error { return nil }

func (m *mockProductRepo) AdjustStock(_ context.Context, id primitive.ObjectID, delta int) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.stock[id]; !ok {
		return repository.ErrNotFound
	}
	m.stock[id] += delta
	return nil
}

type mockOrderRepo struct {
	orders map[primitive.ObjectID]*models.Order
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: map[primitive.ObjectID]*models.Order{}}
}

func (m *mockOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	var all []models.Order
	for _, o := range m.orders {
		all = append(all, *o)
	}
	return all, nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) error {
	order.ID = primitive.NewObjectID()
	m.orders[order.ID] = order
	return nil
}

func (m *mockOrderRepo) Update(_ context.Context, id primitive.ObjectID, updates bson.M) error {
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	if status, ok := updates["status"].(string); ok {
		o.Status = status
	}
	if note, ok := updates["note"].(string); ok {
		o.Note = note
	}
	return nil
}

func (m *mockOrderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

// --- Helpers ---

func strPtr(s string) *string { return &s }

func seedOrder(orders *mockOrderRepo, status string, items ...models.OrderItem) *models.Order {
	order := &models.Order{
		ID:           primitive.NewObjectID(),
		CustomerID:   primitive.NewObjectID(),
		CustomerName: "Somsak P.",
		Items:        items,
		TotalAmount:  9999,
		Status:       status,
	}
	orders.orders[order.ID] = order
	return order
}

// --- Tests ---

func TestUpdateOrder_PendingToProcessing_DeductsStock(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	mouseID := primitive.NewObjectID()
	padID := primitive.NewObjectID()
	untouchedID := primitive.NewObjectID()
	products.stock[mouseID] = 10
	products.stock[padID] = 4
	products.stock[untouchedID] = 7

	order := seedOrder(orders, models.OrderStatusPending,
		models.OrderItem{ProductID: mouseID, ProductName: "Mouse", Price: 1000, Quantity: 2},
		models.OrderItem{ProductID: padID, ProductName: "Mousepad", Price: 500, Quantity: 1},
	)

	updated, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusProcessing)})
	require.Nil(t, svcErr)

	assert.Equal(t, models.OrderStatusProcessing, updated.Status)
	assert.Equal(t, 8, products.stock[mouseID])
	assert.Equal(t, 3, products.stock[padID])
	assert.Equal(t, 7, products.stock[untouchedID])
}

func TestUpdateOrder_PendingToCompleted_DeductsStock(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	productID := primitive.NewObjectID()
	products.stock[productID] = 5
	order := seedOrder(orders, models.OrderStatusPending,
		models.OrderItem{ProductID: productID, ProductName: "Keyboard", Price: 3490, Quantity: 2})

	_, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusCompleted)})
	require.Nil(t, svcErr)
	assert.Equal(t, 3, products.stock[productID])
}

func TestUpdateOrder_PendingToCancelled_NoStockEffect(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	productID := primitive.NewObjectID()
	products.stock[productID] = 5
	order := seedOrder(orders, models.OrderStatusPending,
		models.OrderItem{ProductID: productID, ProductName: "Headset", Price: 4290, Quantity: 3})

	updated, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusCancelled)})
	require.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusCancelled, updated.Status)
	assert.Equal(t, 5, products.stock[productID])
}

func TestUpdateOrder_ProcessingToCancelled_RestoresStock(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	productID := primitive.NewObjectID()
	products.stock[productID] = 8
	order := seedOrder(orders, models.OrderStatusProcessing,
		models.OrderItem{ProductID: productID, ProductName: "Monitor", Price: 8990, Quantity: 2})

	_, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusCancelled)})
	require.Nil(t, svcErr)
	assert.Equal(t, 10, products.stock[productID])
}

func TestUpdateOrder_CompletedToCancelled_RestoresStock(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	productID := primitive.NewObjectID()
	products.stock[productID] = 0
	order := seedOrder(orders, models.OrderStatusCompleted,
		models.OrderItem{ProductID: productID, ProductName: "Controller", Price: 6990, Quantity: 1})

	_, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusCancelled)})
	require.Nil(t, svcErr)
	assert.Equal(t, 1, products.stock[productID])
}

func TestUpdateOrder_ProcessingToCompleted_NoStockEffect(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	productID := primitive.NewObjectID()
	products.stock[productID] = 5
	order := seedOrder(orders, models.OrderStatusProcessing,
		models.OrderItem{ProductID: productID, ProductName: "Mouse", Price: 1000, Quantity: 2})

	_, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusCompleted)})
	require.Nil(t, svcErr)
	assert.Equal(t, 5, products.stock[productID])
}

func TestUpdateOrder_SameStatus_NoStockEffect(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	productID := primitive.NewObjectID()
	products.stock[productID] = 5
	order := seedOrder(orders, models.OrderStatusPending,
		models.OrderItem{ProductID: productID, ProductName: "Mouse", Price: 1000, Quantity: 2})

	_, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusPending)})
	require.Nil(t, svcErr)
	assert.Equal(t, 5, products.stock[productID])
}

func TestUpdateOrder_NoteOnly_NoStockEffect(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	productID := primitive.NewObjectID()
	products.stock[productID] = 5
	order := seedOrder(orders, models.OrderStatusPending,
		models.OrderItem{ProductID: productID, ProductName: "Mouse", Price: 1000, Quantity: 2})

	updated, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Note: strPtr("rush delivery")})
	require.Nil(t, svcErr)
	assert.Equal(t, "rush delivery", updated.Note)
	assert.Equal(t, models.OrderStatusPending, updated.Status)
	assert.Equal(t, 5, products.stock[productID])
}

func TestUpdateOrder_MissingProduct_SkippedNotFatal(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	knownID := primitive.NewObjectID()
	ghostID := primitive.NewObjectID() // deleted from the catalog after ordering
	products.stock[knownID] = 6
	order := seedOrder(orders, models.OrderStatusPending,
		models.OrderItem{ProductID: ghostID, ProductName: "Discontinued", Price: 100, Quantity: 1},
		models.OrderItem{ProductID: knownID, ProductName: "Mouse", Price: 1000, Quantity: 2},
	)

	updated, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusProcessing)})
	require.Nil(t, svcErr)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)
	assert.Equal(t, 4, products.stock[knownID])
}

func TestUpdateOrder_StockWriteFailure_Is500(t *testing.T) {
	products := newMockProductRepo()
	products.err = errors.New("connection reset")
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	order := seedOrder(orders, models.OrderStatusPending,
		models.OrderItem{ProductID: primitive.NewObjectID(), ProductName: "Mouse", Price: 1000, Quantity: 1})

	_, svcErr := svc.UpdateOrder(context.Background(), order.ID.Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusProcessing)})
	require.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
	// Status must not change when the adjustment failed.
	stored, _ := orders.FindByID(context.Background(), order.ID)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestUpdateOrder_UnknownOrder_Is404(t *testing.T) {
	svc := services.NewOrderService(newMockOrderRepo(), newMockProductRepo(), zap.NewNop())

	_, svcErr := svc.UpdateOrder(context.Background(), primitive.NewObjectID().Hex(),
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusProcessing)})
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestUpdateOrder_MalformedID_Is400(t *testing.T) {
	svc := services.NewOrderService(newMockOrderRepo(), newMockProductRepo(), zap.NewNop())

	_, svcErr := svc.UpdateOrder(context.Background(), "not-an-object-id",
		&models.UpdateOrderRequest{Status: strPtr(models.OrderStatusProcessing)})
	require.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCreateOrder_DefaultsToPendingAndStoresSnapshot(t *testing.T) {
	products := newMockProductRepo()
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, products, zap.NewNop())

	productID := primitive.NewObjectID()
	products.stock[productID] = 5

	order, svcErr := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID:   primitive.NewObjectID().Hex(),
		CustomerName: "Somsak P.",
		Items: []models.OrderItemRequest{
			{ProductID: productID.Hex(), ProductName: "Mouse", Price: 1000, Quantity: 2},
		},
		TotalAmount: 2000,
		Note:        "pickup",
	})
	require.Nil(t, svcErr)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 2000.0, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Mouse", order.Items[0].ProductName)
	// Creation never touches stock; deduction happens on the status change.
	assert.Equal(t, 5, products.stock[productID])
}

func TestCreateOrder_BadProductID_Is400(t *testing.T) {
	svc := services.NewOrderService(newMockOrderRepo(), newMockProductRepo(), zap.NewNop())

	_, svcErr := svc.CreateOrder(context.Background(), &models.CreateOrderRequest{
		CustomerID:   primitive.NewObjectID().Hex(),
		CustomerName: "Somsak P.",
		Items: []models.OrderItemRequest{
			{ProductID: "garbage", ProductName: "Mouse", Price: 1000, Quantity: 1},
		},
	})
	require.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestDeleteOrder(t *testing.T) {
	orders := newMockOrderRepo()
	svc := services.NewOrderService(orders, newMockProductRepo(), zap.NewNop())
	order := seedOrder(orders, models.OrderStatusPending)

	require.Nil(t, svc.DeleteOrder(context.Background(), order.ID.Hex()))

	svcErr := svc.DeleteOrder(context.Background(), order.ID.Hex())
	require.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
