package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Status changes drive stock adjustments in the order service.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a line item snapshot. Product name and price are copied from
// the product at order time so the order keeps its historical pricing even
// if the catalog changes later.
type OrderItem struct {
	ProductID   primitive.ObjectID `json:"productId" bson:"product_id"`
	ProductName string             `json:"productName" bson:"product_name"`
	Price       float64            `json:"price" bson:"price"`
	Quantity    int                `json:"quantity" bson:"quantity"`
}

// Order is stored in the "orders" collection.
type Order struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CustomerID   primitive.ObjectID `json:"customerId" bson:"customer_id"`
	CustomerName string             `json:"customerName" bson:"customer_name"`
	Items        []OrderItem        `json:"items" bson:"items"`
	TotalAmount  float64            `json:"totalAmount" bson:"total_amount"`
	Status       string             `json:"status" bson:"status"`
	Note         string             `json:"note" bson:"note"`
	CreatedAt    time.Time          `json:"createdAt,omitempty" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}

// OrderItemRequest is one line item in a create payload.
type OrderItemRequest struct {
	ProductID   string  `json:"productId" binding:"required"`
	ProductName string  `json:"productName" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest is the POST /orders body. The total is computed by the
// caller and stored as-is, never recomputed server-side.
type CreateOrderRequest struct {
	CustomerID   string             `json:"customerId" binding:"required"`
	CustomerName string             `json:"customerName" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount  float64            `json:"totalAmount" binding:"gte=0"`
	Note         string             `json:"note"`
}

// UpdateOrderRequest is the PUT /orders/:id body. Partial: a status change
// triggers the stock adjustment rule before the update is persisted.
type UpdateOrderRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending processing completed cancelled"`
	Note   *string `json:"note"`
}
