package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductCategories is the fixed catalog taxonomy. Custom journal products
// may use free-form categories; server-persisted products may not.
var ProductCategories = []string{"Mouse", "Keyboard", "Headset", "Controller", "Monitor", "Accessories"}

// Product is a catalog item stored in the "products" collection.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Brand       string             `json:"brand" bson:"brand"`
	Category    string             `json:"category" bson:"category"`
	Price       float64            `json:"price" bson:"price"`
	Stock       int                `json:"stock" bson:"stock"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" bson:"created_at,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}

// CreateProductRequest is the POST /products body.
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Brand       string   `json:"brand" binding:"required"`
	Category    string   `json:"category" binding:"required,oneof=Mouse Keyboard Headset Controller Monitor Accessories"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Description string   `json:"description"`
}

// UpdateProductRequest is the PUT /products/:id body. All fields optional;
// only the ones present are written.
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty"`
	Brand       *string  `json:"brand" binding:"omitempty"`
	Category    *string  `json:"category" binding:"omitempty,oneof=Mouse Keyboard Headset Controller Monitor Accessories"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
}
