package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"gearstore-backend/models"
	"gearstore-backend/repository"
)

// ProductController handles HTTP requests for the product catalog.
type ProductController struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewProductController creates a new ProductController.
func NewProductController(repo repository.ProductRepository, logger *zap.Logger) *ProductController {
	return &ProductController{repo: repo, logger: logger}
}

// ListProducts handles GET /products.
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	products, err := pc.repo.FindAll(ctx.Request.Context())
	if err != nil {
		pc.logger.Error("Failed to list products", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id.
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := objectIDParam(ctx)
	if !ok {
		return
	}

	product, err := pc.repo.FindByID(ctx.Request.Context(), id)
	if err == repository.ErrNotFound {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		pc.logger.Error("Failed to fetch product", zap.String("id", id.Hex()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	product := &models.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Price:       *req.Price,
		Stock:       stock,
		Description: req.Description,
	}

	if err := pc.repo.Create(ctx.Request.Context(), product); err != nil {
		pc.logger.Error("Failed to create product", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pc.logger.Info("Product created", zap.String("id", product.ID.Hex()), zap.String("name", product.Name))
	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id. Partial: only fields present in
// the body are written.
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := objectIDParam(ctx)
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	err := pc.repo.Update(ctx.Request.Context(), id, updates)
	if err == repository.ErrNotFound {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		pc.logger.Error("Failed to update product", zap.String("id", id.Hex()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product, err := pc.repo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		pc.logger.Error("Failed to reload product", zap.String("id", id.Hex()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id.
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := objectIDParam(ctx)
	if !ok {
		return
	}

	err := pc.repo.Delete(ctx.Request.Context(), id)
	if err == repository.ErrNotFound {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		pc.logger.Error("Failed to delete product", zap.String("id", id.Hex()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// objectIDParam parses the :id path parameter, writing a 400 response on
// malformed input.
func objectIDParam(ctx *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return primitive.NilObjectID, false
	}
	return id, true
}
