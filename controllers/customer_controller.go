package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"gearstore-backend/models"
	"gearstore-backend/repository"
)

// CustomerController handles HTTP requests for customers.
type CustomerController struct {
	repo   repository.CustomerRepository
	logger *zap.Logger
}

// NewCustomerController creates a new CustomerController.
func NewCustomerController(repo repository.CustomerRepository, logger *zap.Logger) *CustomerController {
	return &CustomerController{repo: repo, logger: logger}
}

// ListCustomers handles GET /customers.
func (cc *CustomerController) ListCustomers(ctx *gin.Context) {
	customers, err := cc.repo.FindAll(ctx.Request.Context())
	if err != nil {
		cc.logger.Error("Failed to list customers", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /customers/:id.
func (cc *CustomerController) GetCustomer(ctx *gin.Context) {
	id, ok := objectIDParam(ctx)
	if !ok {
		return
	}

	customer, err := cc.repo.FindByID(ctx.Request.Context(), id)
	if err == repository.ErrNotFound {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	if err != nil {
		cc.logger.Error("Failed to fetch customer", zap.String("id", id.Hex()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

// CreateCustomer handles POST /customers.
func (cc *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req models.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	customer := &models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := cc.repo.Create(ctx.Request.Context(), customer); err != nil {
		cc.logger.Error("Failed to create customer", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cc.logger.Info("Customer created", zap.String("id", customer.ID.Hex()), zap.String("name", customer.Name))
	ctx.JSON(http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /customers/:id.
func (cc *CustomerController) UpdateCustomer(ctx *gin.Context) {
	id, ok := objectIDParam(ctx)
	if !ok {
		return
	}

	var req models.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	err := cc.repo.Update(ctx.Request.Context(), id, updates)
	if err == repository.ErrNotFound {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	if err != nil {
		cc.logger.Error("Failed to update customer", zap.String("id", id.Hex()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	customer, err := cc.repo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		cc.logger.Error("Failed to reload customer", zap.String("id", id.Hex()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/:id.
func (cc *CustomerController) DeleteCustomer(ctx *gin.Context) {
	id, ok := objectIDParam(ctx)
	if !ok {
		return
	}

	err := cc.repo.Delete(ctx.Request.Context(), id)
	if err == repository.ErrNotFound {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	if err != nil {
		cc.logger.Error("Failed to delete customer", zap.String("id", id.Hex()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
