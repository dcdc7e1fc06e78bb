package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gearstore-backend/models"
	"gearstore-backend/services"
)

// SalesController handles HTTP requests for the sales journal and the
// dashboard summary.
type SalesController struct {
	salesService services.SalesService
}

// NewSalesController creates a new SalesController.
func NewSalesController(salesService services.SalesService) *SalesController {
	return &SalesController{salesService: salesService}
}

// ListTransactions handles GET /sales/transactions.
func (sc *SalesController) ListTransactions(ctx *gin.Context) {
	txs, svcErr := sc.salesService.ListTransactions(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, txs)
}

// AddTransaction handles POST /sales/transactions.
func (sc *SalesController) AddTransaction(ctx *gin.Context) {
	var req models.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	tx, svcErr := sc.salesService.AddTransaction(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, tx)
}

// DeleteTransaction handles DELETE /sales/transactions/:id.
func (sc *SalesController) DeleteTransaction(ctx *gin.Context) {
	if svcErr := sc.salesService.DeleteTransaction(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// ListCustomProducts handles GET /sales/products.
func (sc *SalesController) ListCustomProducts(ctx *gin.Context) {
	products, svcErr := sc.salesService.ListCustomProducts(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, products)
}

// AddCustomProduct handles POST /sales/products.
func (sc *SalesController) AddCustomProduct(ctx *gin.Context) {
	var req models.CreateCustomProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := sc.salesService.AddCustomProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

// GetSummary handles GET /sales/summary?period=daily|weekly|monthly.
func (sc *SalesController) GetSummary(ctx *gin.Context) {
	summary, svcErr := sc.salesService.Summary(ctx.Request.Context(), ctx.Query("period"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}
