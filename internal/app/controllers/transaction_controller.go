package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/models/dto"
	"github.com/yigit/collegefinance/internal/app/services"
	"github.com/yigit/collegefinance/internal/middleware"
)

// TransactionController handles the collection/expense ledger
type TransactionController struct {
	transactionService services.TransactionService
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(transactionService services.TransactionService) *TransactionController {
	return &TransactionController{transactionService: transactionService}
}

// GetTransactions lists ledger entries
// @Summary List transactions
// @Description Returns ledger entries newest first. Filters accept an id, "all" or nothing.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param yearId query string false "Year ID or 'all'"
// @Param deptId query string false "Department ID or 'all'"
// @Param type query string false "collection or expense" Enums(collection, expense)
// @Success 200 {object} dto.APIResponse{data=[]dto.TransactionResponse} "Transactions"
// @Failure 400 {object} dto.ErrorResponse "Unknown type"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions [get]
func (c *TransactionController) GetTransactions(ctx *gin.Context) {
	filter := models.TransactionFilter{
		Year:       queryFilter(ctx, "yearId"),
		Department: queryFilter(ctx, "deptId", "departmentId"),
	}
	if raw := strings.ToLower(strings.TrimSpace(ctx.Query("type"))); raw != "" && raw != models.FilterAll {
		filter.Type = models.TransactionType(raw)
		if !filter.Type.Valid() {
			middleware.BadRequest(ctx, "Invalid transaction type", "type must be 'collection' or 'expense'")
			return
		}
	}

	items, err := c.transactionService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, dto.NewTransactionResponses(items))
}

// CreateTransaction records a collection or an expense
// @Summary Record a transaction
// @Description Collections need a year and a department; expenses never carry them
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.APIResponse{data=dto.TransactionResponse} "Transaction recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Year or department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions [post]
func (c *TransactionController) CreateTransaction(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	if req.Amount == nil {
		middleware.BadRequest(ctx, "Validation failed", "amount is required")
		return
	}

	tx, err := req.ToModel()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.transactionService.Create(ctx, tx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, dto.NewTransactionResponse(created))
}
