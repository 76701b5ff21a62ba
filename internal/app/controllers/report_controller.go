package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/models/dto"
	"github.com/yigit/collegefinance/internal/app/services"
	"github.com/yigit/collegefinance/internal/middleware"
)

// ReportController serves the dashboard and the financial reports
type ReportController struct {
	reportService      services.ReportService
	transactionService services.TransactionService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService, transactionService services.TransactionService) *ReportController {
	return &ReportController{
		reportService:      reportService,
		transactionService: transactionService,
	}
}

// GetDashboard returns the dashboard snapshot
// @Summary Dashboard totals
// @Description Collection and expense totals honour the filters; yearStats and modeStats always cover every collection. A malformed filter matches nothing.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param yearId query string false "Year ID or 'all'"
// @Param deptId query string false "Department ID or 'all' (alias departmentId)"
// @Success 200 {object} dto.APIResponse{data=models.DashboardSummary} "Dashboard"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard [get]
func (c *ReportController) GetDashboard(ctx *gin.Context) {
	filter := models.DashboardFilter{
		Year:       queryFilter(ctx, "yearId"),
		Department: queryFilter(ctx, "deptId", "departmentId"),
	}

	summary, err := c.reportService.Dashboard(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, summary)
}

// GetBreakdown returns collections grouped by year and department
// @Summary Collection breakdown
// @Description Year, then department, with cash, gpay and total collected
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.BreakdownYear} "Breakdown"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/breakdown [get]
func (c *ReportController) GetBreakdown(ctx *gin.Context) {
	breakdown, err := c.reportService.Breakdown(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, breakdown)
}

// GetFeeStatus returns fee account summaries per class
// @Summary Fee status
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param yearId query string false "Year ID or 'all'"
// @Param deptId query string false "Department ID or 'all'"
// @Success 200 {object} dto.APIResponse{data=[]models.FeeStatusYear} "Fee status"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/fee-status [get]
func (c *ReportController) GetFeeStatus(ctx *gin.Context) {
	filter := models.StudentFilter{
		Year:       queryFilter(ctx, "yearId"),
		Department: queryFilter(ctx, "deptId", "departmentId"),
	}

	status, err := c.reportService.FeeStatus(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, status)
}

// GetExpenseReport lists expenses with their total
// @Summary Expense report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.ExpenseReportResponse} "Expenses"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/expenses [get]
func (c *ReportController) GetExpenseReport(ctx *gin.Context) {
	report, err := c.transactionService.ExpenseReport(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, dto.ExpenseReportResponse{
		Items: dto.NewTransactionResponses(report.Items),
		Total: report.Total,
	})
}
