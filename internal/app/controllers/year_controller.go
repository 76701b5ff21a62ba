package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/models/dto"
	"github.com/yigit/collegefinance/internal/app/services"
	"github.com/yigit/collegefinance/internal/middleware"
)

// YearController handles academic years and their department links
type YearController struct {
	yearService services.YearService
}

// NewYearController creates a new YearController
func NewYearController(yearService services.YearService) *YearController {
	return &YearController{yearService: yearService}
}

// GetAllYears lists academic years
// @Summary List academic years
// @Description Returns every academic year ordered by name
// @Tags years
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AcademicYear} "Academic years"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /years [get]
func (c *YearController) GetAllYears(ctx *gin.Context) {
	years, err := c.yearService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, years)
}

// CreateYear adds an academic year
// @Summary Create an academic year
// @Tags years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateYearRequest true "Year name"
// @Success 201 {object} dto.APIResponse{data=models.AcademicYear} "Year created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Year already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /years [post]
func (c *YearController) CreateYear(ctx *gin.Context) {
	var req dto.CreateYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	year, err := c.yearService.Create(ctx, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, year)
}

// UpdateYear toggles the active flag of a year
// @Summary Activate or deactivate a year
// @Tags years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Year ID" Format(int64) minimum(1)
// @Param request body dto.UpdateYearRequest true "Active flag"
// @Success 200 {object} dto.APIResponse{data=models.AcademicYear} "Year updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Year not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /years/{id} [patch]
func (c *YearController) UpdateYear(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id", "year")
	if !valid {
		return
	}

	var req dto.UpdateYearRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	year, err := c.yearService.SetActive(ctx, id, *req.IsActive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, year)
}

// GetYearDepartments lists the departments linked to a year
// @Summary List departments of a year
// @Tags years
// @Produce json
// @Security BearerAuth
// @Param id path int true "Year ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Department} "Linked departments"
// @Failure 404 {object} dto.ErrorResponse "Year not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /years/{id}/departments [get]
func (c *YearController) GetYearDepartments(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id", "year")
	if !valid {
		return
	}

	depts, err := c.yearService.GetDepartments(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, depts)
}

// UpdateYearDepartment links or unlinks a department
// @Summary Link or unlink a department
// @Tags years
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Year ID" Format(int64) minimum(1)
// @Param request body dto.YearLinkRequest true "Department and action"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Link updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Year, department or link not found"
// @Failure 409 {object} dto.ErrorResponse "Department already linked"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /years/{id}/departments [post]
func (c *YearController) UpdateYearDepartment(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id", "year")
	if !valid {
		return
	}

	var req dto.YearLinkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	action := models.LinkAction(req.Action)
	if err := c.yearService.UpdateDepartmentLink(ctx, id, req.DeptID, action); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Department linked"
	if action == models.LinkRemove {
		message = "Department unlinked"
	}
	ok(ctx, dto.MessageResponse{Message: message})
}
