package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/models/dto"
	"github.com/yigit/collegefinance/internal/app/services"
	"github.com/yigit/collegefinance/internal/middleware"
)

// StudentController handles the roster and its fee ledger
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetStudents lists students
// @Summary List students
// @Description Returns students ordered by name, optionally narrowed to a class
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param yearId query string false "Year ID or 'all'"
// @Param deptId query string false "Department ID or 'all'"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse} "Students"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	filter := models.StudentFilter{
		Year:       queryFilter(ctx, "yearId"),
		Department: queryFilter(ctx, "deptId", "departmentId"),
	}

	students, err := c.studentService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, dto.NewStudentResponses(students))
}

// CreateStudents adds one or many students to a class
// @Summary Create students
// @Description Send "name" for one student or "names" for a batch. The default fee applies unless totalFee is given.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Students"
// @Success 201 {object} dto.APIResponse{data=dto.CreateStudentsResponse} "Students created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Year or department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudents(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	created, err := c.studentService.Create(ctx, services.NewStudents{
		Names:        req.AllNames(),
		YearID:       req.YearID,
		DepartmentID: req.DepartmentID,
		TotalFee:     req.TotalFee,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respond(ctx, http.StatusCreated, dto.NewCreateStudentsResponse(created))
}

// UpdateStudent changes the name and class of a student
// @Summary Update a student
// @Description Changes identity fields only; the fee account is untouched
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateStudentRequest true "Identity fields"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse} "Student updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student, year or department not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id", "student")
	if !valid {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}

	student, err := c.studentService.UpdateIdentity(ctx, &models.Student{
		ID:           id,
		Name:         req.Name,
		YearID:       req.YearID,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, dto.NewStudentResponse(student))
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Student deleted"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id", "student")
	if !valid {
		return
	}

	if err := c.studentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, dto.MessageResponse{Message: "Student deleted"})
}

// UpdateFees overwrites the fee account of a student
// @Summary Update a student's fees
// @Description Both totalFee and amountPaid are required. isPaid is recomputed.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID" Format(int64) minimum(1)
// @Param request body dto.UpdateFeesRequest true "Fee pair"
// @Success 200 {object} dto.APIResponse{data=dto.FeeUpdateResponse} "Fees updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{id}/fees [put]
func (c *StudentController) UpdateFees(ctx *gin.Context) {
	id, valid := parseIDParam(ctx, "id", "student")
	if !valid {
		return
	}

	var req dto.UpdateFeesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	if req.TotalFee == nil || req.AmountPaid == nil {
		middleware.BadRequest(ctx, "Validation failed", "totalFee and amountPaid are both required")
		return
	}

	student, err := c.studentService.UpdateFees(ctx, id, *req.TotalFee, *req.AmountPaid)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, dto.FeeUpdateResponse{ID: student.ID, IsPaid: student.IsPaid, Balance: student.Balance()})
}

// BulkUpdateFees sets the fee of every student in the selected classes
// @Summary Bulk update fees
// @Description Sets totalFee on every matching student. The default fee is not changed. Filters accept an id, "all" or null.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkFeesRequest true "Filters and fee"
// @Success 200 {object} dto.APIResponse{data=dto.BulkFeesResponse} "Fees updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/bulk-fees [put]
func (c *StudentController) BulkUpdateFees(ctx *gin.Context) {
	var req dto.BulkFeesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	if req.TotalFee == nil {
		middleware.BadRequest(ctx, "Validation failed", "totalFee is required")
		return
	}

	updated, err := c.studentService.BulkUpdateFees(ctx, req.Filter(), *req.TotalFee)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, dto.BulkFeesResponse{Updated: updated})
}
