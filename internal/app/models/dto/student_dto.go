package dto

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/app/models"
)

// CreateStudentRequest adds one student (name) or a batch (names) to a class
type CreateStudentRequest struct {
	Name         string           `json:"name,omitempty" example:"Anu Joseph"`
	Names        []string         `json:"names,omitempty"`
	YearID       int64            `json:"yearId" binding:"required,min=1" example:"1"`
	DepartmentID int64            `json:"departmentId" binding:"required,min=1" example:"2"`
	TotalFee     *decimal.Decimal `json:"totalFee,omitempty" binding:"omitempty,gte=0" swaggertype:"number" example:"25000"`
}

// AllNames returns the batch names, or the single name when no batch was sent
func (r *CreateStudentRequest) AllNames() []string {
	if len(r.Names) > 0 {
		return r.Names
	}
	if strings.TrimSpace(r.Name) == "" {
		return nil
	}
	return []string{r.Name}
}

// CreateStudentsResponse reports the created ids
type CreateStudentsResponse struct {
	ID    int64   `json:"id" example:"12"`
	IDs   []int64 `json:"ids"`
	Count int     `json:"count" example:"1"`
}

// NewCreateStudentsResponse collects the ids of freshly created students; ID is the last one
func NewCreateStudentsResponse(students []*models.Student) CreateStudentsResponse {
	resp := CreateStudentsResponse{IDs: make([]int64, 0, len(students)), Count: len(students)}
	for _, s := range students {
		resp.IDs = append(resp.IDs, s.ID)
		resp.ID = s.ID
	}
	return resp
}

// UpdateStudentRequest changes the identity fields of a student
type UpdateStudentRequest struct {
	Name         string `json:"name" binding:"required,notblank,max=100" example:"Anu Joseph"`
	YearID       int64  `json:"yearId" binding:"required,min=1" example:"1"`
	DepartmentID int64  `json:"departmentId" binding:"required,min=1" example:"2"`
}

// UpdateFeesRequest overwrites the fee pair of a student; both values are required
type UpdateFeesRequest struct {
	TotalFee   *decimal.Decimal `json:"totalFee" binding:"omitempty,gte=0" swaggertype:"number" example:"25000"`
	AmountPaid *decimal.Decimal `json:"amountPaid" binding:"omitempty,gte=0" swaggertype:"number" example:"10000"`
}

// BulkFeesRequest sets the fee of every student in the selected classes
type BulkFeesRequest struct {
	YearID       FilterID         `json:"yearId" swaggertype:"string" example:"all"`
	DepartmentID FilterID         `json:"departmentId" swaggertype:"string" example:"2"`
	TotalFee     *decimal.Decimal `json:"totalFee" binding:"omitempty,gte=0" swaggertype:"number" example:"25000"`
}

// Filter returns the roster filter selected by the request
func (r *BulkFeesRequest) Filter() models.StudentFilter {
	return models.StudentFilter{Year: r.YearID.IDFilter, Department: r.DepartmentID.IDFilter}
}

// BulkFeesResponse reports how many students were updated
type BulkFeesResponse struct {
	Updated int64 `json:"updated" example:"42"`
}

// StudentResponse is a roster entry with its outstanding balance
type StudentResponse struct {
	ID           int64           `json:"id" example:"1"`
	Name         string          `json:"name" example:"Anu Joseph"`
	YearID       int64           `json:"yearId" example:"1"`
	DepartmentID int64           `json:"departmentId" example:"2"`
	TotalFee     decimal.Decimal `json:"totalFee" swaggertype:"number" example:"25000"`
	AmountPaid   decimal.Decimal `json:"amountPaid" swaggertype:"number" example:"10000"`
	Balance      decimal.Decimal `json:"balance" swaggertype:"number" example:"15000"`
	IsPaid       bool            `json:"isPaid" example:"false"`
}

// NewStudentResponse converts a roster entry for output
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:           s.ID,
		Name:         s.Name,
		YearID:       s.YearID,
		DepartmentID: s.DepartmentID,
		TotalFee:     s.TotalFee,
		AmountPaid:   s.AmountPaid,
		Balance:      s.Balance(),
		IsPaid:       s.IsPaid,
	}
}

// NewStudentResponses converts a roster
func NewStudentResponses(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// FeeUpdateResponse reports the recomputed state of a fee account
type FeeUpdateResponse struct {
	ID      int64           `json:"id" example:"1"`
	IsPaid  bool            `json:"isPaid" example:"false"`
	Balance decimal.Decimal `json:"balance" swaggertype:"number" example:"15000"`
}

// DefaultFeeRequest sets the default fee for new students
type DefaultFeeRequest struct {
	TotalFee *decimal.Decimal `json:"totalFee" binding:"omitempty,gte=0" swaggertype:"number" example:"25000"`
}
