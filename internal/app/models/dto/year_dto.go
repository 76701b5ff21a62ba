package dto

// CreateYearRequest represents academic year creation data
type CreateYearRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100" example:"1st Year"`
}

// UpdateYearRequest toggles the active flag of a year
type UpdateYearRequest struct {
	IsActive *bool `json:"isActive" binding:"required" example:"false"`
}

// YearLinkRequest adds or removes a department from a year
type YearLinkRequest struct {
	DeptID int64  `json:"deptId" binding:"required,min=1" example:"2"`
	Action string `json:"action" binding:"required,oneof=add remove" example:"add"`
}
