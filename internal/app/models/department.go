package models

// Department is an entry in the global department list
type Department struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"CSE"`
}

// YearDepartment records that a department is offered in a year
type YearDepartment struct {
	ID     int64 `json:"id" db:"id"`
	YearID int64 `json:"yearId" db:"year_id"`
	DeptID int64 `json:"deptId" db:"dept_id"`
}

// LinkAction is the operation requested on a year/department link
type LinkAction string

const (
	LinkAdd    LinkAction = "add"
	LinkRemove LinkAction = "remove"
)
