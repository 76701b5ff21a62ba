package models

// AcademicYear is a cohort label such as "1st Year", based on the 'student_years' table
type AcademicYear struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Name     string `json:"name" db:"name" example:"1st Year"`
	IsActive bool   `json:"isActive" db:"is_active" example:"true"`
}
