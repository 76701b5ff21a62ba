package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Keys of the app_settings table
const (
	SettingDefaultStudentFee = "default_student_fee"
)

// Setting is a named configuration value stored alongside the data
type Setting struct {
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Where a default fee came from
const (
	DefaultFeeFromSetting       = "setting"
	DefaultFeeFromLatestStudent = "latest_student"
	DefaultFeeNone              = "none"
)

// DefaultFee is the fee applied to new students when none is given
type DefaultFee struct {
	TotalFee decimal.Decimal `json:"totalFee" example:"25000"`
	Source   string          `json:"source" example:"setting"`
}
