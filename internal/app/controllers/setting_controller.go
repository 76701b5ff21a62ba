package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/collegefinance/internal/app/models/dto"
	"github.com/yigit/collegefinance/internal/app/services"
	"github.com/yigit/collegefinance/internal/middleware"
)

// SettingController handles stored settings
type SettingController struct {
	settingService services.SettingService
}

// NewSettingController creates a new SettingController
func NewSettingController(settingService services.SettingService) *SettingController {
	return &SettingController{settingService: settingService}
}

// GetDefaultFee returns the fee applied to new students
// @Summary Get the default student fee
// @Description source is "setting" once a default has been stored, otherwise "latest_student" or "none"
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.DefaultFee} "Default fee"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/default-fee [get]
func (c *SettingController) GetDefaultFee(ctx *gin.Context) {
	fee, err := c.settingService.DefaultStudentFee(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, fee)
}

// SetDefaultFee stores the fee applied to new students
// @Summary Set the default student fee
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DefaultFeeRequest true "Default fee"
// @Success 200 {object} dto.APIResponse{data=models.DefaultFee} "Default fee stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /settings/default-fee [put]
func (c *SettingController) SetDefaultFee(ctx *gin.Context) {
	var req dto.DefaultFeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindError(ctx, err)
		return
	}
	if req.TotalFee == nil {
		middleware.BadRequest(ctx, "Validation failed", "totalFee is required")
		return
	}

	fee, err := c.settingService.SetDefaultStudentFee(ctx, *req.TotalFee)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ok(ctx, fee)
}
