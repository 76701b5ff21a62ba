package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegefinance/internal/app/models"
	"github.com/yigit/collegefinance/internal/app/models/dto"
	"github.com/yigit/collegefinance/internal/middleware"
)

// parseIDParam reads a positive id path parameter and reports a 400 when it is not one
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.BadRequest(ctx, "Invalid "+label+" ID", label+" ID must be a positive number")
		return 0, false
	}
	return id, true
}

// queryFilter reads an optional id filter from the first query parameter present
func queryFilter(ctx *gin.Context, names ...string) models.IDFilter {
	for _, name := range names {
		if raw, ok := ctx.GetQuery(name); ok {
			return models.ParseIDFilter(raw)
		}
	}
	return models.IDFilter{}
}

func respond(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, dto.NewAPIResponse(data))
}

func ok(ctx *gin.Context, data interface{}) {
	respond(ctx, http.StatusOK, data)
}

// requireAdmin returns the admin id set by the auth middleware, or answers 401
func requireAdmin(ctx *gin.Context) (int64, bool) {
	adminID, found := middleware.AdminIDFromContext(ctx)
	if !found {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return 0, false
	}
	return adminID, true
}
