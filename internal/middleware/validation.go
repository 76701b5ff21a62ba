package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
	"github.com/yigit/collegefinance/internal/pkg/validation"
)

// RegisterValidators teaches gin's validator about decimal amounts, JSON field names and
// the notblank rule. It is safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterCustomTypeFunc(validation.DecimalValue, decimal.Decimal{})
	v.RegisterTagNameFunc(jsonFieldName)
	return v.RegisterValidation("notblank", validators.NotBlank)
}

// jsonFieldName reports validation errors under the JSON name of a field
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}
