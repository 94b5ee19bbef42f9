package dto

import (
	"fmt"
	"strings"

	res "foodgram/recipe-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(200, res.SuccessResponse(data))
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(200, res.ErrorResponse(err.Code, err.Msg))
}

// ValidationErrorResponse converts binding errors into messages that name
// the JSON field instead of the Go struct field.
func ValidationErrorResponse(c *gin.Context, err error) {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrs) > 0 {
			firstErr := validationErrs[0]
			jsonField := getJSONFieldName(firstErr)

			var message string
			switch firstErr.Tag() {
			case "required":
				message = fmt.Sprintf("field '%s' is required", jsonField)
			case "max":
				message = fmt.Sprintf("field '%s' must be at most %s", jsonField, firstErr.Param())
			case "min":
				message = fmt.Sprintf("field '%s' must be at least %s", jsonField, firstErr.Param())
			case "email":
				message = fmt.Sprintf("field '%s' must be a valid email address", jsonField)
			case "oneof":
				message = fmt.Sprintf("field '%s' must be one of: %s", jsonField, firstErr.Param())
			default:
				message = fmt.Sprintf("field '%s' failed validation: %s", jsonField, firstErr.Tag())
			}

			ErrorResponse(c, res.NewBusinessError(
				res.WithErrorCode(res.ParseError),
				res.WithErrorMessage(message),
			))
			return
		}
	}

	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("invalid request: "+err.Error()),
	))
}

func getJSONFieldName(fe validator.FieldError) string {
	field := fe.StructNamespace()

	if strings.Contains(field, ".") {
		parts := strings.Split(field, ".")
		if len(parts) > 1 {
			return toSnakeCase(parts[len(parts)-1])
		}
	}

	return toSnakeCase(fe.Field())
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
