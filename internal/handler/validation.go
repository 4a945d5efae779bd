package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (h *Handler) bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondValidationErrors(c, fieldErrors(err))
		return false
	}

	return true
}

func (h *Handler) bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		respondValidationErrors(c, fieldErrors(err))
		return false
	}

	return true
}

func respondValidationErrors(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation error",
		"errors":  errs,
	})
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "Invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := fieldName(fe)
		out = append(out, FieldError{Field: name, Message: messageFor(name, fe)})
	}

	return out
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "body"
	}

	return strings.ToLower(name[:1]) + name[1:]
}

func messageFor(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}
