// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("product_group", validateProductGroup)
		_ = v.RegisterValidation("product_status", validateProductStatus)
		_ = v.RegisterValidation("user_role", validateUserRole)
	}
}

func validateProductGroup(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "risk", "investment", "hybrid":
		return true
	}
	return false
}

func validateProductStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "inactive", "deprecated":
		return true
	}
	return false
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "admin", "manager", "back_office", "sales_manager", "viewer":
		return true
	}
	return false
}
