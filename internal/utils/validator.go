package utils

import (
	"diet-diary/internal/utils/form"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = form.NewValidator()
}
