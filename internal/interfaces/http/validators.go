package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"deskflow/internal/domain/workanalysis"
)

// registerValidators installs the custom binding validators shared by all
// request DTOs.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// material_flag accepts the Yes/No values the analysis flow stores.
	_ = v.RegisterValidation("material_flag", func(fl validator.FieldLevel) bool {
		return workanalysis.MaterialRequired(fl.Field().String()).IsValid()
	})
}
