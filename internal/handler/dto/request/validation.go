package request

import (
	"sync"

	"coliving-payments/internal/domain/user"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by request DTOs to
// gin's validator. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("phone", validatePhone)
	})
	return err
}

func validatePhone(fl validator.FieldLevel) bool {
	return user.IsValidPhone(fl.Field().String())
}
