package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/finance_assistant_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// registerValidators teaches gin's validator about the domain types used in
// request DTOs. Safe to call more than once.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// decimal.Decimal is validated as a float so numeric tags (gte, lte) apply.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
		_ = v.RegisterValidation("transaction_category", func(fl validator.FieldLevel) bool {
			_, err := domain.ParseTransactionCategory(fl.Field().String())
			return err == nil
		})
	})
}
