package finboard

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the shared validator.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// decimals are validated as numbers, so that gte, lte... apply to them.
		validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
			if d, ok := v.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
	})
	return validate
}

// normalizer is implemented by records that clean up their fields before validation.
type normalizer interface {
	normalize()
}

// validateRecord normalizes then validates record, a pointer to a struct.
func validateRecord(record any) error {
	if n, ok := record.(normalizer); ok {
		n.normalize()
	}
	return validatorInstance().Struct(record)
}
