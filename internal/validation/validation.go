// Package validation настраивает общий валидатор запросов.
package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/swapeasyapp/swapeasy-api/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Справочники содержат пробелы и кириллицу, поэтому oneof не подходит —
	// регистрируем собственные правила.
	_ = v.RegisterValidation("itemtype", func(fl validator.FieldLevel) bool {
		return models.ValidItemType(fl.Field().String())
	})
	_ = v.RegisterValidation("pricecategory", func(fl validator.FieldLevel) bool {
		return models.ValidPriceCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return models.ValidRegion(fl.Field().String())
	})
	_ = v.RegisterValidation("offerdecision", func(fl validator.FieldLevel) bool {
		return models.ValidOfferStatus(fl.Field().String())
	})

	return v
}

// Struct валидирует структуру запроса по её тегам validate
func Struct(s any) error {
	return validate.Struct(s)
}
