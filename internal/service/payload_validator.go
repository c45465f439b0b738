package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/pt_PT"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pt_translations "github.com/go-playground/validator/v10/translations/pt"

	"github.com/edugest/edugest-api/internal/models"
	appErrors "github.com/edugest/edugest-api/pkg/errors"
)

const weekdayTag = "weekday"

// PayloadValidator checks resource payloads against their struct tags and
// renders failures in Portuguese.
type PayloadValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewPayloadValidator configures a validator with field names taken from json
// tags, nullable integer support and the weekday rule.
func NewPayloadValidator() (*PayloadValidator, error) {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if n, ok := field.Interface().(models.NullInt64); ok && n.Valid {
			return n.Int64
		}
		return nil
	}, models.NullInt64{})
	if err := validate.RegisterValidation(weekdayTag, validWeekday); err != nil {
		return nil, fmt.Errorf("register weekday rule: %w", err)
	}

	locale := pt_PT.New()
	trans, _ := ut.New(locale, locale).GetTranslator(locale.Locale())
	if err := pt_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("register translations: %w", err)
	}
	err := validate.RegisterTranslation(weekdayTag, trans,
		func(t ut.Translator) error {
			return t.Add(weekdayTag, "{0} deve ser um dia da semana entre 0 e 6", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(weekdayTag, fe.Field())
			return msg
		},
	)
	if err != nil {
		return nil, fmt.Errorf("register weekday translation: %w", err)
	}

	return &PayloadValidator{validate: validate, trans: trans}, nil
}

// Validate returns a VALIDATION_ERROR listing every failed field.
func (p *PayloadValidator) Validate(payload interface{}) error {
	err := p.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, appErrors.ErrValidation.Message)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fe.Translate(p.trans))
	}
	validationErr := appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, strings.Join(messages, "; "))
	validationErr.Field = fieldErrs[0].Field()
	return validationErr
}

func validWeekday(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() >= 0 && field.Int() <= 6
	}
	return false
}
