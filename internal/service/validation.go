package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Freeeeeet/admin_bot/internal/model"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput входные данные не прошли проверку
var ErrInvalidInput = errors.New("invalid input")

// ValidationError первое поле, не прошедшее проверку
type ValidationError struct {
	Field string // имя поля как в JSON, для вложенных "workingHours[0].startTime"
	Tag   string // сработавшее правило: required, clock, date, ...
	Param string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: field %s failed %s=%s", ErrInvalidInput, e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s: field %s failed %s", ErrInvalidInput, e.Field, e.Tag)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем JSON-имена полей
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "clock", func(fl validator.FieldLevel) bool {
		_, err := model.ParseClock(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		_, err := model.ParseDate(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "month", func(fl validator.FieldLevel) bool {
		raw := fl.Field().String()
		_, err := model.ParseMonth(raw)
		return err == nil && len(raw) == len(model.MonthLayout)
	})
	mustRegister(v, "coursestatus", func(fl validator.FieldLevel) bool {
		return model.CourseStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "difficulty", func(fl validator.FieldLevel) bool {
		return model.Difficulty(fl.Field().String()).IsValid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

// validateStruct проверяет структуру по тегам validate
func validateStruct(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field: fieldPath(fe.Namespace()),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		}
	}
	return fmt.Errorf("validate: %w", err)
}

// fieldPath убирает имя корневой структуры: "StaffInput.workingHours[0].startTime" -> "workingHours[0].startTime"
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func invalidField(field, tag string) *ValidationError {
	return &ValidationError{Field: field, Tag: tag}
}
