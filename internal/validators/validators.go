package validators

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// TimeLayout - формат времени записи
const TimeLayout = "15:04"

var (
	instance *validator.Validate
	once     sync.Once
)

// Get - валидатор с правилами приложения
func Get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// время записи HH:MM
		_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(TimeLayout, fl.Field().String())
			return err == nil
		})
		instance = v
	})
	return instance
}

// Struct - проверка структуры по тегам validate
func Struct(value interface{}) error {
	err := Get().Struct(value)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	return NewFieldsError(errs)
}

// FieldsError - список полей, не прошедших проверку
type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(errs validator.ValidationErrors) *FieldsError {
	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		fields[strings.ToLower(e.Field())] = e.Tag()
	}
	return &FieldsError{Fields: fields}
}

func (e *FieldsError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, tag := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, tag))
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}
