package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"rental-marketplace/internal/domain/booking"
	"rental-marketplace/internal/domain/payment"
	"rental-marketplace/internal/domain/property"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var rules = map[string]validator.Func{
	"property_type": func(fl validator.FieldLevel) bool {
		return property.Type(fl.Field().String()).IsValid()
	},
	"payment_method": func(fl validator.FieldLevel) bool {
		_, err := payment.NewMethod(fl.Field().String())
		return err == nil
	},
	"payment_provider": func(fl validator.FieldLevel) bool {
		_, err := payment.NewProvider(fl.Field().String())
		return err == nil
	},
	"booking_status": func(fl validator.FieldLevel) bool {
		return booking.Status(fl.Field().String()).IsValid()
	},
	"date": func(fl validator.FieldLevel) bool {
		_, err := booking.ParseDate(fl.Field().String())
		return err == nil
	},
}

// Register installs the marketplace rules on gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// Message renders the first binding failure the way clients see it.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldMessage(verrs[0])
	}
	return "invalid request body"
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "property_type":
		return property.ErrInvalidType.Error()
	case "payment_method":
		return payment.ErrInvalidMethod.Error()
	case "payment_provider":
		return payment.ErrInvalidProvider.Error()
	case "booking_status":
		return booking.ErrInvalidStatus.Error()
	case "date":
		return booking.ErrInvalidDate.Error()
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
