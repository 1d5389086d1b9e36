package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SergeyKozhin/event-reminder-backend/internal/config"
	"github.com/SergeyKozhin/event-reminder-backend/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return model.EventCategory(fl.Field().Int()).Valid()
	})
	return v
}

// validateName checks the event name against the configured length limit.
func validateName(name string) map[string]string {
	if err := validate.Var(name, fmt.Sprintf("required,max=%d", config.EventNameMaxLength())); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) && vErrs[0].Tag() == "max" {
			return map[string]string{"name": fmt.Sprintf("must not be longer than %d", config.EventNameMaxLength())}
		}
		return map[string]string{"name": "must be provided"}
	}
	return nil
}

// validationErrors turns validator errors into a field -> message map.
func validationErrors(err error) map[string]string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return map[string]string{"body": err.Error()}
	}

	res := make(map[string]string, len(vErrs))
	for _, e := range vErrs {
		switch e.Tag() {
		case "required":
			res[e.Field()] = "must be provided"
		case "max":
			res[e.Field()] = fmt.Sprintf("must not be longer than %s", e.Param())
		case "oneof":
			res[e.Field()] = fmt.Sprintf("must be one of %s", e.Param())
		case "category":
			res[e.Field()] = "unknown category"
		default:
			res[e.Field()] = fmt.Sprintf("failed on %q", e.Tag())
		}
	}

	return res
}
