package dto

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/ecosedes/facilities/internal/common/errorx"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validate checks single values outside of request binding.
var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName reports validation failures under the JSON field name.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

// BindError classifies an error returned by gin's ShouldBind* as a
// validation failure.
func BindError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errorx.Invalid(fe.Field(), ruleText(fe)).Wrap(err)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return errorx.Invalid(typeErr.Field, "expected "+typeErr.Type.String()).Wrap(err)
	}

	var parseErr *time.ParseError
	if errors.As(err, &parseErr) {
		return errorx.ErrInvalidDate.With("Field", "date").Wrap(err)
	}

	var xe *errorx.Error
	if errors.As(err, &xe) {
		return err
	}
	return errorx.ErrBadRequest.With("Reason", err.Error()).Wrap(err)
}

func ruleText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " long"
	case "max":
		return "must be at most " + fe.Param() + " long"
	case "gte", "gt", "lte", "lt":
		return "must be " + fe.Tag() + " " + fe.Param()
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}
