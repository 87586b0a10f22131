package mesto

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator"
)

// avatarURLRegexp mirrors the URL pattern enforced on stored avatars:
// http(s), optional www, then any run of URL characters.
var avatarURLRegexp = regexp.MustCompile(`^https?://(www\.)?[\w\-.~:/?#\[\]@!$&'()*+,;=]+#?$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("avatarurl", func(fl validator.FieldLevel) bool {
		return avatarURLRegexp.MatchString(fl.Field().String())
	})

	return v
}

// validateRequest checks a decoded request body against its struct tags
// and converts every violation into a client-facing constraint message,
// so a single response enumerates all of them.
func validateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, constraintMessage(fe))
	}
	return NewValidationError("validation failed", details...)
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field %q is required", fe.Field())
	case "email":
		return fmt.Sprintf("field %q must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("field %q must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("field %q must be at most %s characters", fe.Field(), fe.Param())
	case "url", "avatarurl":
		return fmt.Sprintf("field %q must be a valid URL", fe.Field())
	default:
		return fmt.Sprintf("field %q is invalid", fe.Field())
	}
}
