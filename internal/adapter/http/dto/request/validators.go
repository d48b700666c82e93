package request

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"seguros_xpto/internal/domain/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Custom binding tags backed by internal/domain/validation.
const (
	TagNIF        = "nif"
	TagIBAN       = "iban_pt"
	TagPostalCode = "postal_code_pt"
	TagCitizenCC  = "cc_pt"
	TagPhone      = "phone_pt"
)

var customValidators = map[string]func(string) bool{
	TagNIF:        validation.IsValidNIF,
	TagIBAN:       validation.IsValidIBAN,
	TagPostalCode: validation.IsValidPostalCode,
	TagCitizenCC:  validation.IsValidCitizenCard,
	TagPhone:      validation.IsValidPhone,
}

// RegisterValidators adds the Portuguese identity and payment tags to v and
// makes field errors report json names.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	for tag, fn := range customValidators {
		check := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(strings.TrimSpace(fl.Field().String()))
		}); err != nil {
			return err
		}
	}
	return nil
}

var registerOnce sync.Once

// RegisterGinValidators registers the custom tags on gin's binding engine.
func RegisterGinValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		err = RegisterValidators(v)
	})
	return err
}

// FieldViolations turns binding errors into field -> failed tag pairs. It
// returns nil when err is not a validator error (malformed JSON).
func FieldViolations(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
