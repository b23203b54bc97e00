package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/go-contactlink/foundation/contactutil"
)

const (
	TagCanonicalPhone = "canonical_phone"
	TagLinkTemplate   = "link_template"
)

var v *validator.Validate

func init() {
	v = validator.New()
	mustRegister(TagCanonicalPhone, canonicalPhone)
	mustRegister(TagLinkTemplate, linkTemplate)
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// canonicalPhone accepts strings that are already canonical and pass the
// default plan. Formatted input like "+55 11 ..." is rejected.
func canonicalPhone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	c := contactutil.Normalize(s)
	return string(c) == s && contactutil.IsValid(c)
}

func linkTemplate(fl validator.FieldLevel) bool {
	_, err := contactutil.ParseTemplate(fl.Field().String())
	return err == nil
}

func Instance() *validator.Validate {
	return v
}

// Validate returns field -> reason for every failed rule, nil when i is valid.
func Validate(i any) map[string]string {
	if err := v.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			out := make(map[string]string, len(errs))
			for _, e := range errs {
				out[e.Field()] = mapTagToCode(e.Tag())
			}
			return out
		}
		return map[string]string{"_error": "validation_failed"}
	}
	return nil
}
