// Package validate holds the subscriber-number formats accepted by the
// back-office forms and a shared struct validator that knows about them.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	msisdnRegex       = regexp.MustCompile(`^\+?\d{8,15}$`)
	strictMSISDNRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
	e164Regex         = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
)

// MSISDN accepts an optional leading plus followed by 8 to 15 digits.
func MSISDN(s string) bool {
	return msisdnRegex.MatchString(s)
}

// StrictMSISDN accepts 10 to 15 digits and nothing else.
func StrictMSISDN(s string) bool {
	return strictMSISDNRegex.MatchString(s)
}

// E164 accepts an E.164-like number once whitespace is removed.
func E164(s string) bool {
	return e164Regex.MatchString(strings.Join(strings.Fields(s), ""))
}

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		register := func(tag string, fn func(string) bool) {
			if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return fn(fl.Field().String())
			}); err != nil {
				panic(fmt.Sprintf("registering %s validation: %v", tag, err))
			}
		}
		register("msisdn", MSISDN)
		register("msisdn_strict", StrictMSISDN)
		register("e164_loose", E164)
	})
	return v
}

// FieldError reports the first struct field that failed validation.
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s failed %s validation", e.Field, e.Tag)
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return &FieldError{Field: ve[0].Field(), Tag: ve[0].Tag()}
	}
	return err
}
