// Package validator registers custom validation rules with Gin's binding
// engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendbot/internal/period"
)

// Register installs the custom rules. Call once at startup before the router
// starts binding requests.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// dmydate: a dd.mm.yyyy calendar date literal, the format users type at
	// the chat boundary.
	_ = v.RegisterValidation("dmydate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(period.DateLayout, fl.Field().String())
		return err == nil
	})

	// handle: a non-empty username without inner whitespace.
	_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		for _, r := range s {
			if r == ' ' || r == '\t' || r == '\n' {
				return false
			}
		}
		return true
	})
}
