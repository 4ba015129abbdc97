package hospital

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Registration inputs. The tags encode the legacy intake rules: names
// are letters and spaces, mobiles are ten digits starting with 0,
// passwords need at least eight characters mixing case and digits, and
// each role has its own age bracket.

type PatientRegistration struct {
	Name     string `validate:"required,personname"`
	Age      int    `validate:"gte=0,lte=100"`
	Mobile   string `validate:"required,aumobile"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,accountpassword"`
}

type FloorManagerRegistration struct {
	Name     string `validate:"required,personname"`
	Age      int    `validate:"gte=21,lte=70"`
	Mobile   string `validate:"required,aumobile"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,accountpassword"`
	StaffID  int    `validate:"gte=100,lte=999"`
	Floor    int    `validate:"gte=1,lte=6"`
}

type SurgeonRegistration struct {
	Name      string `validate:"required,personname"`
	Age       int    `validate:"gte=30,lte=75"`
	Mobile    string `validate:"required,aumobile"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,accountpassword"`
	StaffID   int    `validate:"gte=100,lte=999"`
	Specialty string `validate:"required,specialty"`
}

var personNameRe = regexp.MustCompile(`^[a-zA-Z ]+$`)

var validatorInst = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	must := func(err error) {
		if err != nil {
			panic(err)
		}
	}

	must(v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	}))

	must(v.RegisterValidation("aumobile", func(fl validator.FieldLevel) bool {
		m := fl.Field().String()
		if len(m) != 10 || !strings.HasPrefix(m, "0") {
			return false
		}
		for _, r := range m {
			if !unicode.IsDigit(r) {
				return false
			}
		}
		return true
	}))

	must(v.RegisterValidation("accountpassword", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		if len(pw) < 8 {
			return false
		}
		var upper, lower, digit bool
		for _, r := range pw {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return upper && lower && digit
	}))

	must(v.RegisterValidation("specialty", func(fl validator.FieldLevel) bool {
		got := fl.Field().String()
		for _, s := range Specialties {
			if s == got {
				return true
			}
		}
		return false
	}))

	return v
}

// validate runs the struct tags and translates failures into the core's
// INVALID_INPUT error, one message per offending field.
func validate(reg any) error {
	err := validatorInst.Struct(reg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Internal("validate registration", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
	}
	return Invalid("%s", strings.Join(msgs, "; "))
}
