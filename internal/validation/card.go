package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// registerCardRules adds the payment card tags. All three rules strip spaces
// and separators before checking, so formatted input ("4242 4242 ...",
// "12/30") passes as long as the digits are right.
func registerCardRules(v *validator.Validate) {
	// Card number: 13 to 19 digits. No Luhn check; the payment backend is
	// the authority and a checksum here would reject its own test cards.
	must(v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
		digits := digitsOnly(fl.Field().String())
		return len(digits) >= 13 && len(digits) <= 19
	}))

	must(v.RegisterValidation("cardcvv", func(fl validator.FieldLevel) bool {
		digits := digitsOnly(fl.Field().String())
		return len(digits) == 3 || len(digits) == 4
	}))

	must(v.RegisterValidation("cardexpiry", func(fl validator.FieldLevel) bool {
		_, ok := NormalizeExpiry(fl.Field().String())
		return ok
	}))
}

// NormalizeExpiry reduces an expiry string to the canonical four digit MMYY
// form. Accepts "MM/YY", "MM-YY", "MMYY" and "MM/YYYY"; the month must be
// 01 through 12. Returns false when the input cannot be normalized.
func NormalizeExpiry(raw string) (string, bool) {
	digits := digitsOnly(raw)
	switch len(digits) {
	case 4:
		// MMYY as-is.
	case 6:
		// MMYYYY: keep the century out.
		digits = digits[:2] + digits[4:]
	default:
		return "", false
	}

	month := int(digits[0]-'0')*10 + int(digits[1]-'0')
	if month < 1 || month > 12 {
		return "", false
	}
	return digits, true
}

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
