package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Number is a decimal that also accepts string-encoded JSON numbers
// ("1299.50"), which admin form clients routinely send.
type Number struct {
	decimal.Decimal
}

func NewNumber(d decimal.Decimal) Number {
	return Number{Decimal: d}
}

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		n.Decimal = decimal.Zero
		return nil
	}
	s = strings.Trim(s, `"`)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	n.Decimal = d
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// Int truncates toward zero, for quantity-like fields.
func (n Number) Int() int {
	return int(n.IntPart())
}

// Bool additionally accepts "true"/"false"/"1"/"0" string forms.
type Bool bool

func (b *Bool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" || s == "" {
		*b = false
		return nil
	}
	parsed, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", s)
	}
	*b = Bool(parsed)
	return nil
}
