package calc

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var million = decimal.NewFromInt(1_000_000)

// Parse reads a decimal from free-form text. Empty or non-numeric input is
// reported as not ok.
func Parse(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Fixed renders d with exactly places fraction digits, rounding half away
// from zero.
func Fixed(d decimal.Decimal, places int32) string {
	return d.StringFixed(places)
}

func positive(n decimal.NullDecimal) bool {
	return n.Valid && n.Decimal.IsPositive()
}

// CBM returns W*D*H/1e6 at four decimals when all three dimensions are
// present and positive.
func CBM(w, d, h decimal.NullDecimal) (string, bool) {
	if !positive(w) || !positive(d) || !positive(h) {
		return "", false
	}
	v := w.Decimal.Mul(d.Decimal).Mul(h.Decimal).Div(million)
	return Fixed(v, 4), true
}

// PerUnit divides a line total by its quantity at two decimals. A missing
// total counts as zero; a missing or non-positive qty yields nil.
func PerUnit(total decimal.NullDecimal, qty *int64) *string {
	if qty == nil || *qty <= 0 {
		return nil
	}
	t := decimal.Zero
	if total.Valid {
		t = total.Decimal
	}
	s := Fixed(t.Div(decimal.NewFromInt(*qty)), 2)
	return &s
}

// SafeAdd adds v to acc. Anything that is absent or not a finite number
// contributes zero.
func SafeAdd(acc decimal.Decimal, v interface{}) decimal.Decimal {
	d, ok := toDecimal(v)
	if !ok {
		return acc
	}
	return acc.Add(d)
}

func toDecimal(v interface{}) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return x, true
	case *decimal.Decimal:
		if x == nil {
			return decimal.Zero, false
		}
		return *x, true
	case decimal.NullDecimal:
		return x.Decimal, x.Valid
	case Flex:
		return x.Decimal()
	case string:
		return Parse(x)
	case *string:
		if x == nil {
			return decimal.Zero, false
		}
		return Parse(*x)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	default:
		return decimal.Zero, false
	}
}

// Flex is a numeric input that may arrive as a JSON number, a numeric
// string, an empty string or null.
type Flex string

func (f *Flex) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	switch {
	case s == "null":
		*f = ""
	case strings.HasPrefix(s, `"`):
		u, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		*f = Flex(strings.TrimSpace(u))
	default:
		*f = Flex(s)
	}
	return nil
}

func (f Flex) MarshalJSON() ([]byte, error) {
	if f == "" {
		return []byte("null"), nil
	}
	if _, ok := Parse(string(f)); ok {
		return []byte(f), nil
	}
	return []byte(strconv.Quote(string(f))), nil
}

func (f Flex) Decimal() (decimal.Decimal, bool) {
	return Parse(string(f))
}

func (f Flex) NullDecimal() decimal.NullDecimal {
	d, ok := f.Decimal()
	return decimal.NullDecimal{Decimal: d, Valid: ok}
}
