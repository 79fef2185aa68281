package calc

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nd(s string) decimal.NullDecimal {
	if s == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func i64(v int64) *int64 { return &v }

func TestCBM(t *testing.T) {
	tests := []struct {
		name    string
		w, d, h string
		want    string
		ok      bool
	}{
		{"all positive", "100", "50", "80", "0.4000", true},
		{"rounds to four places", "33.3", "33.3", "33.3", "0.0369", true},
		{"half rounds away from zero", "5", "5", "6", "0.0002", true},
		{"zero dimension", "100", "0", "80", "", false},
		{"negative dimension", "100", "-50", "80", "", false},
		{"missing dimension", "100", "50", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CBM(nd(tt.w), nd(tt.d), nd(tt.h))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPerUnit(t *testing.T) {
	tests := []struct {
		name  string
		total string
		qty   *int64
		want  *string
	}{
		{"even split", "20", i64(4), strp("5.00")},
		{"repeating fraction", "10", i64(3), strp("3.33")},
		{"missing total counts as zero", "", i64(2), strp("0.00")},
		{"zero qty", "20", i64(0), nil},
		{"negative qty", "20", i64(-1), nil},
		{"missing qty", "20", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerUnit(nd(tt.total), tt.qty)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func strp(s string) *string { return &s }

func TestSafeAdd(t *testing.T) {
	values := []interface{}{
		"1.5",
		"abc",
		"",
		nil,
		math.NaN(),
		math.Inf(1),
		2.25,
		nd("3"),
		decimal.NullDecimal{},
		strp("0.25"),
		(*string)(nil),
		Flex("4"),
		Flex(""),
		int64(1),
		struct{}{},
	}

	acc := decimal.Zero
	for _, v := range values {
		acc = SafeAdd(acc, v)
	}
	assert.Equal(t, "12.00", Fixed(acc, 2))
}

func TestFixed(t *testing.T) {
	assert.Equal(t, "1.01", Fixed(decimal.RequireFromString("1.005"), 2))
	assert.Equal(t, "-1.01", Fixed(decimal.RequireFromString("-1.005"), 2))
	assert.Equal(t, "3.00", Fixed(decimal.NewFromInt(3), 2))
}

func TestFlexJSON(t *testing.T) {
	var in struct {
		A Flex `json:"a"`
		B Flex `json:"b"`
		C Flex `json:"c"`
		D Flex `json:"d"`
		E Flex `json:"e"`
	}
	err := json.Unmarshal([]byte(`{"a": 12.5, "b": " 7 ", "c": null, "d": "", "e": "n/a"}`), &in)
	require.NoError(t, err)

	a, ok := in.A.Decimal()
	assert.True(t, ok)
	assert.Equal(t, "12.5", a.String())

	b, ok := in.B.Decimal()
	assert.True(t, ok)
	assert.Equal(t, "7", b.String())

	_, ok = in.C.Decimal()
	assert.False(t, ok)
	_, ok = in.D.Decimal()
	assert.False(t, ok)
	assert.False(t, in.E.NullDecimal().Valid)

	out, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12.5,"b":7,"c":null,"d":null,"e":"n/a"}`, string(out))
}

func TestFormatCurrency(t *testing.T) {
	amount := decimal.RequireFromString("1234.5")

	tests := []struct {
		code string
		sym  string
		want string
	}{
		{"USD", "$", "$1234.50"},
		{"EUR", "€", "€1234.50"},
		{"Rp", "Rp", "Rp 1234.50"},
		{"IDR", "Rp", "Rp 1234.50"},
		{"", "$", "$1234.50"},
		{"GBP", "GBP", "GBP1234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.sym, CurrencySymbol(tt.code))
			assert.Equal(t, tt.want, FormatCurrency(amount, tt.code))
		})
	}
}
