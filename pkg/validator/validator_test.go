package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"name" validate:"required"`
	Currency string   `json:"currency" validate:"omitempty,oneof=USD EUR Rp IDR"`
	Columns  []string `json:"custom_columns" validate:"max=5"`
}

func TestStruct(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		in      sample
		field   string
		message string
	}{
		{"valid", sample{Name: "Acme", Currency: "EUR"}, "", ""},
		{"missing name", sample{}, "name", "name is required"},
		{"bad currency", sample{Name: "a", Currency: "GBP"}, "currency", "currency must be one of [USD EUR Rp IDR]"},
		{"too many columns", sample{Name: "a", Columns: []string{"1", "2", "3", "4", "5", "6"}}, "custom_columns", "custom_columns must have at most 5 entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fe, ok := err.(*FieldError)
			require.True(t, ok)
			assert.Equal(t, tt.field, fe.Field)
			assert.Equal(t, tt.message, fe.Error())
		})
	}
}
