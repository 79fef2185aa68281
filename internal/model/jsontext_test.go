package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want StringList
	}{
		{"json array bytes", []byte(`["Remarks","Finish"]`), StringList{"Remarks", "Finish"}},
		{"json array string", `["A"]`, StringList{"A"}},
		{"null", nil, StringList{}},
		{"malformed", []byte(`["unterminated`), StringList{}},
		{"wrong shape", []byte(`{"a":1}`), StringList{}},
		{"json null", []byte(`null`), StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.want, l)
		})
	}
}

func TestJSONMapScan(t *testing.T) {
	var m JSONMap
	require.NoError(t, m.Scan([]byte(`{"Remarks":"fragile","Pcs":4}`)))
	assert.Equal(t, "fragile", m.Text("Remarks"))
	assert.Equal(t, "4", m.Text("Pcs"))
	assert.Equal(t, "", m.Text("Missing"))

	require.NoError(t, m.Scan([]byte(`not json`)))
	assert.Equal(t, JSONMap{}, m)

	require.NoError(t, m.Scan(nil))
	assert.Equal(t, JSONMap{}, m)
}

func TestJSONTextValue(t *testing.T) {
	v, err := StringList{"A", "B"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["A","B"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = JSONMap{"A": "x"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"A":"x"}`, v)

	v, err = JSONMap(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNullDate(t *testing.T) {
	var d NullDate
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01"`), &d))
	assert.True(t, d.Valid)
	assert.Equal(t, "2024-05-01", d.String())

	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T00:00:00.000Z"`), &d))
	assert.Equal(t, "2024-05-01", d.String())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.False(t, d.Valid)

	assert.Error(t, json.Unmarshal([]byte(`"01/05/2024"`), &d))

	require.NoError(t, d.Scan(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-30"`, string(b))

	v, err := NullDate{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
