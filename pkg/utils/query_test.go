package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		expected  int
		expectErr bool
	}{
		{name: "ausente usa o padrão", query: "", expected: 30},
		{name: "valor válido", query: "days=7", expected: 7},
		{name: "com espaços", query: "days=%207%20", expected: 7},
		{name: "zero", query: "days=0", expectErr: true},
		{name: "negativo", query: "days=-3", expectErr: true},
		{name: "texto", query: "days=abc", expectErr: true},
		{name: "acima do limite", query: "days=99999", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			days, err := ParseDays(values)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidDays)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, days)
		})
	}
}

func TestParseBusinessIDs(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		expected  []int64
		expectErr bool
	}{
		{name: "vazio significa todas", raw: "", expected: nil},
		{name: "um id", raw: "101", expected: []int64{101}},
		{name: "vários com espaços", raw: "101, 202 ,303", expected: []int64{101, 202, 303}},
		{name: "remove duplicados", raw: "5,5,6", expected: []int64{5, 6}},
		{name: "ignora vírgulas soltas", raw: ",7,", expected: []int64{7}},
		{name: "só vírgulas", raw: ",,", expected: nil},
		{name: "id inválido", raw: "1,abc", expectErr: true},
		{name: "id negativo", raw: "-1", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := ParseBusinessIDs(tt.raw)
			if tt.expectErr {
				assert.ErrorIs(t, err, ErrInvalidBusinessIDs)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("0")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(8)
	require.NoError(t, err)
	assert.Len(t, id, 8)
}
