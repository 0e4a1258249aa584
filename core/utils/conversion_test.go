package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name   string
		val    any
		want   int
		wantOK bool
	}{
		{"Int", 3, 3, true},
		{"Float whole", float64(2), 2, true},
		{"Float fraction", 2.5, 0, false},
		{"String", " 4 ", 4, true},
		{"Negative string", "-1", -1, true},
		{"Bad string", "two", 0, false},
		{"Number", json.Number("7"), 7, true},
		{"Nil", nil, 0, false},
		{"Bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.val)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool(true))
	assert.True(t, ToBool("TRUE"))
	assert.True(t, ToBool("1"))
	assert.True(t, ToBool(float64(1)))
	assert.False(t, ToBool("foil"))
	assert.False(t, ToBool(nil))
	assert.False(t, ToBool(0))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "AX", ToString(" AX "))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "12", ToString(float64(12)))
}

func TestFirstOf(t *testing.T) {
	obj := map[string]any{"reference": "ALT_CORE_B_AX_01_C", "id": nil}

	v, ok := FirstOf(obj, "id", "reference")
	assert.True(t, ok)
	assert.Equal(t, "ALT_CORE_B_AX_01_C", v)

	_, ok = FirstOf(obj, "card_id")
	assert.False(t, ok)
}
