package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNilish(t *testing.T) {
	t.Parallel()

	var (
		nilFunc  func(int) bool
		nilMap   map[string]int
		nilPtr   *int
		nilSlice []any
		nilChan  chan int
		nilIface error
	)

	value := 42

	tests := []struct {
		name string
		val  any
		want bool
	}{
		{name: "literal nil", val: nil, want: true},
		{name: "nil func", val: nilFunc, want: true},
		{name: "nil map", val: nilMap, want: true},
		{name: "nil pointer", val: nilPtr, want: true},
		{name: "nil slice", val: nilSlice, want: true},
		{name: "nil chan", val: nilChan, want: true},
		{name: "nil interface", val: nilIface, want: true},
		{name: "func", val: func(int) bool { return true }, want: false},
		{name: "pointer", val: &value, want: false},
		{name: "empty slice", val: []any{}, want: false},
		{name: "zero int", val: 0, want: false},
		{name: "empty string", val: "", want: false},
		{name: "struct", val: struct{}{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, IsNilish(tt.val))
		})
	}
}
