package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkBounds(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want [][2]int
	}{
		{name: "empty", n: 0, size: 100, want: nil},
		{name: "single partial chunk", n: 3, size: 100, want: [][2]int{{0, 3}}},
		{name: "exact multiple", n: 200, size: 100, want: [][2]int{{0, 100}, {100, 200}}},
		{name: "remainder", n: 250, size: 100, want: [][2]int{{0, 100}, {100, 200}, {200, 250}}},
		{name: "non-positive size means one chunk", n: 5, size: 0, want: [][2]int{{0, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunkBounds(tt.n, tt.size))
		})
	}
}
