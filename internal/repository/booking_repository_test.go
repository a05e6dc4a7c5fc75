package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	cases := []struct {
		total, pageSize, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{3, 1, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pageCount(tc.total, tc.pageSize), "total=%d pageSize=%d", tc.total, tc.pageSize)
	}
}
