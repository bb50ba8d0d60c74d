package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaginationNormalizeAppliesDefaults(t *testing.T) {
	q := PaginationQuery{}
	q.Normalize()
	require.Equal(t, 1, q.PageNum)
	require.Equal(t, 20, q.PageSize)
	require.Zero(t, q.Offset())
}

func TestPaginationNormalizeCapsPageSize(t *testing.T) {
	q := PaginationQuery{PageNum: -3, PageSize: 5000}
	q.Normalize()
	require.Equal(t, 1, q.PageNum)
	require.Equal(t, 20, q.PageSize)
}

func TestPaginationOffsetFollowsPage(t *testing.T) {
	q := PaginationQuery{PageNum: 4, PageSize: 25}
	q.Normalize()
	require.Equal(t, 75, q.Offset())

	result := NewPaginationResult(120, q.PageNum, q.PageSize)
	require.Equal(t, 120, result.Total)
	require.Equal(t, 4, result.PageNum)
}
