package httpx

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := NewPagination(2, 10, 35)
		require.Equal(t, 2, p.CurrentPage)
		require.Equal(t, 4, p.TotalPages)
		require.EqualValues(t, 35, p.Total)
		require.True(t, p.HasNext)
		require.True(t, p.HasPrev)
	})

	t.Run("last page", func(t *testing.T) {
		p := NewPagination(2, 10, 15)
		require.Equal(t, 2, p.TotalPages)
		require.False(t, p.HasNext)
		require.True(t, p.HasPrev)
	})

	t.Run("single page", func(t *testing.T) {
		p := NewPagination(1, 10, 7)
		require.Equal(t, 1, p.TotalPages)
		require.False(t, p.HasNext)
		require.False(t, p.HasPrev)
	})

	t.Run("no results", func(t *testing.T) {
		p := NewPagination(1, 10, 0)
		require.Equal(t, 0, p.TotalPages)
		require.False(t, p.HasNext)
		require.False(t, p.HasPrev)
	})
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/clients/manage?page=3&limit=abc&zero=0", nil)

	require.Equal(t, 3, QueryInt(r, "page", 1, 1))
	require.Equal(t, 10, QueryInt(r, "limit", 10, 1), "malformed values fall back to the default")
	require.Equal(t, 1, QueryInt(r, "zero", 1, 1), "values below min fall back to the default")
	require.Equal(t, 1, QueryInt(r, "missing", 1, 1))
}
