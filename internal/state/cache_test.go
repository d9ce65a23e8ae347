package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contractdesk/internal/store"
	"contractdesk/models"
)

func listContracts(st *store.Store) ListFunc[models.PaymentContract] {
	return func(q store.Query) (store.Page[models.PaymentContract], error) {
		var page store.Page[models.PaymentContract]
		err := st.View(func(d *store.Data) error {
			page = store.Select(d.PaymentContracts, q,
				func(c models.PaymentContract) []string { return []string{c.ContractNo, c.Name} },
				func(c models.PaymentContract) string { return c.Status },
				func(c models.PaymentContract) int64 { return c.DepartmentID },
			)
			return nil
		})
		return page, err
	}
}

func TestCacheRefresh(t *testing.T) {
	cache := New(listContracts(store.NewSeeded()))

	page, loading := cache.Snapshot()
	assert.Empty(t, page.List)
	assert.False(t, loading)

	got, err := cache.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, store.DefaultPageNum, got.PageNum)
	assert.Equal(t, store.DefaultPageSize, got.PageSize)

	cached, loading := cache.Snapshot()
	assert.Equal(t, got, cached)
	assert.False(t, loading)
}

func TestCacheFilterRewindsToFirstPage(t *testing.T) {
	cache := New(listContracts(store.NewSeeded()))

	cache.SetPagination(2, 2)
	page, err := cache.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 2, page.PageNum)
	require.Len(t, page.List, 1)

	cache.SetFilter("office", "", 0)
	page, err = cache.Refresh()
	require.NoError(t, err)
	assert.Equal(t, store.DefaultPageNum, page.PageNum, "changing the filter rewinds the cursor")
	assert.Equal(t, 2, page.Total)
}

func TestCacheFilterAndPagination(t *testing.T) {
	cache := New(listContracts(store.NewSeeded()))

	cache.SetFilter("", models.ContractStatusExecuting, 4)
	page, err := cache.Refresh()
	require.NoError(t, err)
	require.Len(t, page.List, 1)
	assert.Equal(t, "PC-2023-002", page.List[0].ContractNo)

	cache.SetPagination(0, -5)
	page, err = cache.Refresh()
	require.NoError(t, err)
	assert.Equal(t, store.DefaultPageNum, page.PageNum)
	assert.Equal(t, store.DefaultPageSize, page.PageSize)
}

func TestCacheReset(t *testing.T) {
	cache := New(listContracts(store.NewSeeded()))

	cache.SetFilter("office", "", 0)
	_, err := cache.Refresh()
	require.NoError(t, err)

	cache.Reset()
	page, loading := cache.Snapshot()
	assert.Empty(t, page.List)
	assert.False(t, loading)

	page, err = cache.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total, "filters are cleared by the reset")
}

func TestCacheRefreshError(t *testing.T) {
	boom := errors.New("backend unavailable")
	calls := 0
	cache := New(func(store.Query) (store.Page[models.PaymentContract], error) {
		calls++
		if calls == 1 {
			return store.Page[models.PaymentContract]{}, boom
		}
		return store.Page[models.PaymentContract]{Total: 1, PageNum: 1, PageSize: 10}, nil
	})

	_, err := cache.Refresh()
	assert.ErrorIs(t, err, boom)
	_, loading := cache.Snapshot()
	assert.False(t, loading, "the loading flag is dropped even on failure")

	page, err := cache.Refresh()
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}
