package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/seed"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

func TestRetailVillageFindsOnlyVillageKiosk(t *testing.T) {
	svc, _ := newTestServices(t)

	res, err := svc.Customers.List(ctx, query.Query{
		Search:  "village",
		Filters: map[string]string{"type": entity.CustomerTypeRetail},
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "CUS-003", res.Items[0].ID)
	assert.Equal(t, "Village Kiosk", res.Items[0].Name)
	assert.Equal(t, 1, res.TotalMatched)
	assert.Equal(t, len(seed.Customers()), res.Counts[entity.CustomerStatusActive]+res.Counts[entity.CustomerStatusInactive])
}

func TestTopOrdersByAmount(t *testing.T) {
	svc, _ := newTestServices(t)

	res, err := svc.Orders.List(ctx, query.Query{SortKey: "amount", SortDir: query.Desc, Page: 1, PageSize: 3})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, []string{"ORD-2024-009", "ORD-2024-002", "ORD-2024-004"},
		[]string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID})

	for i := 1; i < len(res.Items); i++ {
		assert.Greater(t, query.ParseAmount(res.Items[i-1].Amount), query.ParseAmount(res.Items[i].Amount))
	}
	assert.Equal(t, 10, res.TotalMatched)
	assert.Equal(t, 4, res.TotalPages)
}

func TestCountsIgnoreActiveFilter(t *testing.T) {
	svc, _ := newTestServices(t)

	all, err := svc.Invoices.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, all[entity.InvoiceStatusOverdue])

	res, err := svc.Invoices.List(ctx, query.Query{Filters: map[string]string{"status": entity.InvoiceStatusPaid}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalMatched)
	assert.Equal(t, all, res.Counts)
}

func TestListRejectsBadQuery(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Orders.List(ctx, query.Query{Filters: map[string]string{"colour": "red"}})
	assert.True(t, errorx.IsValidation(err))

	_, err = svc.Orders.List(ctx, query.Query{Filters: map[string]string{"status": "lost"}})
	assert.True(t, errorx.IsValidation(err))

	_, err = svc.Routes.List(ctx, query.Query{SortKey: "estimatedTime"})
	assert.True(t, errorx.IsValidation(err))
}

func TestListHonorsCancelledContext(t *testing.T) {
	svc, _ := newTestServices(t)
	cctx, cancel := context.WithCancel(ctx)
	cancel()

	_, err := svc.Orders.List(cctx, query.Query{})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.Orders.Export(cctx, query.Query{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInventoryFilterByDerivedStockStatus(t *testing.T) {
	svc, _ := newTestServices(t)

	res, err := svc.Inventory.List(ctx, query.Query{Filters: map[string]string{"stockStatus": entity.StockLow}})
	require.NoError(t, err)
	var ids []string
	for _, p := range res.Items {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"PRD-002", "PRD-006"}, ids)
	assert.Equal(t, map[string]int{
		entity.StockIn:          3,
		entity.StockLow:         2,
		entity.StockOut:         1,
		entity.StockOverstocked: 2,
	}, res.Counts)
}

func TestInvoicesSortByDaysOverdue(t *testing.T) {
	svc, _ := newTestServices(t)

	res, err := svc.Invoices.List(ctx, query.Query{SortKey: "daysOverdue", SortDir: query.Desc, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "INV-2024-006", res.Items[0].ID)
	assert.Equal(t, 16, svc.Invoices.DaysOverdue(res.Items[0]))
	assert.Equal(t, "INV-2024-003", res.Items[1].ID)
	assert.Equal(t, 7, svc.Invoices.DaysOverdue(res.Items[1]))
}

func TestExportIgnoresPagination(t *testing.T) {
	svc, _ := newTestServices(t)

	table, err := svc.Orders.Export(ctx, query.Query{
		Filters:  map[string]string{"status": entity.OrderStatusDelivered},
		SortKey:  "amount",
		SortDir:  query.Desc,
		Page:     3,
		PageSize: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, OrderSchema.Header(), table.Header)
	require.Len(t, table.Rows, 4)
	assert.Equal(t, "ORD-2024-009", table.Rows[0][0])
	assert.Equal(t, "KSh 210,000", table.Rows[0][4])
	assert.Equal(t, "ORD-2024-001", table.Rows[3][0])
}

func TestGet(t *testing.T) {
	svc, _ := newTestServices(t)

	r, err := svc.Routes.Get(ctx, "RT-004")
	require.NoError(t, err)
	assert.Equal(t, "Nakuru Highway", r.Name)

	_, err = svc.Routes.Get(ctx, "RT-404")
	assert.True(t, errorx.IsNotFound(err))
}

type memCache struct {
	mu    sync.Mutex
	data  map[string][]byte
	loads int
	hits  int
}

func (c *memCache) Load(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loads++
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dst)
}

func (c *memCache) Store(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = raw
	return nil
}

func TestListCacheIsKeyedByVersion(t *testing.T) {
	mc := &memCache{data: map[string][]byte{}}
	svc, err := NewServices(seed.Default(), Deps{Cache: mc, Clock: func() time.Time { return fixedNow }})
	require.NoError(t, err)

	q := query.Query{Filters: map[string]string{"status": entity.OrderStatusPending}}
	first, err := svc.Orders.List(ctx, q)
	require.NoError(t, err)
	second, err := svc.Orders.List(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, mc.hits)
	assert.Equal(t, first.TotalMatched, second.TotalMatched)
	assert.Equal(t, first.Items, second.Items)

	_, err = svc.Orders.UpdateStatus(ctx, "ORD-2024-003", entity.OrderStatusProcessing)
	require.NoError(t, err)

	third, err := svc.Orders.List(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 1, mc.hits)
	assert.Equal(t, first.TotalMatched-1, third.TotalMatched)
}

func TestServicesSharingACacheKeepTheirOwnCounts(t *testing.T) {
	mc := &memCache{data: map[string][]byte{}}
	deps := Deps{Cache: mc, Clock: func() time.Time { return fixedNow }}
	a, err := NewServices(seed.Default(), deps)
	require.NoError(t, err)
	b, err := NewServices(seed.Default(), deps)
	require.NoError(t, err)

	_, err = a.Orders.UpdateStatus(ctx, "ORD-2024-003", entity.OrderStatusProcessing)
	require.NoError(t, err)
	_, err = a.Orders.List(ctx, query.Query{})
	require.NoError(t, err)

	// 两边版本号相同，数据不同
	_, err = b.Orders.UpdateStatus(ctx, "ORD-2024-003", entity.OrderStatusCancelled)
	require.NoError(t, err)
	require.Equal(t, a.Orders.Collection().Version(), b.Orders.Collection().Version())

	res, err := b.Orders.List(ctx, query.Query{})
	require.NoError(t, err)
	assert.Zero(t, mc.hits)
	assert.Equal(t, 2, res.Counts[entity.OrderStatusCancelled])
	assert.Equal(t, 1, res.Counts[entity.OrderStatusProcessing])

	again, err := b.Orders.List(ctx, query.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, mc.hits)
	assert.Equal(t, res.Counts, again.Counts)
}
