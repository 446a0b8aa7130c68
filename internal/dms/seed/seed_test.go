package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/store"
)

func TestCollectionsHaveUniqueIDs(t *testing.T) {
	_, err := store.New("customer", Customers())
	assert.NoError(t, err)
	_, err = store.New("order", Orders())
	assert.NoError(t, err)
	_, err = store.New("invoice", Invoices())
	assert.NoError(t, err)
	_, err = store.New("product", Products())
	assert.NoError(t, err)
	_, err = store.New("delivery", Deliveries())
	assert.NoError(t, err)
	_, err = store.New("route", Routes())
	assert.NoError(t, err)
	_, err = store.New("sales rep", SalesReps())
	assert.NoError(t, err)
}

func TestInvoiceAmountsMatchLineItems(t *testing.T) {
	for _, inv := range Invoices() {
		var sum float64
		for _, item := range inv.Items {
			line := float64(item.Quantity) * query.ParseAmount(item.UnitPrice)
			assert.Equal(t, line, query.ParseAmount(item.Total), "%s %s", inv.ID, item.Description)
			sum += line
		}
		assert.Equal(t, query.ParseAmount(inv.Amount), sum, inv.ID)
	}
}

func TestProductValuesMatchStock(t *testing.T) {
	for _, p := range Products() {
		want := float64(p.CurrentStock) * query.ParseAmount(p.UnitPrice)
		assert.Equal(t, query.FormatKSh(want), p.TotalValue, p.ID)
	}
}

func TestSeedReturnsFreshSlices(t *testing.T) {
	a := Customers()
	a[0].Status = entity.CustomerStatusInactive
	assert.Equal(t, entity.CustomerStatusActive, Customers()[0].Status)
}
