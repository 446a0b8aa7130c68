package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()
	assert.True(t, s.Toggle("ORD-2024-001"))
	assert.True(t, s.Contains("ORD-2024-001"))
	assert.False(t, s.Toggle("ORD-2024-001"))
	assert.Zero(t, s.Len())
}

func TestSelectionIsSorted(t *testing.T) {
	s := NewSelection("b", "c")
	s.Add("a", "b")
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	s.Remove("b")
	assert.Equal(t, []string{"a", "c"}, s.IDs())

	s.Clear()
	assert.Empty(t, s.IDs())
}

func TestPartitionReportsMissing(t *testing.T) {
	c := MustNew("order", []entity.Order{{ID: "ORD-2024-001"}, {ID: "ORD-2024-002"}})
	s := NewSelection("ORD-2024-002", "ORD-2024-404", "ORD-2024-001")

	present, missing := Partition(s, c)
	assert.Equal(t, []string{"ORD-2024-001", "ORD-2024-002"}, present)
	assert.Equal(t, []string{"ORD-2024-404"}, missing)
	// 不自动剔除
	assert.Equal(t, 3, s.Len())
}
