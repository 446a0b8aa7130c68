package entity

import (
	"sort"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

// Transitions 状态迁移表：from -> 允许的 to 集合
type Transitions struct {
	kind  string
	edges map[string][]string
}

// NewTransitions 创建状态迁移表
func NewTransitions(kind string, edges map[string][]string) Transitions {
	return Transitions{kind: kind, edges: edges}
}

// Allows 是否允许从 from 迁移到 to
func (t Transitions) Allows(from, to string) bool {
	for _, next := range t.edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Next 从 from 出发可以迁移到的状态
func (t Transitions) Next(from string) []string {
	next := append([]string(nil), t.edges[from]...)
	sort.Strings(next)
	return next
}

// Check 校验迁移；from == to 视为无操作，由调用方处理
func (t Transitions) Check(from, to string) error {
	if !t.Allows(from, to) {
		return errorx.Invalid("status", "%s cannot move from %s to %s", t.kind, from, to)
	}
	return nil
}
