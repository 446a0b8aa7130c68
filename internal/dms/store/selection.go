package store

import (
	"sort"
	"sync"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
)

// Selection 用户勾选的标识集合，与查询管道相互独立。
// 集合变化时不会自动剔除已不存在的标识，由批量操作报告缺失项。
type Selection struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewSelection(ids ...string) *Selection {
	s := &Selection{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle 切换选中状态，返回切换后是否选中
func (s *Selection) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *Selection) Add(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

func (s *Selection) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}

func (s *Selection) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.ids)
}

// IDs 排序后的标识列表
func (s *Selection) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Partition 按集合中是否存在拆分已选标识
func Partition[T entity.Record](s *Selection, c *Collection[T]) (present, missing []string) {
	for _, id := range s.IDs() {
		if c.Has(id) {
			present = append(present, id)
		} else {
			missing = append(missing, id)
		}
	}
	return present, missing
}
