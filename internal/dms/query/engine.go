package query

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Query 列表查询条件
type Query struct {
	Search   string            `json:"search"`
	Filters  map[string]string `json:"filters"`
	SortKey  string            `json:"sort"`
	SortDir  Direction         `json:"order"`
	Page     int               `json:"page"`
	PageSize int               `json:"size"`
}

// Result 过滤、排序、分页之后的视图
type Result[T any] struct {
	Items        []T `json:"items"`
	TotalMatched int `json:"total"`
	TotalPages   int `json:"total_pages"`
	Page         int `json:"page"`
	PageSize     int `json:"size"`
}

// Run 校验查询后执行
func (s *Schema[T]) Run(items []T, q Query) (Result[T], error) {
	q, err := s.Validate(q)
	if err != nil {
		return Result[T]{}, err
	}
	return s.Apply(items, q), nil
}

// Apply 搜索 → 过滤 → 排序 → 分页。不修改 items，不返回错误。
// 未经 Validate 的查询里，未知字段的过滤条件不匹配任何记录。
func (s *Schema[T]) Apply(items []T, q Query) Result[T] {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}

	matched := s.Match(items, q.Search, q.Filters)
	s.SortInPlace(matched, q.SortKey, q.SortDir)
	page, pages := Paginate(matched, q.Page, q.PageSize)

	return Result[T]{
		Items:        page,
		TotalMatched: len(matched),
		TotalPages:   pages,
		Page:         q.Page,
		PageSize:     q.PageSize,
	}
}

// Match 返回同时满足搜索词和全部过滤条件的记录（新切片，保持原顺序）
func (s *Schema[T]) Match(items []T, search string, filters map[string]string) []T {
	fold := cases.Fold()
	term := fold.String(search)

	type predicate struct {
		value func(T) string
		want  string
	}
	var preds []predicate
	for name, want := range filters {
		if want == "" || want == All {
			continue
		}
		f, ok := s.Field(name)
		if !ok {
			// 未知字段取不到值，不会与任何记录相等
			return []T{}
		}
		preds = append(preds, predicate{value: f.Value, want: want})
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !s.matchesSearch(fold, item, term) {
			continue
		}
		ok := true
		for _, p := range preds {
			if p.value(item) != p.want {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

func (s *Schema[T]) matchesSearch(fold cases.Caser, item T, term string) bool {
	if term == "" {
		return true
	}
	for _, f := range s.fields {
		if !f.Searchable {
			continue
		}
		if strings.Contains(fold.String(f.Value(item)), term) {
			return true
		}
	}
	return false
}

// SortInPlace 按字段类型选择比较器做稳定排序；key 为空或未知时保持原顺序
func (s *Schema[T]) SortInPlace(items []T, key string, dir Direction) {
	f, ok := s.Field(key)
	if !ok {
		return
	}
	sign := 1
	if dir == Desc {
		sign = -1
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return sign * Compare(f.Kind, f.Value(a), f.Value(b))
	})
}

// Compare 按字段类型比较两个值
func Compare(kind Kind, a, b string) int {
	switch kind {
	case KindNumber:
		return cmp.Compare(ParseAmount(a), ParseAmount(b))
	case KindDate:
		return ParseDate(a).Compare(ParseDate(b))
	default:
		return strings.Compare(a, b)
	}
}

// Paginate 截取 [(page-1)*size, page*size)，越界返回空切片
func Paginate[T any](items []T, page, size int) ([]T, int) {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	pages := len(items) / size
	if len(items)%size > 0 {
		pages++
	}
	// page ≤ pages 时 (page-1)*size < len(items)，乘法不会溢出
	if page > pages {
		return []T{}, pages
	}
	start := (page - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], pages
}

// Counts 在未过滤的完整集合上按字段值计数；枚举字段的每个取值都会出现
func (s *Schema[T]) Counts(items []T, field string) map[string]int {
	f, ok := s.Field(field)
	if !ok {
		return map[string]int{}
	}
	counts := make(map[string]int, len(f.Values))
	for _, v := range f.Values {
		counts[v] = 0
	}
	for _, item := range items {
		counts[f.Value(item)]++
	}
	return counts
}

// StatusCounts 状态字段计数，未配置状态字段时返回空
func (s *Schema[T]) StatusCounts(items []T) map[string]int {
	if s.status == "" {
		return map[string]int{}
	}
	return s.Counts(items, s.status)
}
