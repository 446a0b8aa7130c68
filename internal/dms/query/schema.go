// Package query implements the list pipeline shared by every dashboard view:
// free-text search, equality filters, typed sorting, pagination and status counts.
//
// Apply never mutates its input and never fails; Validate is the boundary
// where loosely typed request values are checked against the schema.
package query

import (
	"sort"
	"time"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

// Kind 字段类型，决定排序比较方式
type Kind int

const (
	KindText   Kind = iota // 区分大小写的字典序
	KindNumber             // 金额/数量字符串，去掉非数字字符后按数值比较
	KindDate               // 日历日期
	KindEnum               // 封闭取值集合，按字典序比较
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindEnum:
		return "enum"
	default:
		return "text"
	}
}

// Direction 排序方向
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// All 过滤器哨兵值，表示不约束
const All = "all"

// DefaultPageSize 未指定分页大小时的默认值
const DefaultPageSize = 20

// Field 描述实体上的一个字段
type Field[T any] struct {
	Name       string
	Kind       Kind
	Value      func(T) string
	Values     []string
	Searchable bool
	Filterable bool
	Sortable   bool
}

func (f Field[T]) allows(v string) bool {
	if len(f.Values) == 0 {
		return true
	}
	for _, allowed := range f.Values {
		if allowed == v {
			return true
		}
	}
	return false
}

// Schema 一个实体类型的字段集合
type Schema[T any] struct {
	entity string
	fields []Field[T]
	index  map[string]int
	status string
}

// NewSchema 按字段声明顺序创建 Schema，字段顺序同时决定导出列顺序
func NewSchema[T any](entity string, fields ...Field[T]) *Schema[T] {
	s := &Schema[T]{
		entity: entity,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s
}

// WithStatus 指定用于汇总计数的状态字段
func (s *Schema[T]) WithStatus(field string) *Schema[T] {
	s.status = field
	return s
}

func (s *Schema[T]) Entity() string { return s.entity }

func (s *Schema[T]) StatusField() string { return s.status }

func (s *Schema[T]) Fields() []Field[T] { return s.fields }

func (s *Schema[T]) Field(name string) (Field[T], bool) {
	i, ok := s.index[name]
	if !ok {
		return Field[T]{}, false
	}
	return s.fields[i], true
}

// FilterNames 可过滤字段名
func (s *Schema[T]) FilterNames() []string {
	var names []string
	for _, f := range s.fields {
		if f.Filterable {
			names = append(names, f.Name)
		}
	}
	return names
}

// Header 导出表头
func (s *Schema[T]) Header() []string {
	header := make([]string, len(s.fields))
	for i, f := range s.fields {
		header[i] = f.Name
	}
	return header
}

// Row 按字段顺序取出一条记录的所有值
func (s *Schema[T]) Row(item T) []string {
	row := make([]string, len(s.fields))
	for i, f := range s.fields {
		row[i] = f.Value(item)
	}
	return row
}

// Validate 在查询边界上校验并规范化查询参数
func (s *Schema[T]) Validate(q Query) (Query, error) {
	filters := make(map[string]string, len(q.Filters))
	names := make([]string, 0, len(q.Filters))
	for name := range q.Filters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := q.Filters[name]
		f, ok := s.Field(name)
		if !ok || !f.Filterable {
			return q, errorx.Invalid(name, "unknown filter for %s", s.entity)
		}
		if value == "" || value == All {
			continue
		}
		if !f.allows(value) {
			return q, errorx.Invalid(name, "unsupported value %q", value)
		}
		filters[name] = value
	}
	q.Filters = filters

	if q.SortKey != "" {
		f, ok := s.Field(q.SortKey)
		if !ok || !f.Sortable {
			return q, errorx.Invalid("sort", "cannot sort %s by %q", s.entity, q.SortKey)
		}
	}
	switch q.SortDir {
	case "":
		q.SortDir = Asc
	case Asc, Desc:
	default:
		return q, errorx.Invalid("order", "direction must be asc or desc, got %q", q.SortDir)
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	return q, nil
}

// parseDate 日期字段支持的格式，无法解析时返回零值
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04",
	"Jan 2, 2006",
	"2 Jan 2006",
	"02/01/2006",
}

// ParseDate 解析展示用日期字符串
func ParseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
