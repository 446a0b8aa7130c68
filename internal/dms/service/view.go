package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/cache"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/entity"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/export"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/metrics"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/notify"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/store"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

// Notifier 变更成功或失败后发出通知
type Notifier interface {
	Post(typ notify.Type, message string) notify.Notification
}

type nopNotifier struct{}

func (nopNotifier) Post(typ notify.Type, message string) notify.Notification {
	return notify.Notification{Type: typ, Message: message}
}

// ListResult 列表结果附带未过滤集合上的状态计数
type ListResult[T any] struct {
	query.Result[T]
	Counts map[string]int `json:"counts"`
}

// statusSpec 实体的状态读写与迁移表
type statusSpec[T any] struct {
	get         func(T) string
	set         func(*T, string)
	transitions entity.Transitions
}

// View 一个列表视图：字段定义 + 集合 + 缓存
type View[T entity.Record] struct {
	name     string
	label    string
	schema   *query.Schema[T]
	coll     *store.Collection[T]
	status   *statusSpec[T]
	cache    cache.ViewCache
	notifier Notifier
	logger   *zap.Logger
	now      func() time.Time
	instance string
}

func newView[T entity.Record](name, label string, schema *query.Schema[T], coll *store.Collection[T], deps Deps) *View[T] {
	return &View[T]{
		name:     name,
		label:    label,
		schema:   schema,
		coll:     coll,
		cache:    deps.Cache,
		notifier: deps.Notifier,
		logger:   deps.Logger.With(zap.String("view", name)),
		now:      deps.Clock,
		instance: deps.Instance,
	}
}

func (v *View[T]) Name() string { return v.name }

func (v *View[T]) Schema() *query.Schema[T] { return v.schema }

func (v *View[T]) Collection() *store.Collection[T] { return v.coll }

// Now 视图使用的时钟
func (v *View[T]) Now() time.Time { return v.now() }

// listKey 缓存键包含日期，派生字段按天变化
type listKey struct {
	Query query.Query `json:"q"`
	Day   string      `json:"day"`
}

// List 校验查询后在当前快照上执行
func (v *View[T]) List(ctx context.Context, q query.Query) (*ListResult[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q, err := v.schema.Validate(q)
	if err != nil {
		return nil, err
	}

	items, version := v.coll.SnapshotVersion()
	key := cache.Key(v.instance, v.name, version, listKey{Query: q, Day: v.now().Format("2006-01-02")})

	var cached ListResult[T]
	hit, err := v.cache.Load(ctx, key, &cached)
	if err != nil {
		v.logger.Warn("load cached view", zap.Error(err))
	} else if hit {
		return &cached, nil
	}

	res := &ListResult[T]{
		Result: v.schema.Apply(items, q),
		Counts: v.schema.StatusCounts(items),
	}
	if err := v.cache.Store(ctx, key, res); err != nil {
		v.logger.Warn("store cached view", zap.Error(err))
	}
	return res, nil
}

// Tones 状态字段每个取值对应的徽标色调
func (v *View[T]) Tones() map[string]metrics.Tone {
	out := map[string]metrics.Tone{}
	f, ok := v.schema.Field(v.schema.StatusField())
	if !ok {
		return out
	}
	for _, value := range f.Values {
		out[value] = metrics.ToneOf(value)
	}
	return out
}

// Counts 未过滤集合上的状态计数
func (v *View[T]) Counts(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return v.schema.StatusCounts(v.coll.Snapshot()), nil
}

func (v *View[T]) Get(ctx context.Context, id string) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return v.coll.Get(id)
}

// Export 导出全部匹配记录，忽略分页
func (v *View[T]) Export(ctx context.Context, q query.Query) (export.Table, error) {
	if err := ctx.Err(); err != nil {
		return export.Table{}, err
	}
	q, err := v.schema.Validate(q)
	if err != nil {
		return export.Table{}, err
	}
	items := v.coll.Snapshot()
	q.Page = 1
	q.PageSize = max(len(items), 1)

	res := v.schema.Apply(items, q)
	rows := make([][]string, len(res.Items))
	for i, item := range res.Items {
		rows[i] = v.schema.Row(item)
	}
	v.logger.Info("export", zap.Int("rows", len(rows)))
	return export.Table{Name: v.name, Header: v.schema.Header(), Rows: rows}, nil
}

// UpdateStatus 按迁移表修改状态；状态不变时不报错也不增加版本号
func (v *View[T]) UpdateStatus(ctx context.Context, id, status string) (T, error) {
	item, changed, err := v.setStatus(ctx, id, status)
	if err != nil {
		if errorx.IsValidation(err) {
			v.logger.Info("status change rejected", zap.String("id", id), zap.String("status", status), zap.Error(err))
		} else {
			v.logger.Warn("status change failed", zap.String("id", id), zap.String("status", status), zap.Error(err))
		}
		v.notifier.Post(notify.TypeError, fmt.Sprintf("Could not update %s %s: %s", v.label, id, errorMessage(err)))
		return item, err
	}
	if changed {
		v.logger.Info("status updated", zap.String("id", id), zap.String("status", status))
		v.notifier.Post(notify.TypeSuccess, fmt.Sprintf("%s %s marked %s", title(v.label), id, status))
	}
	return item, nil
}

func (v *View[T]) setStatus(ctx context.Context, id, status string) (T, bool, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, false, err
	}
	if v.status == nil {
		return zero, false, errorx.Invalid("status", "%s status cannot be set directly", v.label)
	}
	if f, ok := v.schema.Field(v.schema.StatusField()); ok && !contains(f.Values, status) {
		return zero, false, errorx.Invalid("status", "unsupported %s status %q", v.label, status)
	}

	changed := false
	item, err := v.coll.Update(id, func(it *T) error {
		from := v.status.get(*it)
		if from == status {
			return store.ErrUnchanged
		}
		if err := v.status.transitions.Check(from, status); err != nil {
			return err
		}
		v.status.set(it, status)
		changed = true
		return nil
	})
	if err != nil {
		return item, false, fmt.Errorf("update %s status: %w", v.label, err)
	}
	return item, changed, nil
}

// today 当前日期，YYYY-MM-DD
func (v *View[T]) today() string {
	return v.now().Format("2006-01-02")
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// title 通知里的实体名，如 "sales rep" → "Sales Rep"；Caser 有状态，每次新建
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// errorMessage 去掉包装前缀，只保留面向用户的部分
func errorMessage(err error) string {
	var ve *errorx.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	var nf *errorx.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return err.Error()
}
