package handler

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/notify"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/query"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/dms/service"
	"github.com/timothylidede/vendai-demo-dash-sub000/internal/errorx"
)

// 业务错误码
const (
	CodeValidation = 10001
	CodeNotFound   = 10002
	CodeInternal   = 50001
)

// Handlers 仪表盘处理器集合
type Handlers struct {
	svc           *service.Services
	notifications *notify.Center
	logger        *zap.Logger
}

var registerTagName sync.Once

// NewHandlers 创建处理器集合
func NewHandlers(svc *service.Services, center *notify.Center, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	registerTagName.Do(useJSONFieldNames)
	return &Handlers{svc: svc, notifications: center, logger: logger}
}

// useJSONFieldNames 校验错误里使用 json 字段名
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// === 响应辅助函数 ===

type Response struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    interface{}   `json:"data,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// ErrorDetail 字段级错误
type ErrorDetail struct {
	Path string `json:"path"`
	Info string `json:"info"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Error(c *gin.Context, status, code int, message string, details ...ErrorDetail) {
	c.JSON(status, Response{
		Code:    code,
		Message: message,
		Details: details,
	})
}

func BadRequest(c *gin.Context, message string, details ...ErrorDetail) {
	Error(c, http.StatusBadRequest, CodeValidation, message, details...)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeInternal, message)
}

// BadRequestWithValidation 绑定失败，带字段详情
func BadRequestWithValidation(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]ErrorDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ErrorDetail{
				Path: fieldErr.Field(),
				Info: validationMessage(fieldErr),
			})
		}
		BadRequest(c, "Validation failed", details...)
		return
	}
	BadRequest(c, "invalid request body: "+err.Error())
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "email":
		return fieldErr.Field() + " must be a valid email address"
	case "min":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "gt":
		return fieldErr.Field() + " must be greater than " + fieldErr.Param()
	case "gte":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	case "oneof":
		return fieldErr.Field() + " must be one of " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}

// fail 按错误类别映射状态码；其余错误记录日志并返回 500
func (h *Handlers) fail(c *gin.Context, err error) {
	var ve *errorx.ValidationError
	var nf *errorx.NotFoundError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Error(), ErrorDetail{Path: ve.Field, Info: ve.Message})
	case errors.As(err, &nf):
		NotFound(c, nf.Error())
	case errors.Is(err, context.Canceled):
		c.Status(499)
	default:
		_ = c.Error(err)
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		InternalError(c, "internal error")
	}
}

// MaxPageSize 单页上限
const MaxPageSize = 100

// reserved 不作为过滤字段的查询参数
var reserved = map[string]bool{
	"q": true, "sort": true, "order": true, "page": true, "size": true, "format": true,
}

// parseQuery ?q=&sort=&order=&page=&size=&<field>=<value>
func parseQuery(c *gin.Context) (query.Query, error) {
	values := c.Request.URL.Query()
	q := query.Query{
		Search:  strings.TrimSpace(values.Get("q")),
		SortKey: values.Get("sort"),
		SortDir: query.Direction(strings.ToLower(values.Get("order"))),
		Filters: map[string]string{},
	}
	var err error
	if q.Page, err = intParam(values.Get("page"), "page"); err != nil {
		return q, err
	}
	if q.PageSize, err = intParam(values.Get("size"), "size"); err != nil {
		return q, err
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	for key, vs := range values {
		if reserved[key] || len(vs) == 0 {
			continue
		}
		q.Filters[key] = vs[0]
	}
	return q, nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errorx.Invalid(name, "%s must be an integer", name)
	}
	return n, nil
}
