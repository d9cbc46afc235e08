package ez

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	resp "go-gin-wishlist/internal/transport/http/response"
)

type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

// 绑定方式
type Binder string

const (
	BindJSON    Binder = "json"     // 从 JSON 绑定
	BindQuery   Binder = "query"    // 从 URL ?a=b 绑定
	BindURI     Binder = "uri"      // 从路径参数绑定（/:id）
	BindURIJSON Binder = "uri+json" // 路径参数 + JSON；空 body 视为空补丁。uri 字段需标 json:"-"
	BindNone    Binder = "none"     // 不绑定
)

// 统一错误对象（配合 resp.Error(int, msg)）
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error   { return &AErr{Code: resp.CodeBadRequest, Msg: msg} }
func Unauthorized(msg string) error { return &AErr{Code: resp.CodeUnauthorized, Msg: msg} }
func Forbidden(msg string) error    { return &AErr{Code: resp.CodeForbidden, Msg: msg} }
func NotFound(msg string) error     { return &AErr{Code: resp.CodeNotFound, Msg: msg} }
func Internal(err error) error      { return &AErr{Code: resp.CodeServerError, Err: err} }

// 动作定义：I 入参，O 出参
type Action[I any, O any] struct {
	Method  string // GET | POST | PATCH | DELETE ...
	Path    string // 例："/auth/signup"、"/wishlists/:id"
	Binder  Binder
	Status  int // 成功状态码，默认 200；204 不写 body
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}

	h := func(c *gin.Context) {
		// 1) 绑定入参
		var in I
		if err := bind(c, a.Binder, &in); err != nil {
			Abort(c, BadRequest(bindMessage(err)))
			return
		}

		// 2) 执行
		out, err := a.Handler(c, &in)
		if err != nil {
			Abort(c, err)
			return
		}

		// 3) 成功响应直接返回资源本身
		if status == http.StatusNoContent {
			c.Status(status)
			return
		}
		c.JSON(status, out)
	}

	e.g.Handle(a.Method, a.Path, h)
}

func bind(c *gin.Context, b Binder, in any) error {
	switch b {
	case BindJSON:
		return c.ShouldBindJSON(in)
	case BindQuery:
		return c.ShouldBindQuery(in)
	case BindURI:
		return c.ShouldBindUri(in)
	case BindURIJSON:
		if err := c.ShouldBindUri(in); err != nil {
			return err
		}
		if c.Request.ContentLength == 0 {
			return nil
		}
		return c.ShouldBindJSON(in)
	default: // BindNone
		return nil
	}
}

// Abort 统一错误出口：AErr 按 Code 返回，其它一律 500，细节只进日志；请求超时返回 504
func Abort(c *gin.Context, err error) {
	var ae *AErr
	if !errors.As(err, &ae) {
		ae = &AErr{Code: resp.CodeServerError, Err: err}
	}
	if ae.Code >= http.StatusInternalServerError && errors.Is(err, context.DeadlineExceeded) {
		ae = &AErr{Code: resp.CodeTimeout, Err: ae.Err}
	}
	if ae.Err != nil {
		_ = c.Error(ae.Err)
	}
	msg := ae.Msg
	if ae.Code >= http.StatusInternalServerError {
		msg = "" // 不暴露内部错误
	}
	c.AbortWithStatusJSON(ae.Code, resp.Error(ae.Code, msg))
}
