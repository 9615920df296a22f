package controllers

import (
	"context"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// Operation 名称，供 selector 与日志中间件匹配。
const (
	OperationListHome     = "/tube.v1.VideoQuery/ListHome"
	OperationSearch       = "/tube.v1.VideoQuery/Search"
	OperationGetVideo     = "/tube.v1.VideoQuery/GetVideo"
	OperationListByOwner  = "/tube.v1.VideoQuery/ListByOwner"
	OperationCreateVideo  = "/tube.v1.VideoLifecycle/CreateVideo"
	OperationEditVideo    = "/tube.v1.VideoLifecycle/EditVideo"
	OperationDeleteVideo  = "/tube.v1.VideoLifecycle/DeleteVideo"
	OperationRegisterView = "/tube.v1.VideoLifecycle/RegisterView"
	OperationAddComment   = "/tube.v1.VideoLifecycle/AddComment"
)

// RouteRegistrar 由各 Handler 实现，在 HTTP Server 上挂载路由。
type RouteRegistrar interface {
	RegisterRoutes(r *khttp.Router)
}

// invoke 让业务调用穿过 Server 配置的中间件链，并按 status 输出结果。
func invoke(ctx khttp.Context, operation string, status int, in any, call func(context.Context, any) (any, error)) error {
	khttp.SetOperation(ctx, operation)
	h := ctx.Middleware(call)
	out, err := h(ctx, in)
	if err != nil {
		return err
	}
	return ctx.Result(status, out)
}
