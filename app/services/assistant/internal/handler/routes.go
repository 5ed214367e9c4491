// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"ScentyAI/app/services/assistant/internal/handler/assistant"
	"ScentyAI/app/services/assistant/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/v1/assistant/chat",
				Handler: assistant.ChatHandler(serverCtx),
			},
		},
	)
}
