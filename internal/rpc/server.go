package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/mpetrenko/content-portal/internal/portal"
)

func New(logger *slog.Logger, manager *portal.Manager) *zenrpc.Server {

	rpcService := NewContentService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("content", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "content-portal", nil))

	return rpcServer
}
