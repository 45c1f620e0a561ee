package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/mpetrenko/content-portal/config"
	"github.com/mpetrenko/content-portal/internal/db"
	"github.com/mpetrenko/content-portal/internal/portal"
	"github.com/mpetrenko/content-portal/internal/rest"
	"github.com/mpetrenko/content-portal/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config config.Config
}

func New(cfg config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	dbConnect.AddQueryHook(db.NewQueryHook(logger))

	database := db.New(dbConnect)
	manager := portal.NewManager(database, logger)

	handler := rest.NewPostHandler(manager, logger)
	e := handler.RegisterRoutes()

	rpcServer := rpc.New(logger, manager)
	e.Any("/rpc", echo.WrapHandler(rpcServer))

	return &App{
		DB:     database,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
