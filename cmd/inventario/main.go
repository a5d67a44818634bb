package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/invenkit/inventario/config"
	"github.com/invenkit/inventario/internal/api"
	"github.com/invenkit/inventario/internal/app"
	"github.com/invenkit/inventario/internal/ledger"
	"github.com/invenkit/inventario/internal/webserver"
)

var initdb = flag.Bool("initdb", false, "drop and recreate the database schema, then exit")

func main() {
	flag.Parse()

	cfg := config.LoadConfig()

	application := app.NewApplication(cfg)
	application.Init()
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("database schema recreated")
		return
	}

	service := ledger.NewService(application.DB(), cfg.Database.QueryTimeout)

	webserver.Init(cfg)
	api.RegisterRoutes(service)

	go func() {
		if err := webserver.Listen(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.S().Errorf("http server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.S().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webserver.Shutdown(ctx); err != nil {
		zap.S().Errorf("http server shutdown: %v", err)
	}
}
