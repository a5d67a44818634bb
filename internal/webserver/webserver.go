// Package webserver wraps the echo instance shared by all route
// handlers: JSON serialization, CORS, panic recovery and request
// logging live here so handler packages only register routes.
package webserver

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/invenkit/inventario/config"
)

var server *WebServer

type WebServer struct {
	root      *echo.Echo
	appConfig *config.AppConfig
}

func Init(appConfig *config.AppConfig) {
	server = NewWebServer(appConfig)
}

func NewWebServer(appConfig *config.AppConfig) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = NewJSONSerializer()
	e.Use(middleware.Recover())
	// The service has always been called from browser frontends on other
	// origins; CORS stays wide open.
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	return &WebServer{root: e, appConfig: appConfig}
}

func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			zap.L().Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return nil
		}
	}
}

// Listen blocks serving HTTP until Shutdown or a listener error.
func Listen() error {
	addr := fmt.Sprintf("%s:%d", server.appConfig.Web.Host, server.appConfig.Web.Port)
	zap.S().Infof("http server listening on %s", addr)
	return server.root.Start(addr)
}

func Shutdown(ctx context.Context) error {
	return server.root.Shutdown(ctx)
}

// GET registers a route at the server root.
func GET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

// ApiGET registers a GET route under the /api prefix.
func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET("/api"+path, h)
}

// ApiPOST registers a POST route under the /api prefix.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST("/api"+path, h)
}
