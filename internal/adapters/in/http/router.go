package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// BoardServer streams delivery board events of one warehouse over a
// websocket.
type BoardServer interface {
	ServeWarehouse(w http.ResponseWriter, r *http.Request, warehouseID kernel.UUID) error
}

type RouterConfig struct {
	Server       *Server
	Resolve      ActorResolver
	Board        BoardServer
	Logger       *slog.Logger
	AllowOrigins []string
	Debug        bool
}

// NewRouter wires the API, its middleware, the swagger UI and the delivery
// board websocket into one echo instance.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = registerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Logger.SetLevel(log.INFO)
	if cfg.Debug {
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(requestLogger(cfg.Logger))
	e.Use(Authenticate(cfg.Resolve, publicPaths))
	e.Use(RequestValidator(doc))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/ws/warehouses/:id/deliveries", boardHandler(cfg.Resolve, cfg.Board))

	servers.RegisterHandlers(e, cfg.Server)
	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request failed", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	})
}

// boardHandler subscribes a signed-in employee to a warehouse's delivery
// board. Browsers cannot set headers on websockets, so the token travels in
// the query string.
func boardHandler(resolve ActorResolver, board BoardServer) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := ctx.QueryParam("token")
		if token == "" {
			return errMissingToken
		}
		actor, err := resolve(token)
		if err != nil {
			return errBadToken
		}

		warehouseID, err := kernel.UUIDFromString(ctx.Param("id"))
		if err != nil {
			return fail(ctx, err)
		}
		if !actor.CanAccess(warehouseID) {
			return echo.NewHTTPError(http.StatusForbidden, "the board of another warehouse is not available")
		}

		if err = board.ServeWarehouse(ctx.Response(), ctx.Request(), warehouseID); err != nil {
			ctx.Logger().Warnf("delivery board subscription failed: %v", err)
		}
		return nil
	}
}

type apiDoc string

func (d apiDoc) ReadDoc() string {
	return string(d)
}

var (
	registerOnce sync.Once
	registerErr  error
)

// registerDoc publishes the document for the swagger UI. swag keeps one
// global registry and panics on a second registration.
func registerDoc(doc *openapi3.T) error {
	registerOnce.Do(func() {
		raw, err := json.Marshal(doc)
		if err != nil {
			registerErr = fmt.Errorf("marshal openapi document: %w", err)
			return
		}
		swag.Register(swag.Name, apiDoc(raw))
	})
	return registerErr
}
