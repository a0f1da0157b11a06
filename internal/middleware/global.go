package middleware

import (
	"net/http"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/errs"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/server"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware that wraps every route, plus the
// error handler echo calls once a handler gives up.
//
// It holds the *server.Server so each middleware can read config (CORS
// origins, environment) when the router is built.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle around s.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS allows the configured browser origins to call the API.
//
// Only the verbs the Evento routes use are allowed, and X-Request-ID is
// accepted so a frontend can pass its own correlation id.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, RequestIDHeader},
	})
}

// RequestLogger writes one "API" line per request.
//
// The line is written through the request-scoped logger from
// EnhanceContext, so request_id, route and trace ids are already attached.
// Its level follows the status:
//   - 5xx -> error, with the handler error attached
//   - 4xx -> warn
//   - everything else -> info
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			status := responseStatus(v.Status, v.Error)

			levelForStatus(GetLogger(c), status, v.Error).
				Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// responseStatus returns the status the client will actually see.
//
// When a handler returns an error the logger runs before GlobalErrorHandler
// has written anything, so the recorded status is still 200. The error
// itself carries the real one.
// See https://github.com/labstack/echo/issues/2310
func responseStatus(recorded int, err error) int {
	if err == nil {
		return recorded
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code
	}

	return recorded
}

func levelForStatus(logger *zerolog.Logger, status int, err error) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return logger.Error().Err(err)
	case status >= http.StatusBadRequest:
		return logger.Warn()
	default:
		return logger.Info()
	}
}

// Recover turns a handler panic into a 500 instead of killing the process.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure sets the standard security headers (X-Frame-Options,
// X-Content-Type-Options, X-XSS-Protection).
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the last stop for every error a handler or
// middleware returns.
//
// The error is first normalised into an *errs.HTTPError:
//   - an *errs.HTTPError is used as is
//   - an echo 404 (unknown route) becomes a NOT_FOUND error
//   - other echo errors keep their status and message
//   - anything else goes through sqlerr, which maps postgres errors to 4xx
//     codes and everything unknown to a bare 500
//
// The original error is logged with the request logger; the client only
// sees the normalised body. HEAD requests get the status without a body.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	httpErr := toHTTPError(err)

	logger := GetLogger(c)
	event := logger.Warn()
	if httpErr.Status >= http.StatusInternalServerError {
		event = logger.Error().Stack()
	}
	event.
		Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Message)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, httpErr)
}

func toHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		if errors.As(sqlerr.HandleError(err), &httpErr) {
			return httpErr
		}
		return errs.NewInternalServerError()
	}

	if echoErr.Code == http.StatusNotFound {
		return errs.NewNotFoundError("Route not found", false, nil)
	}

	message, ok := echoErr.Message.(string)
	if !ok {
		message = http.StatusText(echoErr.Code)
	}

	return &errs.HTTPError{
		Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
		Message: message,
		Status:  echoErr.Code,
	}
}
