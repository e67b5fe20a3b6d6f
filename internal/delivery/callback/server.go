// Package callback hosts the local listener the payment provider
// redirects the customer back to after a hosted checkout. It is the
// push half of settlement detection; status polling covers providers
// that never redirect.
package callback

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"

	"storefront/config"
)

const (
	shutdownTimeout = 10 * time.Second
	defaultPort     = 8910
)

// Result is one provider redirect: which payment returned and the
// status the provider put in the query string.
type Result struct {
	PaymentID int
	Status    string
}

type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Server is the echo listener for provider redirects.
type Server struct {
	cfg     *config.PaymentConfig
	logger  *slog.Logger
	server  *echo.Echo
	results chan Result
}

func NewServer(params ServerParams) (*Server, error) {
	paymentCfg := params.Config.Payment
	if paymentCfg == nil {
		paymentCfg = &config.PaymentConfig{CallbackPort: defaultPort}
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.Recover())

	server := &Server{
		cfg:     paymentCfg,
		logger:  params.Logger,
		server:  echoServer,
		results: make(chan Result, 1),
	}

	echoServer.GET("/payments/callback", server.handleCallback)

	params.Append(fx.Hook{
		OnStop: server.stop,
	})

	return server, nil
}

// Results delivers provider redirects as they arrive.
func (s *Server) Results() <-chan Result {
	return s.results
}

func (s *Server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("127.0.0.1", strconv.Itoa(s.cfg.CallbackPort))
	s.logger.Info("Starting payment callback listener", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve payment callbacks")
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down payment callback listener")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

func (s *Server) handleCallback(c echo.Context) error {
	paymentID, err := strconv.Atoi(c.QueryParam("payment_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payment_id")
	}

	result := Result{
		PaymentID: paymentID,
		Status:    c.QueryParam("status"),
	}

	select {
	case s.results <- result:
	default:
		// A second redirect for the same checkout; the first one
		// already won.
	}

	return c.HTML(http.StatusOK, "<html><body><p>Payment received. You can return to the store.</p></body></html>")
}
