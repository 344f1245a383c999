package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/spaces-server/internal/config"
	"github.com/carson-networks/spaces-server/internal/handlers/v1/budget"
	"github.com/carson-networks/spaces-server/internal/handlers/v1/recurring"
	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/handlers/v1/space"
	"github.com/carson-networks/spaces-server/internal/handlers/v1/status"
	"github.com/carson-networks/spaces-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/spaces-server/internal/logging"
	"github.com/carson-networks/spaces-server/internal/operator"
	"github.com/carson-networks/spaces-server/internal/service"
)

const shutdownTimeout = 30 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Config   *config.Config
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Handler builds the full HTTP stack: huma operations, the health check, the
// JSON 404 fallback and the outer middleware.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	humaConfig := huma.DefaultConfig("Spaces API", "1.0.0")
	humaConfig.CreateHooks = nil
	api := humago.New(mux, humaConfig)
	api.UseMiddleware(logging.Middleware(r.Logger))

	space.NewCreateSpaceHandler(r.Service.Space).Register(api)
	space.NewGetSpaceHandler(r.Service.Space).Register(api)
	space.NewDeleteSpaceHandler(r.Service.Space).Register(api)

	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)
	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(api)

	budget.NewHandler(r.Service.Budget).Register(api)

	recurring.NewListRecurringHandler(r.Service.Recurring).Register(api)
	recurring.NewCreateRecurringHandler(r.Service.Recurring).Register(api)
	recurring.NewUpdateRecurringHandler(r.Service.Recurring).Register(api)
	recurring.NewDeleteRecurringHandler(r.Service.Recurring).Register(api)
	recurring.NewProcessRecurringHandler(r.Operator, r.Service.Recurring).Register(api)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/health", logging.LoggingWrapper("Health", r.Logger, statusHandler.Handler))
	mux.HandleFunc("/", response.NotFound)

	return recoverer(r.Logger, securityHeaders(r.Config.IsDevelopment(), requestID(withCORS(r.Config.FrontendURL, mux))))
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Config.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Config.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
