//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml openapi.yaml
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

// SignupFlow is the sign up state machine the handlers drive.
type SignupFlow interface {
	StartSession(ctx context.Context) (signup.Outcome, error)
	GetSession(ctx context.Context, id uuid.UUID) (signup.Session, error)
	SubmitRegistration(ctx context.Context, id uuid.UUID, fields signup.Fields) (signup.Outcome, error)
	ConfirmCode(ctx context.Context, id uuid.UUID, code string) (signup.Outcome, error)
	ResendCode(ctx context.Context, id uuid.UUID) (signup.Outcome, error)
	Cancel(ctx context.Context, id uuid.UUID) (signup.Outcome, error)
}

var _ SignupFlow = (*signup.Controller)(nil)

var _ StrictServerInterface = (*API)(nil)

type API struct {
	flow           SignupFlow
	logger         *slog.Logger
	env            Environment
	allowedOrigins []string
	registry       *prometheus.Registry
	metrics        *metrics
}

func NewAPI(flow SignupFlow, logger *slog.Logger, env Environment, allowedOrigins []string) *API {
	registry := prometheus.NewRegistry()

	return &API{
		flow:           flow,
		logger:         logger,
		env:            env,
		allowedOrigins: allowedOrigins,
		registry:       registry,
		metrics:        newMetrics(registry),
	}
}

// Handler builds the full HTTP handler. Sign up routes are validated against
// the OpenAPI document, /metrics and /healthz are not.
func (a *API) Handler() (http.Handler, error) {
	swagger, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	swagger.Servers = nil

	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{a.operationLoggerMiddleware()}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})

	signupMux := http.NewServeMux()
	HandlerWithOptions(strictHandler, StdHTTPServerOptions{
		BaseRouter:       signupMux,
		ErrorHandlerFunc: a.requestErrorHandler,
	})

	root := http.NewServeMux()
	root.Handle("/signup/", a.openapiValidateMiddleware(swagger)(signupMux))
	root.Handle("GET /metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry}))
	root.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := useMiddlewares(root,
		a.loggingMiddleware(),
		a.requestIdMiddleware(),
		a.corsMiddleware(),
	)

	return otelhttp.NewHandler(h, "member-signup"), nil
}
