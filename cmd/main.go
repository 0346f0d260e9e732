package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/International-Combat-Archery-Alliance/member-signup/api"
	"github.com/International-Combat-Archery-Alliance/member-signup/cognito"
	"github.com/International-Combat-Archery-Alliance/member-signup/config"
	"github.com/International-Combat-Archery-Alliance/member-signup/dynamo"
	"github.com/International-Combat-Archery-Alliance/member-signup/signup"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	cip "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/github.com/aws/aws-sdk-go-v2/otelaws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "member-signup: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is fine, everything can come from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Env)

	shutdownTracing, err := setupTracing(ctx, cfg.OtlpEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("failed to shut down tracing", slog.String("error", err.Error()))
		}
	}()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to get aws config: %w", err)
	}
	otelaws.AppendMiddlewares(&awsCfg.APIOptions)

	clientSecret, err := getCognitoClientSecret(ctx, ssm.NewFromConfig(awsCfg), cfg.CognitoClientSecretParam)
	if err != nil {
		return err
	}
	provider := cognito.NewProvider(cip.NewFromConfig(awsCfg), cfg.CognitoClientID, clientSecret)

	store := createSessionStore(cfg, awsCfg)

	emailSender := createEmailSender(logger, awsCfg, cfg.Env)

	settings := signup.DefaultSettings()
	settings.PasswordPolicy.Length = cfg.PasswordLength
	settings.PhoneRegion = cfg.PhoneRegion
	settings.SessionTTL = cfg.SessionTTL
	settings.InFlightLease = cfg.InFlightLease
	settings.Logger = logger

	controller := signup.NewController(provider, store, settings, newHooks(logger, emailSender, cfg.EmailFrom))

	signupAPI := api.NewAPI(controller, logger, apiEnvironment(cfg.Env), cfg.CorsAllowedOrigins)
	h, err := signupAPI.Handler()
	if err != nil {
		return err
	}

	s := &http.Server{
		Handler:           h,
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", slog.String("addr", s.Addr), slog.String("store", string(cfg.SessionStore)))
		serveErr <- s.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.Shutdown(shutdownCtx)
}

func newLogger(env config.Environment) *slog.Logger {
	if env == config.LOCAL {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func apiEnvironment(env config.Environment) api.Environment {
	if env == config.PROD {
		return api.PROD
	}
	return api.LOCAL
}

func createSessionStore(cfg config.Config, awsCfg aws.Config) signup.SessionStore {
	if cfg.SessionStore == config.MEMORY_STORE {
		return signup.NewMemoryStore()
	}

	dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
		}
	})

	return dynamo.NewDB(dynamoClient, cfg.DynamoTable)
}
