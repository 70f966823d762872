package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/janisto/profile-pipeline/internal/http/health"
	profilehttp "github.com/janisto/profile-pipeline/internal/http/v1/profile"
	"github.com/janisto/profile-pipeline/internal/http/v1/routes"
	"github.com/janisto/profile-pipeline/internal/platform/config"
	applog "github.com/janisto/profile-pipeline/internal/platform/logging"
	appmiddleware "github.com/janisto/profile-pipeline/internal/platform/middleware"
	"github.com/janisto/profile-pipeline/internal/platform/respond"
	profilesvc "github.com/janisto/profile-pipeline/internal/service/profile"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const docsPath = "/api-docs"

func main() {
	defer func() { _ = applog.Sync() }()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	if err := run(); err != nil {
		applog.LogError(context.Background(), "server failed", err)
		_ = applog.Sync()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store := profilesvc.NewFileStore(cfg.ProfilesDir)
	svc := profilesvc.NewService(store)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, svc),
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr), zap.String("profilesDir", store.Root()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		return err
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	applog.LogInfo(context.Background(), "server exited")
	return nil
}

// newRouter builds the HTTP handler: middleware stack, health check and the
// v1 huma API.
func newRouter(cfg config.Config, svc profilehttp.Service) http.Handler {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(docsPath),
		appmiddleware.CORS(),
		appmiddleware.Vary(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For; only deploy behind a trusted proxy.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(cfg.RequestBodyLimit),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)

	humaCfg := huma.DefaultConfig("Profile Pipeline API", Version)
	humaCfg.DocsPath = docsPath
	api := humachi.New(router, humaCfg)
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, advertiseCBOR)
	routes.Register(api, svc)

	return router
}

// advertiseCBOR lists application/cbor next to every JSON body in the OpenAPI
// document, since huma negotiates both formats.
func advertiseCBOR(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
