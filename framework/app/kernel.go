package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/km-arc/go-injector/framework/config"
	"github.com/km-arc/go-injector/framework/container"
	"github.com/km-arc/go-injector/framework/inspect"
	"github.com/km-arc/go-injector/framework/providers"
)

const shutdownTimeout = 5 * time.Second

// Application is the host kernel: one container, the providers registered
// against it, and an optional inspection endpoint.
//
// The container is embedded so hosts call app.Register, app.Get and friends
// directly. It is itself registered as "container".
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework providers.
// Nothing is loaded until Boot or the first Get.
func New(envFiles ...string) *Application {
	c := container.New()
	c.Register(c, "container")

	app := &Application{
		Container: c,
		Providers: container.NewProviderRegistry(c),
	}

	for _, p := range []container.ServiceProvider{
		&providers.ConfigServiceProvider{EnvFiles: envFiles},
		&providers.LoggingServiceProvider{},
		&providers.InspectServiceProvider{},
	} {
		if err := app.Providers.Register(p); err != nil {
			panic(fmt.Sprintf("app: registering %T: %v", p, err))
		}
	}
	return app
}

// RegisterProvider adds a ServiceProvider to the application.
func (a *Application) RegisterProvider(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers, then hands the resolved
// "logger" to the container so registration and construction are traced.
func (a *Application) Boot() error {
	if err := a.Providers.Boot(); err != nil {
		return err
	}
	log, err := a.Logger()
	if err != nil {
		return err
	}
	a.SetLogger(log.Named("container"))
	return nil
}

// Config resolves *config.Config from the container.
func (a *Application) Config() (*config.Config, error) {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Logger resolves *zap.Logger from the container.
func (a *Application) Logger() (*zap.Logger, error) {
	return container.Resolve[*zap.Logger](a.Container, "logger")
}

// Inspector resolves the inspection endpoint from the container.
func (a *Application) Inspector() (*inspect.Inspector, error) {
	return container.Resolve[*inspect.Inspector](a.Container, "inspector")
}

// Run boots the application and, when INSPECT_ENABLED is set, serves the
// inspector on INSPECT_ADDR. It blocks until ctx is done, then shuts the
// server down gracefully.
func (a *Application) Run(ctx context.Context) error {
	if err := a.Boot(); err != nil {
		return fmt.Errorf("app: boot: %w", err)
	}
	cfg, err := a.Config()
	if err != nil {
		return err
	}
	log, err := a.Logger()
	if err != nil {
		return err
	}

	if !cfg.Inspect.Enabled {
		log.Info("inspector disabled")
		<-ctx.Done()
		return nil
	}

	in, err := a.Inspector()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Inspect.Addr)
	if err != nil {
		return fmt.Errorf("app: listen %s: %w", cfg.Inspect.Addr, err)
	}

	srv := &http.Server{
		Handler:           in.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	log.Info("inspector listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("app: inspector: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("starting graceful shutdown", zap.Duration("timeout", shutdownTimeout))
	if err := srv.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	log.Info("graceful shutdown complete")
	return nil
}
