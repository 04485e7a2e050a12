// Package server manages the game process lifecycle: it runs the
// interactive session as a managed service and guarantees the final
// profile save on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Service is a long-running component. Start blocks until the service
// finishes or fails; Stop asks it to wind down.
type Service interface {
	Start() error
	Stop()
}

// FuncService adapts a start/stop function pair into the Service
// interface. The interactive session is mounted this way.
type FuncService struct {
	StartFn func() error
	StopFn  func()
}

// Start calls the underlying start function.
func (f *FuncService) Start() error { return f.StartFn() }

// Stop calls the underlying stop function.
func (f *FuncService) Stop() { f.StopFn() }

// Lifecycle starts services in registration order, then blocks until
// every service finishes, one fails, a termination signal arrives, or
// the context is cancelled. On the way out services are stopped in
// reverse order, which is what flushes the final save.
type Lifecycle struct {
	logger   *zap.Logger
	services []namedService
	mu       sync.Mutex
}

type namedService struct {
	name    string
	service Service
}

// NewLifecycle creates a Lifecycle manager.
//
// Precondition: logger must be non-nil.
func NewLifecycle(logger *zap.Logger) *Lifecycle {
	return &Lifecycle{logger: logger}
}

// Add registers a named service.
//
// Precondition: name must be non-empty; svc must be non-nil.
func (l *Lifecycle) Add(name string, svc Service) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.services = append(l.services, namedService{name: name, service: svc})
}

// Run starts every service and blocks. It returns the first service
// error, or nil when the services finished cleanly or a signal ended
// the session.
//
// Postcondition: every service's Stop has run when this returns.
func (l *Lifecycle) Run(ctx context.Context) error {
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, len(l.services))
	var wg sync.WaitGroup
	for _, ns := range l.services {
		wg.Add(1)
		go func(ns namedService) {
			defer wg.Done()
			l.logger.Info("starting service", zap.String("service", ns.name))
			svcStart := time.Now()
			if err := ns.service.Start(); err != nil {
				l.logger.Error("service failed",
					zap.String("service", ns.name),
					zap.Error(err),
					zap.Duration("uptime", time.Since(svcStart)),
				)
				errCh <- fmt.Errorf("service %s: %w", ns.name, err)
			}
		}(ns)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var runErr error
	select {
	case <-done:
		// normal exit from the game menu
		select {
		case runErr = <-errCh:
		default:
		}
	case sig := <-sigCh:
		l.logger.Info("received signal, shutting down",
			zap.String("signal", sig.String()),
		)
	case runErr = <-errCh:
	case <-ctx.Done():
		l.logger.Info("context cancelled, shutting down")
	}

	l.shutdown()

	l.logger.Info("shutdown complete",
		zap.Duration("total_uptime", time.Since(start)),
	)
	return runErr
}

// shutdown stops services in reverse registration order.
func (l *Lifecycle) shutdown() {
	for i := len(l.services) - 1; i >= 0; i-- {
		ns := l.services[i]
		l.logger.Info("stopping service", zap.String("service", ns.name))
		ns.service.Stop()
	}
}
