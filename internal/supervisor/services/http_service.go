// Logroute - Category-Routed Structured Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/logroute

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/logroute/internal/logging"
)

// HTTPServer matches the *http.Server lifecycle methods.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService wraps an HTTP server as a supervised service.
//
// Serve runs ListenAndServe in a goroutine and waits for either context
// cancellation or a server error. On cancellation it calls Shutdown with the
// configured timeout.
//
//	server := &http.Server{Addr: ":5080", Handler: router.Setup()}
//	svc := services.NewHTTPServerService(server, 10*time.Second).
//	    WithReadiness(handler.SetReady)
//	tree.AddAPIService(svc)
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	name            string
	setReady        func(bool)
}

// NewHTTPServerService creates a new HTTP server service wrapper.
// A non-positive shutdownTimeout selects 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
		setReady:        func(bool) {},
	}
}

// WithReadiness registers fn to be told when the server starts serving
// (true) and when it stops or begins shutting down (false).
func (h *HTTPServerService) WithReadiness(fn func(bool)) *HTTPServerService {
	if fn != nil {
		h.setReady = fn
	}
	return h
}

// Serve implements suture.Service.
//
// Returns nil if the server stops on its own, ctx.Err() after a graceful
// shutdown, and an error when the server fails. http.ErrServerClosed is not
// treated as a failure.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	h.setReady(true)
	defer h.setReady(false)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		h.setReady(false)
		logging.Info().Str("service", h.name).Dur("timeout", h.shutdownTimeout).Msg("Shutting down HTTP server")

		// The original context is already canceled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		return ctx.Err()
	}
}

// String implements fmt.Stringer. Suture uses it in event logs.
func (h *HTTPServerService) String() string {
	return h.name
}
