package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/edumarques81/stellar-mediaadapter/internal/config"
	"github.com/edumarques81/stellar-mediaadapter/internal/domain/player"
	"github.com/edumarques81/stellar-mediaadapter/internal/transport/socketio"
	"github.com/edumarques81/stellar-mediaadapter/internal/version"
)

// socketHandler is the Socket.io endpoint as seen by the HTTP mux.
type socketHandler interface {
	http.Handler
	Stats() socketio.Stats
}

// healthResponse is the /health payload.
type healthResponse struct {
	Status  string         `json:"status"`
	Backend string         `json:"backend"`
	Clients socketio.Stats `json:"clients"`
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		port   string
		origin string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the player over Socket.io and HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if port != "" {
				cfg.Server.Port = port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, origin, opts)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "HTTP server port (overrides server.port from config, default 3001)")
	cmd.Flags().StringVar(&origin, "origin", "", "Allowed CORS origin (default any)")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, origin string, opts *rootOptions) error {
	info := version.GetInfo()
	log.Info().Msg("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Info().Msgf("  %s", info.String())
	log.Info().Msg("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Info().
		Str("port", cfg.Server.Port).
		Str("backend", cfg.Backend).
		Str("variant", cfg.Variant).
		Int("max_external_clients", cfg.Server.MaxExternalClients).
		Msg("Configuration")

	b, err := newBackend(cfg, opts.out)
	if err != nil {
		return err
	}
	defer b.Close()

	playerService := player.NewService(b.player)

	socketServer, err := socketio.NewServer(playerService, cfg.Server.MaxExternalClients)
	if err != nil {
		return err
	}
	defer socketServer.Close()

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      corsMiddleware(origin, newMux(socketServer, playerService, b.Ping)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}
	}()

	log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Info().Msg("Server stopped")
	return nil
}

// newMux wires the HTTP routes. ping reports backend connectivity for /health.
func newMux(socketServer socketHandler, playerService *player.Service, ping func() error) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("/socket.io/", socketServer)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", Backend: "connected", Clients: socketServer.Stats()}
		if err := ping(); err != nil {
			log.Debug().Err(err).Msg("Backend ping failed")
			resp.Status = "error"
			resp.Backend = "disconnected"
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(resp)
			return
		}
		writeJSON(w, resp)
	})

	mux.HandleFunc("/api/v1/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, version.GetInfo())
	})

	mux.HandleFunc("/api/v1/formats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, playerService.Formats())
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}
