// Package socketio provides the Socket.io server for client communication.
package socketio

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/zishang520/socket.io/servers/socket/v3"
	"github.com/zishang520/socket.io/v3/pkg/types"

	"github.com/edumarques81/stellar-mediaadapter/internal/domain/media"
	"github.com/edumarques81/stellar-mediaadapter/internal/domain/player"
)

// PlayRequest is the payload of the "play" event.
type PlayRequest struct {
	AudioType string `json:"audioType"`
	FileName  string `json:"fileName"`
}

// PlayResult is the payload of the "pushPlay" reply.
type PlayResult struct {
	RequestID string `json:"requestId"`
	AudioType string `json:"audioType"`
	FileName  string `json:"fileName"`
	Played    bool   `json:"played"`
	Error     string `json:"error,omitempty"`
}

// Server handles Socket.io connections and events.
type Server struct {
	io            *socket.Server
	playerService *player.Service
	limiter       *ConnectionLimiter
	mu            sync.RWMutex
	clients       map[string]*socket.Socket
}

// NewServer creates a new Socket.io server.
func NewServer(playerService *player.Service, maxExternalClients int) (*Server, error) {
	if playerService == nil {
		return nil, errors.New("player service is required")
	}

	opts := socket.DefaultServerOptions()
	opts.SetPingTimeout(20 * time.Second)
	opts.SetPingInterval(25 * time.Second)
	opts.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	s := &Server{
		io:            socket.NewServer(nil, opts),
		playerService: playerService,
		limiter:       NewConnectionLimiter(maxExternalClients),
		clients:       make(map[string]*socket.Socket),
	}

	s.setupHandlers()

	return s, nil
}

// setupHandlers registers all Socket.io event handlers.
func (s *Server) setupHandlers() {
	s.io.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		clientID := string(client.Id())
		remoteAddr := client.Handshake().Address

		log.Info().Str("id", clientID).Str("addr", remoteAddr).Msg("Client connected")

		s.mu.Lock()
		s.clients[clientID] = client
		s.mu.Unlock()

		if _, evictedID := s.limiter.TryAdd(clientID, remoteAddr); evictedID != "" {
			s.evict(evictedID)
		}

		client.On("disconnect", func(args ...any) {
			reason := ""
			if len(args) > 0 {
				if r, ok := args[0].(string); ok {
					reason = r
				}
			}
			log.Info().Str("id", clientID).Str("reason", reason).Msg("Client disconnected")

			s.limiter.Remove(clientID)
			s.mu.Lock()
			delete(s.clients, clientID)
			s.mu.Unlock()
		})

		client.On("play", func(args ...any) {
			log.Debug().Str("id", clientID).Interface("data", args).Msg("play")

			req, ok := parsePlayRequest(args)
			if !ok {
				log.Warn().Str("id", clientID).Msg("play: malformed payload")
				return
			}
			client.Emit("pushPlay", s.handlePlay(req))
		})

		client.On("getFormats", func(args ...any) {
			log.Debug().Str("id", clientID).Msg("getFormats")
			client.Emit("pushFormats", s.playerService.Formats())
		})
	})
}

// handlePlay runs a play request through the checked service path.
func (s *Server) handlePlay(req PlayRequest) PlayResult {
	result := PlayResult{
		RequestID: uuid.NewString(),
		AudioType: req.AudioType,
		FileName:  req.FileName,
	}

	if err := s.playerService.Play(req.AudioType, req.FileName); err != nil {
		if !media.IsUnsupported(err) {
			log.Error().Err(err).Str("requestId", result.RequestID).Msg("Play failed")
		}
		result.Error = err.Error()
		return result
	}

	result.Played = true
	return result
}

// parsePlayRequest extracts a PlayRequest from event arguments.
// A missing fileName is accepted and passed through as empty.
func parsePlayRequest(args []any) (PlayRequest, bool) {
	if len(args) == 0 {
		return PlayRequest{}, false
	}
	m, ok := args[0].(map[string]interface{})
	if !ok {
		return PlayRequest{}, false
	}

	audioType, ok := m["audioType"].(string)
	if !ok {
		return PlayRequest{}, false
	}
	fileName, _ := m["fileName"].(string)

	return PlayRequest{AudioType: audioType, FileName: fileName}, true
}

// evict disconnects a client pushed out by the connection limiter.
func (s *Server) evict(clientID string) {
	s.mu.Lock()
	client, ok := s.clients[clientID]
	delete(s.clients, clientID)
	s.mu.Unlock()

	if !ok {
		return
	}

	log.Info().Str("id", clientID).Msg("Evicting oldest external client")
	client.Disconnect(true)
}

// Stats describes the connected clients.
type Stats struct {
	Clients  int `json:"clients"`
	External int `json:"external"`
}

// Stats returns the connected client counts.
func (s *Server) Stats() Stats {
	s.mu.RLock()
	clients := len(s.clients)
	s.mu.RUnlock()

	_, external := s.limiter.Count()
	return Stats{Clients: clients, External: external}
}

// ServeHTTP implements http.Handler for the Socket.io server.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.io.ServeHandler(nil).ServeHTTP(w, r)
}

// Close closes the Socket.io server.
func (s *Server) Close() error {
	s.io.Close(nil)
	return nil
}
