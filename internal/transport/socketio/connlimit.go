package socketio

import (
	"net"
	"strings"
	"sync"
)

// ConnectionLimiter limits the number of concurrent external (non-loopback) connections.
// Loopback connections are always allowed without limit.
// When a new external connection exceeds the limit, the oldest external connection is evicted.
type ConnectionLimiter struct {
	mu          sync.Mutex
	maxExternal int
	// external client IDs, oldest first
	externalClients []string
	// clientID -> remote host
	connections map[string]string
}

// NewConnectionLimiter creates a limiter that allows up to maxExternal concurrent
// external connections.
func NewConnectionLimiter(maxExternal int) *ConnectionLimiter {
	return &ConnectionLimiter{
		maxExternal:     maxExternal,
		externalClients: make([]string, 0),
		connections:     make(map[string]string),
	}
}

// TryAdd registers a new connection and returns the ID of any evicted client
// (empty string if none). remoteAddr may be a bare IP or host:port.
func (cl *ConnectionLimiter) TryAdd(clientID, remoteAddr string) (allowed bool, evictedID string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if _, exists := cl.connections[clientID]; exists {
		return true, ""
	}

	host := hostOf(remoteAddr)
	cl.connections[clientID] = host

	if isLocalIP(host) {
		return true, ""
	}

	cl.externalClients = append(cl.externalClients, clientID)

	if len(cl.externalClients) > cl.maxExternal {
		evictedID = cl.externalClients[0]
		cl.externalClients = cl.externalClients[1:]
		delete(cl.connections, evictedID)
		return true, evictedID
	}

	return true, ""
}

// Remove unregisters a connection when a client disconnects.
func (cl *ConnectionLimiter) Remove(clientID string) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	host, exists := cl.connections[clientID]
	if !exists {
		return
	}

	delete(cl.connections, clientID)

	if isLocalIP(host) {
		return
	}

	for i, id := range cl.externalClients {
		if id == clientID {
			cl.externalClients = append(cl.externalClients[:i], cl.externalClients[i+1:]...)
			break
		}
	}
}

// Count returns the number of tracked connections and how many are external.
func (cl *ConnectionLimiter) Count() (total, external int) {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	return len(cl.connections), len(cl.externalClients)
}

// hostOf strips an optional port and IPv6 brackets from addr.
func hostOf(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return strings.Trim(addr, "[]")
}

// isLocalIP reports whether ip is a loopback address, including IPv4-mapped IPv6.
func isLocalIP(ip string) bool {
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsLoopback()
}
