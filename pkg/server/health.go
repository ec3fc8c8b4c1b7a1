package server

import (
	"net/http"
	"time"

	"github.com/vizigr0u/sugarcube/pkg/serializer"
)

// handleHealth reports process liveness. It always succeeds while the
// process can serve requests at all.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// handleReady reports readiness to serve traffic; it fails during shutdown
// so load balancers drain the instance.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.isReady() {
		serializer.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "not ready",
			Timestamp: time.Now().UTC(),
			Reason:    "server is shutting down",
		})
		return
	}
	serializer.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "ready",
		Timestamp: time.Now().UTC(),
	})
}
