package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with the timeouts this service needs: slow
// candidate connections are common on mobile, so the write timeout stays
// generous while header reads are cut short.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
