package server

import (
	"fmt"
	"net"
	"net/http"
)

// StartHTTPServer serves handler on host:port and blocks.
func StartHTTPServer(host string, port int, handler http.Handler) error {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	return http.ListenAndServe(addr, handler)
}
