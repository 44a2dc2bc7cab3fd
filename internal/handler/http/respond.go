package http

import (
	"encoding/json"
	"net"
	"net/http"
)

const realIPHeader = "X-Real-IP"

func writeJSON(w http.ResponseWriter, statusCode int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(value)
}

// clientIP resolves the address all throttling decisions are keyed on. The
// reverse proxy sets X-Real-IP; without one the peer address is used.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get(realIPHeader); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
