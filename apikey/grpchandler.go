package apikey

import (
	"net/http"
	"strconv"

	"google.golang.org/grpc/codes"
)

// GRPCHandler wraps an http.Handler serving gRPC traffic, for use with
// (*grpc.Server).ServeHTTP. Rejections are shaped at the HTTP layer: 403
// with an empty body and the headers grpc-status: 7 and
// grpc-message: "Invalid api-key", so that both plain HTTP clients and
// gRPC clients observe a forbidden response.
func GRPCHandler(p Policy, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p.Allow(r.Method, r.Header.Get(HeaderName)) {
			next.ServeHTTP(w, r)
			return
		}
		h := w.Header()
		h.Set("grpc-status", strconv.Itoa(int(codes.PermissionDenied)))
		h.Set("grpc-message", forbiddenBody)
		w.WriteHeader(http.StatusForbidden)
	})
}
