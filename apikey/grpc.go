package apikey

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// errPermissionDenied carries grpc-status 7 and the uniform message.
var errPermissionDenied = status.Error(codes.PermissionDenied, forbiddenBody)

// UnaryInterceptor returns a server interceptor enforcing the policy on
// unary RPCs. Every RPC counts as unsafe: gRPC calls are POST-shaped, so
// the read-only key never admits one.
func UnaryInterceptor(p Policy) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !allowRPC(ctx, p) {
			return nil, errPermissionDenied
		}
		return handler(ctx, req)
	}
}

// StreamInterceptor returns a server interceptor enforcing the policy on
// streaming RPCs.
func StreamInterceptor(p Policy) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if !allowRPC(ss.Context(), p) {
			return errPermissionDenied
		}
		return handler(srv, ss)
	}
}

func allowRPC(ctx context.Context, p Policy) bool {
	var key string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if vals := md.Get(HeaderName); len(vals) > 0 {
			key = vals[0]
		}
	}
	return p.Allow(http.MethodPost, key)
}
