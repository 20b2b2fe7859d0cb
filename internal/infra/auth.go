package infra

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/s21platform/messenger-service/internal/config"
)

// userUUIDHeader is set by the platform gateway after it resolves the
// session. Session resolution itself lives outside this service.
const userUUIDHeader = "X-User-Uuid"

func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get(userUUIDHeader)
		if _, err := uuid.Parse(userUUID); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func AuthInterceptorGRPC(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}

	values := md.Get("uuid")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing uuid")
	}

	if _, err := uuid.Parse(values[0]); err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid uuid")
	}

	return handler(context.WithValue(ctx, config.KeyUUID, values[0]), req)
}
