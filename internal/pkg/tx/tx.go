// Package tx threads the repository's transaction boundary through
// context, so handlers can group writes without holding a direct
// reference to the database layer.
package tx

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
)

type key string

const KeyTx = key("tx")

type DbRepo interface {
	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type Tx struct {
	DbRepo DbRepo
}

// TxExecute runs cb inside a repository transaction when a Tx is present in
// ctx, and directly otherwise (tests, single-statement paths).
func TxExecute(ctx context.Context, cb func(ctx context.Context) error) error {
	t, ok := ctx.Value(KeyTx).(Tx)
	if !ok {
		return cb(ctx)
	}
	return t.DbRepo.WithTx(ctx, cb)
}

func TxMiddlewareHTTP(repo DbRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), KeyTx, Tx{DbRepo: repo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TxMiddlewareGRPC(repo DbRepo) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx = context.WithValue(ctx, KeyTx, Tx{DbRepo: repo})
		return handler(ctx, req)
	}
}
