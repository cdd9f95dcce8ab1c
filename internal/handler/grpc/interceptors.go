package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	// authorizationKey carries "Bearer <token>", the same value as the HTTP
	// Authorization header.
	authorizationKey = "authorization"

	// traceIDKey carries the caller's trace identifier.
	traceIDKey = "x-trace-id"
)

var traceIDs = utils.NewUUIDGenerator()

// UnaryLoggingInterceptor attaches a trace-scoped logger to the context and
// writes one access log entry per call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := metadataValue(ctx, traceIDKey)
	if traceID == "" {
		traceID = traceIDs.Generate()
	}

	log := h.logger.WithTraceID(traceID)
	ctx = log.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// UnaryAuthInterceptor is the request gate for gRPC calls. Like its HTTP
// counterpart it never fails a call: it attaches the resolved identity or
// records why the presented credential was refused, then always invokes
// handler.
func (h *Handler) UnaryAuthInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	authValue := metadataValue(ctx, authorizationKey)
	if authValue == "" {
		return handler(ctx, req)
	}

	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(authValue)
	if err != nil {
		log.Info().Err(err).Str("method", info.FullMethod).Str("reason", string(models.ReasonMalformed)).Msg("credential rejected")
		return handler(utils.WithAuthRejection(ctx, models.ReasonMalformed), req)
	}

	identity, validation := h.services.AuthService.ResolveToken(ctx, tokenString)
	if !validation.Valid {
		log.Info().Str("method", info.FullMethod).Str("reason", string(validation.Reason)).Msg("credential rejected")
		return handler(utils.WithAuthRejection(ctx, validation.Reason), req)
	}

	return handler(utils.WithIdentity(ctx, identity), req)
}

// metadataValue returns the first incoming metadata value stored under key.
func metadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
