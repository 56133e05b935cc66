package service

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// OperatorSessionKeyPrefix is the Redis key prefix under which the
// external identity provider stores operator sessions. This service
// only reads; issuance and expiry belong to the provider.
const OperatorSessionKeyPrefix = "operator_session:"

// ErrSessionInvalid is returned for unknown or expired session tokens.
var ErrSessionInvalid = errors.New("session token invalid or expired")

// sessionService is the concrete implementation of SessionService
type sessionService struct {
	rdb *redis.Client
	log zerolog.Logger
}

// newSessionService creates a new SessionService. A nil client means
// no session store is configured; Enabled reports false and the router
// skips the auth middleware.
func newSessionService(rdb *redis.Client, log zerolog.Logger) *sessionService {
	return &sessionService{
		rdb: rdb,
		log: log.With().Str("service", "session").Logger(),
	}
}

// Enabled reports whether session validation is active
func (s *sessionService) Enabled() bool {
	return s.rdb != nil
}

// Validate looks the token up in the session store and returns the
// operator name it was issued to. Unknown tokens and lookup failures
// both deny access.
func (s *sessionService) Validate(ctx context.Context, token string) (string, error) {
	if s.rdb == nil || token == "" {
		return "", ErrSessionInvalid
	}

	operator, err := s.rdb.Get(ctx, OperatorSessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionInvalid
	}
	if err != nil {
		s.log.Error().Err(err).Msg("Session store lookup failed")
		return "", err
	}

	return operator, nil
}
