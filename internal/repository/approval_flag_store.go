package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pendingFlagPrefix = "auth:pending:"

// ApprovalFlagStore holds the transient pending-approval flag raised after
// sign-up and after a login attempt against a pending account. The flag
// self-clears when its TTL lapses; it mirrors the account's PENDING status
// and never diverges from it because it is only raised on that status.
type ApprovalFlagStore interface {
	Raise(ctx context.Context, email string) error
	Active(ctx context.Context, email string) (bool, error)
}

type approvalFlagStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewApprovalFlagStore returns a Redis-backed implementation with the
// given flag lifetime.
func NewApprovalFlagStore(client *redis.Client, ttl time.Duration) ApprovalFlagStore {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &approvalFlagStore{client: client, ttl: ttl}
}

func (s *approvalFlagStore) Raise(ctx context.Context, email string) error {
	return s.client.Set(ctx, pendingFlagPrefix+email, "1", s.ttl).Err()
}

func (s *approvalFlagStore) Active(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Exists(ctx, pendingFlagPrefix+email).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
