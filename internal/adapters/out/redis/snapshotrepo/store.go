package snapshotrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"
	"console/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// snapshotKey addresses one cached aggregate: order:snapshot:{order_id}.
const snapshotKey = "order:snapshot:%d"

// DefaultTTL bounds how long a snapshot may serve reads before the next
// refresh has to hit the order service again.
const DefaultTTL = 5 * time.Minute

// RedisSnapshotStore implements ports.SnapshotStore on a Redis client.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSnapshotStore creates a snapshot store. A non-positive ttl falls
// back to DefaultTTL.
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

// Replace stores the aggregate wholesale under its order id key.
func (s *RedisSnapshotStore) Replace(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(fromDomain(aggregate))
	if err != nil {
		return err
	}

	key := fmt.Sprintf(snapshotKey, aggregate.ID().Int64())
	return s.client.Set(ctx, key, payload, s.ttl).Err()
}

// Get retrieves the cached aggregate for an order id.
func (s *RedisSnapshotStore) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf(snapshotKey, id.Int64())
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("order snapshot", id.String())
		}
		return nil, err
	}

	var dto orderDTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, err
	}

	return toDomain(dto)
}
