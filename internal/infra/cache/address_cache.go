package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"addressbook/config"
	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
	"addressbook/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
)

// Cache lookup results reported to metrics.
const (
	lookupHit   = "hit"
	lookupMiss  = "miss"
	lookupError = "error"
)

// addressCache stores the unfiltered address list of an owner under one key.
type addressCache struct {
	client   *redis.Client
	ttl      time.Duration
	prefix   string
	relation string
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func newAddressCache(client *redis.Client, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *addressCache {
	return &addressCache{
		client:   client,
		ttl:      cfg.Redis.TTL,
		prefix:   cfg.Redis.KeyPrefix,
		relation: cfg.Addresses.Relation,
		logger:   logger.With(slog.String("component", "address_cache")),
		metrics:  m,
	}
}

// key returns "<prefix>:addresses:<relation>:<owner type>:<owner id>".
func (c *addressCache) key(owner entity.Owner) string {
	return strings.Join([]string{
		c.prefix,
		"addresses",
		c.relation,
		owner.OwnerType(),
		strconv.FormatUint(owner.OwnerID(), 10),
	}, ":")
}

// get returns the cached list. A Redis failure is reported as a miss.
func (c *addressCache) get(ctx context.Context, owner entity.Owner) ([]*entity.Address, bool) {
	payload, err := c.client.Get(ctx, c.key(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.IncrementCacheLookup(lookupMiss)

		return nil, false
	}
	if err != nil {
		c.metrics.IncrementCacheLookup(lookupError)
		c.logger.WarnContext(ctx, "Address cache read failed", slog.Any("error", err))

		return nil, false
	}

	addresses, err := c.decode(payload)
	if err != nil {
		c.metrics.IncrementCacheLookup(lookupError)
		c.logger.WarnContext(ctx, "Address cache entry is corrupt", slog.Any("error", err))

		return nil, false
	}

	c.metrics.IncrementCacheLookup(lookupHit)

	return addresses, true
}

// decode restores a cached list. Relation is not serialized, so it is set from
// the configured relation the key was built with.
func (c *addressCache) decode(payload []byte) ([]*entity.Address, error) {
	var addresses []*entity.Address
	if err := json.Unmarshal(payload, &addresses); err != nil {
		return nil, errors.WithStack(err)
	}

	for _, address := range addresses {
		address.Relation = c.relation
	}

	return addresses, nil
}

func (c *addressCache) set(ctx context.Context, owner entity.Owner, addresses []*entity.Address) {
	payload, err := json.Marshal(addresses)
	if err != nil {
		c.logger.WarnContext(ctx, "Address cache encode failed", slog.Any("error", err))

		return
	}

	if err := c.client.Set(ctx, c.key(owner), payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Address cache write failed", slog.Any("error", err))
	}
}

// invalidate drops the cached lists of the given owners.
func (c *addressCache) invalidate(ctx context.Context, owners ...entity.Owner) {
	if len(owners) == 0 {
		return
	}

	keys := make([]string, 0, len(owners))
	for _, owner := range owners {
		keys = append(keys, c.key(owner))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		// Stale entries expire with the TTL.
		c.logger.ErrorContext(ctx, "Address cache invalidation failed",
			slog.Any("keys", keys),
			slog.Any("error", err),
		)
	}
}
