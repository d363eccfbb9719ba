package cache

import (
	"context"
	"log/slog"
	"sync"

	"addressbook/config"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/repository"
	"addressbook/internal/errors"
	"addressbook/internal/infra/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// DecorateParams defines the parameters required to put the cache in front of the store
type DecorateParams struct {
	fx.In

	Client  *redis.Client `optional:"true"`
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// cachedAddressRepository serves unfiltered owner lists from Redis and drops
// the owner's entry on every write. Every other call goes to the wrapped store.
type cachedAddressRepository struct {
	repository.AddressRepository

	cache *addressCache

	// pending collects owners whose entries must be dropped after commit.
	// It is nil outside a transaction.
	pending *pendingOwners
}

// DecorateAddressRepository wraps the store with the cache when a Redis client is configured.
func DecorateAddressRepository(params DecorateParams, repo repository.AddressRepository) repository.AddressRepository {
	if params.Client == nil {
		return repo
	}

	return &cachedAddressRepository{
		AddressRepository: repo,
		cache:             newAddressCache(params.Client, params.Config, params.Logger, params.Metrics),
	}
}

func (r *cachedAddressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	if err := r.AddressRepository.CreateAddress(ctx, address); err != nil {
		return err
	}
	r.invalidate(ctx, ownerOf(address))

	return nil
}

func (r *cachedAddressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	if err := r.AddressRepository.UpdateAddress(ctx, address); err != nil {
		return err
	}
	r.invalidate(ctx, ownerOf(address))

	return nil
}

func (r *cachedAddressRepository) DeleteAddress(ctx context.Context, id uint64, mode entity.DeleteMode) (bool, error) {
	// Only live rows can be cached, so a miss here needs no invalidation.
	address, err := r.AddressRepository.FindAddressByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrAddressNotFound) {
		return false, err
	}

	deleted, err := r.AddressRepository.DeleteAddress(ctx, id, mode)
	if err != nil {
		return false, err
	}
	if deleted && address != nil {
		r.invalidate(ctx, ownerOf(address))
	}

	return deleted, nil
}

func (r *cachedAddressRepository) FindAddressesByOwner(ctx context.Context, owner entity.Owner, query repository.AddressQuery) ([]*entity.Address, error) {
	if !query.IsZero() || r.pending != nil {
		return r.AddressRepository.FindAddressesByOwner(ctx, owner, query)
	}

	if addresses, ok := r.cache.get(ctx, owner); ok {
		return addresses, nil
	}

	addresses, err := r.AddressRepository.FindAddressesByOwner(ctx, owner, query)
	if err != nil {
		return nil, err
	}
	r.cache.set(ctx, owner, addresses)

	return addresses, nil
}

func (r *cachedAddressRepository) DeleteAddressesByOwner(ctx context.Context, owner entity.Owner, mode entity.DeleteMode) (int64, error) {
	count, err := r.AddressRepository.DeleteAddressesByOwner(ctx, owner, mode)
	if err != nil {
		return 0, err
	}
	r.invalidate(ctx, owner)

	return count, nil
}

func (r *cachedAddressRepository) invalidate(ctx context.Context, owner entity.Owner) {
	if r.pending != nil {
		r.pending.add(owner)

		return
	}
	r.cache.invalidate(ctx, owner)
}

func ownerOf(address *entity.Address) entity.OwnerRef {
	return entity.NewOwnerRef(address.OwnerType, address.OwnerID)
}

type pendingOwners struct {
	mu     sync.Mutex
	owners map[entity.OwnerRef]struct{}
}

func (p *pendingOwners) add(owner entity.Owner) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.owners == nil {
		p.owners = make(map[entity.OwnerRef]struct{})
	}
	p.owners[entity.RefOf(owner)] = struct{}{}
}

func (p *pendingOwners) drain() []entity.Owner {
	p.mu.Lock()
	defer p.mu.Unlock()

	owners := make([]entity.Owner, 0, len(p.owners))
	for owner := range p.owners {
		owners = append(owners, owner)
	}
	p.owners = nil

	return owners
}
