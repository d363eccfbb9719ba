package cache

import (
	"context"

	"addressbook/internal/domain/repository"
)

// cachedTransactionManager hands out cache-aware repositories inside a transaction.
// Cached entries touched by the transaction are dropped only once it has committed.
type cachedTransactionManager struct {
	repository.TransactionManager

	cache *addressCache
}

type cachedRepositoryFactory struct {
	repository.RepositoryFactory

	cache   *addressCache
	pending *pendingOwners
}

// DecorateTransactionManager wraps the transaction manager when a Redis client is configured.
func DecorateTransactionManager(params DecorateParams, tm repository.TransactionManager) repository.TransactionManager {
	if params.Client == nil {
		return tm
	}

	return &cachedTransactionManager{
		TransactionManager: tm,
		cache:              newAddressCache(params.Client, params.Config, params.Logger, params.Metrics),
	}
}

func (tm *cachedTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	pending := &pendingOwners{}

	err := tm.TransactionManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return fn(&cachedRepositoryFactory{RepositoryFactory: factory, cache: tm.cache, pending: pending})
	})
	if err != nil {
		return err
	}

	tm.cache.invalidate(ctx, pending.drain()...)

	return nil
}

func (f *cachedRepositoryFactory) NewAddressRepository() repository.AddressRepository {
	return &cachedAddressRepository{
		AddressRepository: f.RepositoryFactory.NewAddressRepository(),
		cache:             f.cache,
		pending:           f.pending,
	}
}
