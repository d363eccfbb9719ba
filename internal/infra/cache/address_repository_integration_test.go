//go:build integration

package cache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"addressbook/config"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/repository"
	"addressbook/internal/infra/cache"
	"addressbook/internal/infra/metrics"
	mockRepo "addressbook/internal/mocks/repository"
	"addressbook/internal/testutil/containers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type CacheSuite struct {
	suite.Suite

	redis   *containers.RedisContainer
	params  cache.DecorateParams
	metrics *metrics.Metrics
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *CacheSuite) SetupTest() {
	s.Require().NoError(s.redis.Client.FlushDB(context.Background()).Err())

	cfg := &config.Config{Redis: &config.RedisConfig{Enabled: true, URL: s.redis.URL}}
	cfg.ApplyDefaults()

	s.metrics = metrics.NewWithRegisterer(prometheus.NewRegistry())
	s.params = cache.DecorateParams{
		Client:  s.redis.Client,
		Config:  cfg,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: s.metrics,
	}
}

func (s *CacheSuite) lookups(result string) float64 {
	return testutil.ToFloat64(s.metrics.CacheLookups.WithLabelValues(result))
}

func (s *CacheSuite) TestReadThroughAndInvalidateOnWrite() {
	t := s.T()
	ctx := context.Background()
	owner := entity.NewOwnerRef("customer", 1)
	store := mockRepo.NewMockAddressRepository(t)
	repo := cache.DecorateAddressRepository(s.params, store)

	home := &entity.Address{ID: 1, OwnerType: "customer", OwnerID: 1, Label: "Home", Country: "NL"}
	store.EXPECT().FindAddressesByOwner(ctx, owner, repository.AddressQuery{}).Return([]*entity.Address{home}, nil).Once()

	first, err := repo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{})
	require.NoError(t, err)
	second, err := repo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.InDelta(t, 1, s.lookups("miss"), 0)
	assert.InDelta(t, 1, s.lookups("hit"), 0)

	work := &entity.Address{OwnerType: "customer", OwnerID: 1, Label: "Work"}
	store.EXPECT().CreateAddress(ctx, work).Return(nil).Once()
	require.NoError(t, repo.CreateAddress(ctx, work))

	store.EXPECT().FindAddressesByOwner(ctx, owner, repository.AddressQuery{}).Return([]*entity.Address{home, work}, nil).Once()
	third, err := repo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{})
	require.NoError(t, err)
	assert.Len(t, third, 2)
}

func (s *CacheSuite) TestDeleteInvalidatesOwnerOfDeletedAddress() {
	t := s.T()
	ctx := context.Background()
	owner := entity.NewOwnerRef("customer", 2)
	store := mockRepo.NewMockAddressRepository(t)
	repo := cache.DecorateAddressRepository(s.params, store)

	home := &entity.Address{ID: 5, OwnerType: "customer", OwnerID: 2, Label: "Home"}
	store.EXPECT().FindAddressesByOwner(ctx, owner, repository.AddressQuery{}).Return([]*entity.Address{home}, nil).Once()
	_, err := repo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{})
	require.NoError(t, err)

	store.EXPECT().FindAddressByID(ctx, uint64(5)).Return(home, nil).Once()
	store.EXPECT().DeleteAddress(ctx, uint64(5), entity.SoftDelete).Return(true, nil).Once()
	deleted, err := repo.DeleteAddress(ctx, 5, entity.SoftDelete)
	require.NoError(t, err)
	assert.True(t, deleted)

	store.EXPECT().FindAddressesByOwner(ctx, owner, repository.AddressQuery{}).Return(nil, nil).Once()
	remaining, err := repo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func (s *CacheSuite) TestTransactionInvalidatesAfterCommitOnly() {
	t := s.T()
	ctx := context.Background()
	owner := entity.NewOwnerRef("customer", 3)
	store := mockRepo.NewMockAddressRepository(t)
	tm := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)

	repo := cache.DecorateAddressRepository(s.params, store)
	cachedTM := cache.DecorateTransactionManager(s.params, tm)

	home := &entity.Address{ID: 9, OwnerType: "customer", OwnerID: 3, Label: "Home"}
	store.EXPECT().FindAddressesByOwner(ctx, owner, repository.AddressQuery{}).Return([]*entity.Address{home}, nil).Once()
	_, err := repo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{})
	require.NoError(t, err)

	key := "addressbook:addresses:addresses:customer:3"
	tm.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			if err := fn(factory); err != nil {
				return err
			}
			// Still cached right before commit.
			exists, err := s.redis.Client.Exists(ctx, key).Result()
			require.NoError(t, err)
			assert.Equal(t, int64(1), exists)

			return nil
		})
	factory.EXPECT().NewAddressRepository().Return(store)
	store.EXPECT().DeleteAddressesByOwner(ctx, owner, entity.ForceDelete).Return(int64(1), nil).Once()

	err = cachedTM.Execute(ctx, func(factory repository.RepositoryFactory) error {
		_, err := factory.NewAddressRepository().DeleteAddressesByOwner(ctx, owner, entity.ForceDelete)

		return err
	})
	require.NoError(t, err)

	exists, err := s.redis.Client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
