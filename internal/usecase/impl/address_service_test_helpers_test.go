package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"addressbook/config"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/infra/metrics"
	"addressbook/internal/infra/validation"
	mockRepo "addressbook/internal/mocks/repository"
	mockService "addressbook/internal/mocks/service"
	"addressbook/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	customer = entity.NewOwnerRef("customer", 1)
	stranger = entity.NewOwnerRef("customer", 2)
)

type addressServiceFixture struct {
	service     usecase.AddressUsecase
	addressRepo *mockRepo.MockAddressRepository
	txRepo      *mockRepo.MockAddressRepository
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	publisher   *mockService.MockEventPublisher
	metrics     *metrics.Metrics
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Addresses.OwnerTypes = []string{"customer", "organization"}

	return cfg
}

func createTestAddressService(t *testing.T) *addressServiceFixture {
	t.Helper()

	cfg := newTestConfig()
	validator, err := validation.NewAddressValidator(cfg)
	require.NoError(t, err)

	fx := &addressServiceFixture{
		addressRepo: mockRepo.NewMockAddressRepository(t),
		txRepo:      mockRepo.NewMockAddressRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		publisher:   mockService.NewMockEventPublisher(t),
		metrics:     metrics.NewWithRegisterer(prometheus.NewRegistry()),
	}

	fx.service = NewAddressService(AddressServiceParams{
		TxManager:   fx.txManager,
		AddressRepo: fx.addressRepo,
		Validator:   validator,
		Publisher:   fx.publisher,
		Metrics:     fx.metrics,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	return fx
}

// expectTransaction runs the transaction callback against txRepo.
func (fx *addressServiceFixture) expectTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Once()
	fx.factory.EXPECT().NewAddressRepository().Return(fx.txRepo).Once()
}

// expectEvent expects one published event of the given type and returns it through the pointer.
func (fx *addressServiceFixture) expectEvent(eventType service.AddressEventType, published **service.AddressEvent) {
	fx.publisher.EXPECT().
		PublishAddressEvent(mock.Anything, mock.MatchedBy(func(event *service.AddressEvent) bool {
			return event.Type == eventType
		})).
		Run(func(_ context.Context, event *service.AddressEvent) {
			if published != nil {
				*published = event
			}
		}).
		Return(nil).
		Once()
}

func addressOf(owner entity.OwnerRef, id uint64, label string, opts ...func(*entity.Address)) *entity.Address {
	address := &entity.Address{
		ID:        id,
		OwnerType: owner.Type,
		OwnerID:   owner.ID,
		Label:     label,
	}
	for _, opt := range opts {
		opt(address)
	}

	return address
}

func withCoordinates(lat, lng float64) func(*entity.Address) {
	return func(a *entity.Address) {
		a.Latitude, a.Longitude = &lat, &lng
	}
}
