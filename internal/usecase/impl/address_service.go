// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"addressbook/config"
	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/infra/metrics"
	"addressbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Operation names reported to metrics.
const (
	opAddAddress    = "add_address"
	opUpdateAddress = "update_address"
	opDeleteAddress = "delete_address"
	opDeleteOwner   = "delete_owner"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
	validator   service.AddressValidator
	publisher   service.EventPublisher
	metrics     *metrics.Metrics
	addresses   *config.AddressesConfig
	logger      *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AddressRepo repository.AddressRepository
	Validator   service.AddressValidator
	Publisher   service.EventPublisher
	Metrics     *metrics.Metrics `optional:"true"`
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	addresses := params.Config.Addresses
	if addresses == nil {
		addresses = config.DefaultAddressesConfig()
	}

	return &addressService{
		txManager:   params.TxManager,
		addressRepo: params.AddressRepo,
		validator:   params.Validator,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		addresses:   addresses,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddAddress validates the fields and links a new address to the owner.
// Nothing is written when validation fails.
func (srv *addressService) AddAddress(ctx context.Context, owner entity.Owner, fields service.AddressFields) (*entity.Address, error) {
	start := time.Now()

	address, err := srv.addAddress(ctx, owner, fields)
	srv.metrics.ObserveOperation(opAddAddress, start, err)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Address added",
		slog.String("owner", entity.RefOf(owner).String()),
		slog.Uint64("addressID", address.ID),
	)
	srv.publish(ctx, service.EventAddressCreated, owner, func(event *service.AddressEvent) {
		event.AddressIDs = []uint64{address.ID}
	})

	return address, nil
}

func (srv *addressService) addAddress(ctx context.Context, owner entity.Owner, fields service.AddressFields) (*entity.Address, error) {
	if err := srv.checkOwner(owner); err != nil {
		return nil, err
	}

	validated, err := srv.validate(ctx, fields)
	if err != nil {
		return nil, err
	}

	address := &entity.Address{
		OwnerType: owner.OwnerType(),
		OwnerID:   owner.OwnerID(),
	}
	if err := srv.validator.Apply(validated, address); err != nil {
		return nil, err
	}

	if err := srv.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	return address, nil
}

// UpdateAddress re-validates the fields and applies them to one of the owner's addresses.
func (srv *addressService) UpdateAddress(ctx context.Context, owner entity.Owner, addressID uint64, fields service.AddressFields) (*entity.Address, error) {
	start := time.Now()

	address, err := srv.updateAddress(ctx, owner, addressID, fields)
	srv.metrics.ObserveOperation(opUpdateAddress, start, err)
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.EventAddressUpdated, owner, func(event *service.AddressEvent) {
		event.AddressIDs = []uint64{address.ID}
	})

	return address, nil
}

func (srv *addressService) updateAddress(ctx context.Context, owner entity.Owner, addressID uint64, fields service.AddressFields) (*entity.Address, error) {
	if err := srv.checkOwner(owner); err != nil {
		return nil, err
	}

	validated, err := srv.validate(ctx, fields)
	if err != nil {
		return nil, err
	}

	var updated *entity.Address
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		address, err := srv.findOwnedAddress(ctx, addressRepo, owner, addressID)
		if err != nil {
			return err
		}

		if err := srv.validator.Apply(validated, address); err != nil {
			return err
		}

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to update address")
		}

		updated = address

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteAddress soft- or force-deletes the referenced addresses the owner holds.
// References to addresses of other owners are reported as not owned and skipped.
func (srv *addressService) DeleteAddress(ctx context.Context, owner entity.Owner, ref entity.AddressRef, mode entity.DeleteMode) ([]usecase.DeleteOutcome, error) {
	start := time.Now()

	outcomes, err := srv.deleteAddresses(ctx, owner, ref, mode)
	srv.metrics.ObserveOperation(opDeleteAddress, start, err)
	if err != nil {
		return nil, err
	}

	var deleted []uint64
	for _, outcome := range outcomes {
		if outcome.Status == usecase.DeleteStatusDeleted {
			deleted = append(deleted, outcome.AddressID)
		}
	}

	srv.metrics.AddDeleted(mode.String(), len(deleted))

	if len(deleted) > 0 {
		srv.log(ctx).Info("Addresses deleted",
			slog.String("owner", entity.RefOf(owner).String()),
			slog.String("mode", mode.String()),
			slog.Any("addressIDs", deleted),
		)
		srv.publish(ctx, service.EventAddressDeleted, owner, func(event *service.AddressEvent) {
			event.AddressIDs = deleted
			event.Force = mode == entity.ForceDelete
		})
	}

	return outcomes, nil
}

func (srv *addressService) deleteAddresses(ctx context.Context, owner entity.Owner, ref entity.AddressRef, mode entity.DeleteMode) ([]usecase.DeleteOutcome, error) {
	if err := srv.checkOwner(owner); err != nil {
		return nil, err
	}

	ids := uniqueIDs(entity.FlattenRef(ref))
	if len(ids) == 0 {
		return []usecase.DeleteOutcome{}, nil
	}

	outcomes := make([]usecase.DeleteOutcome, 0, len(ids))
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		owned, err := srv.ownedIDs(ctx, addressRepo, owner)
		if err != nil {
			return err
		}

		outcomes = outcomes[:0]
		for _, id := range ids {
			if _, ok := owned[id]; !ok {
				outcomes = append(outcomes, usecase.DeleteOutcome{AddressID: id, Status: usecase.DeleteStatusNotOwned})

				continue
			}

			deleted, err := addressRepo.DeleteAddress(ctx, id, mode)
			if err != nil {
				return errors.Wrapf(err, "failed to delete address %d", id)
			}

			status := usecase.DeleteStatusDeleted
			if !deleted {
				status = usecase.DeleteStatusNotFound
			}
			outcomes = append(outcomes, usecase.DeleteOutcome{AddressID: id, Status: status})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcomes, nil
}

// ForceDeleteAddress permanently erases the referenced addresses the owner holds.
func (srv *addressService) ForceDeleteAddress(ctx context.Context, owner entity.Owner, ref entity.AddressRef) ([]usecase.DeleteOutcome, error) {
	return srv.DeleteAddress(ctx, owner, ref, entity.ForceDelete)
}

// HasAddress reports whether at least one referenced address belongs to the owner.
func (srv *addressService) HasAddress(ctx context.Context, owner entity.Owner, ref entity.AddressRef) (bool, error) {
	ids := entity.FlattenRef(ref)
	if len(ids) == 0 {
		return false, nil
	}

	owned, err := srv.ownedIDs(ctx, srv.addressRepo, owner)
	if err != nil {
		return false, err
	}

	for _, id := range ids {
		if _, ok := owned[id]; ok {
			return true, nil
		}
	}

	return false, nil
}

// HasAddresses reports whether the owner has at least one live address.
func (srv *addressService) HasAddresses(ctx context.Context, owner entity.Owner) (bool, error) {
	count, err := srv.addressRepo.CountAddressesByOwner(ctx, owner)
	if err != nil {
		return false, errors.Wrap(err, "failed to count addresses by owner")
	}

	return count > 0, nil
}

// GetAddresses lists the owner's addresses narrowed by the query.
func (srv *addressService) GetAddresses(ctx context.Context, owner entity.Owner, query repository.AddressQuery) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.FindAddressesByOwner(ctx, owner, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	return addresses, nil
}

// GetAddress returns one of the owner's addresses.
func (srv *addressService) GetAddress(ctx context.Context, owner entity.Owner, addressID uint64) (*entity.Address, error) {
	return srv.findOwnedAddress(ctx, srv.addressRepo, owner, addressID)
}

// GetAddressLabels returns the labels of the owner's addresses in storage order.
func (srv *addressService) GetAddressLabels(ctx context.Context, owner entity.Owner) ([]string, error) {
	addresses, err := srv.GetAddresses(ctx, owner, repository.AddressQuery{})
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(addresses))
	for _, address := range addresses {
		labels = append(labels, address.Label)
	}

	return labels, nil
}

// GetDesignatedAddress picks the first address carrying the flag.
// Among several flagged addresses the lowest ID wins whatever the direction.
func (srv *addressService) GetDesignatedAddress(ctx context.Context, owner entity.Owner, flag entity.AddressFlag, direction entity.Direction) (*entity.Address, error) {
	if !flag.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown address flag " + flag.String())
	}
	if direction == "" {
		direction = entity.DirectionDesc
	}

	address, err := srv.addressRepo.FindFirstAddressByOwner(ctx, owner, repository.Designated(flag, direction))
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s address", flag)
	}

	return address, nil
}

// GetPrimaryAddress returns the owner's primary address, if any.
func (srv *addressService) GetPrimaryAddress(ctx context.Context, owner entity.Owner, direction entity.Direction) (*entity.Address, error) {
	return srv.GetDesignatedAddress(ctx, owner, entity.FlagPrimary, direction)
}

// GetBillingAddress returns the owner's billing address, if any.
func (srv *addressService) GetBillingAddress(ctx context.Context, owner entity.Owner, direction entity.Direction) (*entity.Address, error) {
	return srv.GetDesignatedAddress(ctx, owner, entity.FlagBilling, direction)
}

// GetShippingAddress returns the owner's shipping address, if any.
func (srv *addressService) GetShippingAddress(ctx context.Context, owner entity.Owner, direction entity.Direction) (*entity.Address, error) {
	return srv.GetDesignatedAddress(ctx, owner, entity.FlagShipping, direction)
}

// GetPublicAddress returns the owner's public address, if any.
func (srv *addressService) GetPublicAddress(ctx context.Context, owner entity.Owner, direction entity.Direction) (*entity.Address, error) {
	return srv.GetDesignatedAddress(ctx, owner, entity.FlagPublic, direction)
}

// GetNearestAddress returns the owner's address with coordinates closest to point.
// Addresses without coordinates are skipped. Returns nil when none has coordinates.
func (srv *addressService) GetNearestAddress(ctx context.Context, owner entity.Owner, point orb.Point) (*entity.Address, error) {
	addresses, err := srv.GetAddresses(ctx, owner, repository.AddressQuery{})
	if err != nil {
		return nil, err
	}

	var (
		nearest  *entity.Address
		shortest float64
	)
	for _, address := range addresses {
		location, ok := address.Point()
		if !ok {
			continue
		}

		distance := geo.Distance(point, location)
		if nearest == nil || distance < shortest {
			nearest, shortest = address, distance
		}
	}

	return nearest, nil
}

// DeleteOwner removes every address of the owner as part of the owner's own deletion.
// purge selects a permanent delete, otherwise addresses are soft-deleted.
func (srv *addressService) DeleteOwner(ctx context.Context, owner entity.Owner, purge bool) (int64, error) {
	start := time.Now()

	mode := entity.SoftDelete
	if purge {
		mode = entity.ForceDelete
	}

	count, err := srv.addressRepo.DeleteAddressesByOwner(ctx, owner, mode)
	if err != nil {
		err = errors.Wrap(err, "failed to delete addresses by owner")
	}
	srv.metrics.ObserveOperation(opDeleteOwner, start, err)
	if err != nil {
		return 0, err
	}

	srv.metrics.AddDeleted(mode.String(), int(count))
	srv.log(ctx).Info("Owner addresses deleted",
		slog.String("owner", entity.RefOf(owner).String()),
		slog.String("mode", mode.String()),
		slog.Int64("count", count),
	)
	srv.publish(ctx, service.EventOwnerAddressesDeleted, owner, func(event *service.AddressEvent) {
		event.Count = count
		event.Force = purge
	})

	return count, nil
}

// --- Helpers ---

func (srv *addressService) checkOwner(owner entity.Owner) error {
	if owner == nil || !srv.addresses.AllowsOwnerType(owner.OwnerType()) {
		return domainerrors.ErrOwnerTypeInvalid
	}

	return nil
}

func (srv *addressService) validate(ctx context.Context, fields service.AddressFields) (service.AddressFields, error) {
	validated, err := srv.validator.Validate(fields)
	if err != nil {
		srv.metrics.IncrementValidationFailure()
		srv.log(ctx).Debug("Address validation failed", slog.Any("error", err))

		return nil, err
	}

	return validated, nil
}

func (srv *addressService) findOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, owner entity.Owner, addressID uint64) (*entity.Address, error) {
	address, err := addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	if !address.BelongsTo(owner) {
		return nil, domainerrors.ErrAddressOwnershipViolation
	}

	return address, nil
}

// ownedIDs loads the IDs of the owner's live addresses.
func (srv *addressService) ownedIDs(ctx context.Context, addressRepo repository.AddressRepository, owner entity.Owner) (map[uint64]struct{}, error) {
	addresses, err := addressRepo.FindAddressesByOwner(ctx, owner, repository.AddressQuery{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	owned := make(map[uint64]struct{}, len(addresses))
	for _, address := range addresses {
		owned[address.ID] = struct{}{}
	}

	return owned, nil
}

// publish emits an address event. Delivery failures are logged, never returned.
func (srv *addressService) publish(ctx context.Context, eventType service.AddressEventType, owner entity.Owner, fill func(*service.AddressEvent)) {
	event := &service.AddressEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		OwnerType:  owner.OwnerType(),
		OwnerID:    owner.OwnerID(),
		OccurredAt: time.Now().UTC(),
	}
	if fill != nil {
		fill(event)
	}

	err := srv.publisher.PublishAddressEvent(ctx, event)
	srv.metrics.IncrementEventPublished(string(eventType), err)
	if err != nil {
		srv.log(ctx).Warn("Failed to publish address event",
			slog.String("eventType", string(eventType)),
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	unique := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	return unique
}
