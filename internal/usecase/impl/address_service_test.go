package impl

import (
	"context"
	"testing"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddressService_AddAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	var stored *entity.Address
	fx.addressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(_ context.Context, address *entity.Address) {
			address.ID = 10
			stored = address
		}).
		Return(nil)

	var event *service.AddressEvent
	fx.expectEvent(service.EventAddressCreated, &event)

	address, err := fx.service.AddAddress(ctx, customer, service.AddressFields{
		"label":       "Home",
		"street":      "Herengracht",
		"housenumber": "100",
		"city":        "Amsterdam",
		"country":     "NL",
		"latitude":    "52.3731",
		"longitude":   4.8922,
		"is_primary":  true,
		"owner_id":    99,
	})
	require.NoError(t, err)

	assert.Same(t, stored, address)
	assert.Equal(t, uint64(10), address.ID)
	assert.True(t, address.BelongsTo(customer), "owner comes from the caller, not the payload")
	assert.Equal(t, "Home", address.Label)
	assert.Equal(t, "Herengracht", address.Street)
	assert.Equal(t, "100", address.HouseNumber)
	assert.Equal(t, "NL", address.Country)
	require.NotNil(t, address.Latitude)
	assert.InDelta(t, 52.3731, *address.Latitude, 1e-9)
	assert.True(t, address.IsPrimary)
	assert.False(t, address.IsBilling)

	require.NotNil(t, event)
	assert.Equal(t, []uint64{10}, event.AddressIDs)
	assert.Equal(t, "customer", event.OwnerType)
	assert.NotEmpty(t, event.EventID)
}

func TestAddressService_AddAddress_MissingLabelNeverTouchesStorage(t *testing.T) {
	fx := createTestAddressService(t)

	for _, fields := range []service.AddressFields{
		{},
		{"city": "Amsterdam"},
		{"label": nil, "country": "NL"},
	} {
		address, err := fx.service.AddAddress(context.Background(), customer, fields)
		assert.Nil(t, address)
		assert.ErrorIs(t, err, domainerrors.ErrLabelMissing)
	}

	assert.InDelta(t, 3, testutil.ToFloat64(fx.metrics.ValidationFailures), 0)
}

func TestAddressService_AddAddress_InvalidCountryNeverTouchesStorage(t *testing.T) {
	fx := createTestAddressService(t)

	address, err := fx.service.AddAddress(context.Background(), customer, service.AddressFields{
		"label":   "X",
		"country": "USA",
	})
	assert.Nil(t, address)

	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"The country field must be 2 characters."}, validationErr.Messages())
}

func TestAddressService_AddAddress_UnknownOwnerType(t *testing.T) {
	fx := createTestAddressService(t)

	_, err := fx.service.AddAddress(context.Background(), entity.NewOwnerRef("invoice", 1), service.AddressFields{"label": "X"})
	assert.ErrorIs(t, err, domainerrors.ErrOwnerTypeInvalid)
}

func TestAddressService_AddAddress_StoreFailure(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.addressRepo.EXPECT().
		CreateAddress(ctx, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create address"))

	_, err := fx.service.AddAddress(ctx, customer, service.AddressFields{"label": "X"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAddressService_UpdateAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	existing := addressOf(customer, 5, "Home", func(a *entity.Address) {
		a.City = "Utrecht"
		a.IsPrimary = true
	})

	fx.expectTransaction()
	fx.txRepo.EXPECT().FindAddressByID(ctx, uint64(5)).Return(existing, nil)
	fx.txRepo.EXPECT().UpdateAddress(ctx, existing).Return(nil)
	fx.expectEvent(service.EventAddressUpdated, nil)

	address, err := fx.service.UpdateAddress(ctx, customer, 5, service.AddressFields{
		"label":      "Office",
		"is_primary": "0",
		"city":       nil,
	})
	require.NoError(t, err)
	assert.Equal(t, "Office", address.Label)
	assert.Empty(t, address.City)
	assert.False(t, address.IsPrimary)
}

func TestAddressService_UpdateAddress_RequiresLabel(t *testing.T) {
	fx := createTestAddressService(t)

	_, err := fx.service.UpdateAddress(context.Background(), customer, 5, service.AddressFields{"city": "Utrecht"})
	assert.ErrorIs(t, err, domainerrors.ErrLabelMissing)
}

func TestAddressService_UpdateAddress_NotFound(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.txRepo.EXPECT().FindAddressByID(ctx, uint64(5)).Return(nil, repository.ErrAddressNotFound)

	address, err := fx.service.UpdateAddress(ctx, customer, 5, service.AddressFields{"label": "Office"})
	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_UpdateAddress_NotOwned(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.txRepo.EXPECT().FindAddressByID(ctx, uint64(5)).Return(addressOf(stranger, 5, "Theirs"), nil)

	address, err := fx.service.UpdateAddress(ctx, customer, 5, service.AddressFields{"label": "Mine"})
	assert.Nil(t, address)
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)
}

func TestAddressService_DeleteAddress_ReportsPerItemOutcome(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.txRepo.EXPECT().
		FindAddressesByOwner(ctx, customer, repository.AddressQuery{}).
		Return([]*entity.Address{addressOf(customer, 1, "A"), addressOf(customer, 3, "C")}, nil)
	fx.txRepo.EXPECT().DeleteAddress(ctx, uint64(1), entity.SoftDelete).Return(true, nil)
	fx.txRepo.EXPECT().DeleteAddress(ctx, uint64(3), entity.SoftDelete).Return(true, nil)

	var event *service.AddressEvent
	fx.expectEvent(service.EventAddressDeleted, &event)

	ref := entity.ByList{
		entity.ByID(1),
		entity.ByRecord{Address: addressOf(stranger, 2, "B")},
		entity.NewIDSet(3),
		entity.ByID(1),
	}

	outcomes, err := fx.service.DeleteAddress(ctx, customer, ref, entity.SoftDelete)
	require.NoError(t, err)
	assert.Equal(t, []usecase.DeleteOutcome{
		{AddressID: 1, Status: usecase.DeleteStatusDeleted},
		{AddressID: 2, Status: usecase.DeleteStatusNotOwned},
		{AddressID: 3, Status: usecase.DeleteStatusDeleted},
	}, outcomes)

	require.NotNil(t, event)
	assert.Equal(t, []uint64{1, 3}, event.AddressIDs)
	assert.False(t, event.Force)
	assert.InDelta(t, 2, testutil.ToFloat64(fx.metrics.AddressesDeleted.WithLabelValues("soft")), 0)
}

func TestAddressService_ForceDeleteAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.txRepo.EXPECT().
		FindAddressesByOwner(ctx, customer, repository.AddressQuery{}).
		Return([]*entity.Address{addressOf(customer, 4, "D")}, nil)
	fx.txRepo.EXPECT().DeleteAddress(ctx, uint64(4), entity.ForceDelete).Return(true, nil)

	var event *service.AddressEvent
	fx.expectEvent(service.EventAddressDeleted, &event)

	outcomes, err := fx.service.ForceDeleteAddress(ctx, customer, entity.ByID(4))
	require.NoError(t, err)
	assert.Equal(t, []usecase.DeleteOutcome{{AddressID: 4, Status: usecase.DeleteStatusDeleted}}, outcomes)
	assert.True(t, event.Force)
}

func TestAddressService_DeleteAddress_NothingOwnedPublishesNothing(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.txRepo.EXPECT().FindAddressesByOwner(ctx, customer, repository.AddressQuery{}).Return(nil, nil)

	outcomes, err := fx.service.DeleteAddress(ctx, customer, entity.IDs(8, 9), entity.SoftDelete)
	require.NoError(t, err)
	assert.Equal(t, []usecase.DeleteOutcome{
		{AddressID: 8, Status: usecase.DeleteStatusNotOwned},
		{AddressID: 9, Status: usecase.DeleteStatusNotOwned},
	}, outcomes)
}

func TestAddressService_DeleteAddress_EmptyReference(t *testing.T) {
	fx := createTestAddressService(t)

	outcomes, err := fx.service.DeleteAddress(context.Background(), customer, entity.ByList{}, entity.SoftDelete)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestAddressService_DeleteAddress_RollsBackOnStoreError(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.expectTransaction()
	fx.txRepo.EXPECT().
		FindAddressesByOwner(ctx, customer, repository.AddressQuery{}).
		Return([]*entity.Address{addressOf(customer, 1, "A")}, nil)
	fx.txRepo.EXPECT().DeleteAddress(ctx, uint64(1), entity.SoftDelete).Return(false, errors.New("deadlock"))

	outcomes, err := fx.service.DeleteAddress(ctx, customer, entity.ByID(1), entity.SoftDelete)
	assert.Nil(t, outcomes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock")
}

func TestAddressService_HasAddress_UsesOrSemantics(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.addressRepo.EXPECT().
		FindAddressesByOwner(ctx, customer, repository.AddressQuery{}).
		Return([]*entity.Address{addressOf(customer, 1, "A"), addressOf(customer, 3, "C")}, nil)

	tests := []struct {
		name string
		ref  entity.AddressRef
		want bool
	}{
		{name: "owned id", ref: entity.ByID(1), want: true},
		{name: "foreign id", ref: entity.ByID(2), want: false},
		{name: "list with one owned", ref: entity.IDs(2, 3), want: true},
		{name: "list with none owned", ref: entity.IDs(2, 4), want: false},
		{name: "record", ref: entity.ByRecord{Address: addressOf(customer, 3, "C")}, want: true},
		{name: "set intersection", ref: entity.NewIDSet(5, 1), want: true},
		{name: "disjoint set", ref: entity.NewIDSet(5, 6), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			has, err := fx.service.HasAddress(ctx, customer, tt.ref)
			require.NoError(t, err)
			assert.Equal(t, tt.want, has)
		})
	}
}

func TestAddressService_HasAddress_EmptyReferenceSkipsStore(t *testing.T) {
	fx := createTestAddressService(t)

	has, err := fx.service.HasAddress(context.Background(), customer, entity.ByRecord{})
	require.NoError(t, err)
	assert.False(t, has)
}

func TestAddressService_HasAddresses(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.addressRepo.EXPECT().CountAddressesByOwner(ctx, customer).Return(int64(2), nil).Once()
	fx.addressRepo.EXPECT().CountAddressesByOwner(ctx, stranger).Return(int64(0), nil).Once()

	has, err := fx.service.HasAddresses(ctx, customer)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = fx.service.HasAddresses(ctx, stranger)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestAddressService_GetAddressLabels(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.addressRepo.EXPECT().
		FindAddressesByOwner(ctx, customer, repository.AddressQuery{}).
		Return([]*entity.Address{addressOf(customer, 1, "Home"), addressOf(customer, 2, "Work")}, nil)

	labels, err := fx.service.GetAddressLabels(ctx, customer)
	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Work"}, labels)
}

func TestAddressService_GetAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.addressRepo.EXPECT().FindAddressByID(ctx, uint64(1)).Return(addressOf(customer, 1, "Home"), nil)
	fx.addressRepo.EXPECT().FindAddressByID(ctx, uint64(2)).Return(addressOf(stranger, 2, "Theirs"), nil)
	fx.addressRepo.EXPECT().FindAddressByID(ctx, uint64(3)).Return(nil, repository.ErrAddressNotFound)

	address, err := fx.service.GetAddress(ctx, customer, 1)
	require.NoError(t, err)
	assert.Equal(t, "Home", address.Label)

	_, err = fx.service.GetAddress(ctx, customer, 2)
	assert.ErrorIs(t, err, domainerrors.ErrAddressOwnershipViolation)

	_, err = fx.service.GetAddress(ctx, customer, 3)
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestAddressService_GetPrimaryAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	home := addressOf(customer, 1, "Home", func(a *entity.Address) { a.IsPrimary = true })

	fx.addressRepo.EXPECT().
		FindFirstAddressByOwner(ctx, customer, repository.Designated(entity.FlagPrimary, entity.DirectionDesc)).
		Return(home, nil).
		Once()
	fx.addressRepo.EXPECT().
		FindFirstAddressByOwner(ctx, customer, repository.Designated(entity.FlagPrimary, entity.DirectionAsc)).
		Return(home, nil).
		Once()

	address, err := fx.service.GetPrimaryAddress(ctx, customer, "")
	require.NoError(t, err)
	assert.Equal(t, home, address)

	address, err = fx.service.GetPrimaryAddress(ctx, customer, entity.DirectionAsc)
	require.NoError(t, err)
	assert.Equal(t, home, address, "direction only breaks ties between several primaries")
}

func TestAddressService_DesignatedAccessors(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	for _, flag := range []entity.AddressFlag{entity.FlagBilling, entity.FlagShipping, entity.FlagPublic} {
		fx.addressRepo.EXPECT().
			FindFirstAddressByOwner(ctx, customer, repository.Designated(flag, entity.DirectionDesc)).
			Return(nil, repository.ErrAddressNotFound).
			Once()
	}

	billing, err := fx.service.GetBillingAddress(ctx, customer, entity.DirectionDesc)
	require.NoError(t, err)
	assert.Nil(t, billing)

	shipping, err := fx.service.GetShippingAddress(ctx, customer, entity.DirectionDesc)
	require.NoError(t, err)
	assert.Nil(t, shipping)

	public, err := fx.service.GetPublicAddress(ctx, customer, entity.DirectionDesc)
	require.NoError(t, err)
	assert.Nil(t, public)

	_, err = fx.service.GetDesignatedAddress(ctx, customer, "is_deleted", entity.DirectionDesc)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAddressService_GetNearestAddress(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	amsterdam := addressOf(customer, 1, "Amsterdam", withCoordinates(52.3731, 4.8922))
	unknown := addressOf(customer, 2, "No coordinates")
	rotterdam := addressOf(customer, 3, "Rotterdam", withCoordinates(51.9244, 4.4777))

	fx.addressRepo.EXPECT().
		FindAddressesByOwner(ctx, customer, repository.AddressQuery{}).
		Return([]*entity.Address{amsterdam, unknown, rotterdam}, nil).
		Once()
	fx.addressRepo.EXPECT().
		FindAddressesByOwner(ctx, stranger, repository.AddressQuery{}).
		Return([]*entity.Address{addressOf(stranger, 4, "No coordinates")}, nil).
		Once()

	// The Hague, closer to Rotterdam.
	nearest, err := fx.service.GetNearestAddress(ctx, customer, orb.Point{4.3007, 52.0705})
	require.NoError(t, err)
	assert.Equal(t, rotterdam, nearest)

	nearest, err = fx.service.GetNearestAddress(ctx, stranger, orb.Point{4.3007, 52.0705})
	require.NoError(t, err)
	assert.Nil(t, nearest)
}

func TestAddressService_DeleteOwner(t *testing.T) {
	tests := []struct {
		name  string
		purge bool
		mode  entity.DeleteMode
	}{
		{name: "soft", purge: false, mode: entity.SoftDelete},
		{name: "purge", purge: true, mode: entity.ForceDelete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAddressService(t)
			ctx := context.Background()

			fx.addressRepo.EXPECT().DeleteAddressesByOwner(ctx, customer, tt.mode).Return(int64(3), nil)

			var event *service.AddressEvent
			fx.expectEvent(service.EventOwnerAddressesDeleted, &event)

			count, err := fx.service.DeleteOwner(ctx, customer, tt.purge)
			require.NoError(t, err)
			assert.Equal(t, int64(3), count)
			assert.Equal(t, int64(3), event.Count)
			assert.Equal(t, tt.purge, event.Force)
		})
	}
}

func TestAddressService_PublishFailureDoesNotFailWrite(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	fx.addressRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishAddressEvent(ctx, mock.Anything).Return(errors.New("topic gone"))

	address, err := fx.service.AddAddress(ctx, customer, service.AddressFields{"label": "Home"})
	require.NoError(t, err)
	assert.NotNil(t, address)
	assert.InDelta(t, 1, testutil.ToFloat64(fx.metrics.EventsPublished.WithLabelValues("address.created", "failure")), 0)
}
