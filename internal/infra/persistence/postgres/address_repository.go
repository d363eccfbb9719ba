// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"addressbook/config"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db       *gorm.DB
	columns  config.AddressColumns
	relation string
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB, cfg *config.Config) repository.AddressRepository {
	return newAddressRepository(db, cfg.Addresses)
}

func newAddressRepository(db *gorm.DB, cfg *config.AddressesConfig) *addressRepository {
	return &addressRepository{
		db:       db,
		columns:  cfg.Columns,
		relation: cfg.Relation,
	}
}

// CreateAddress persists a new address for an owner.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	addressM.ID = 0
	addressM.Relation = repo.relation

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return translateWriteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.Relation = addressM.Relation
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves a live address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uint64) (*entity.Address, error) {
	var addressM model.AddressModel

	err := repo.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).
		Take(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// UpdateAddress writes every mutable attribute of an existing live address.
// Ownership columns and the creation timestamp are never rewritten.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	addressM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(addressM).
		Select("*").
		Omit("ID", "OwnerType", "OwnerID", "Relation", "CreatedAt", "DeletedAt").
		Updates(addressM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uint64, mode entity.DeleteMode) (bool, error) {
	result := repo.scoped(ctx, mode).
		Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "failed to %s delete address", mode)
	}

	return result.RowsAffected > 0, nil
}

// FindAddressesByOwner retrieves the owner's live addresses narrowed by the query.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, owner entity.Owner, query repository.AddressQuery) ([]*entity.Address, error) {
	tx, err := repo.ownerQuery(ctx, owner, query)
	if err != nil {
		return nil, err
	}

	var addressModels []*model.AddressModel
	if err := tx.Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// FindFirstAddressByOwner returns the first address matching the query.
func (repo *addressRepository) FindFirstAddressByOwner(ctx context.Context, owner entity.Owner, query repository.AddressQuery) (*entity.Address, error) {
	tx, err := repo.ownerQuery(ctx, owner, query)
	if err != nil {
		return nil, err
	}

	var addressM model.AddressModel
	if err := tx.Limit(1).Take(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find first address by owner")
	}

	return toAddressDomain(&addressM), nil
}

// CountAddressesByOwner returns the number of live addresses of the owner.
func (repo *addressRepository) CountAddressesByOwner(ctx context.Context, owner entity.Owner) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where(repo.ownerCondition(owner)).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses by owner")
	}

	return count, nil
}

// DeleteAddressesByOwner removes every address of the owner.
// A force delete also erases rows that were soft-deleted earlier.
func (repo *addressRepository) DeleteAddressesByOwner(ctx context.Context, owner entity.Owner, mode entity.DeleteMode) (int64, error) {
	result := repo.scoped(ctx, mode).
		Where(repo.ownerCondition(owner)).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return 0, errors.Wrapf(result.Error, "failed to %s delete addresses by owner", mode)
	}

	return result.RowsAffected, nil
}

func (repo *addressRepository) scoped(ctx context.Context, mode entity.DeleteMode) *gorm.DB {
	tx := repo.db.WithContext(ctx)
	if mode == entity.ForceDelete {
		tx = tx.Unscoped()
	}

	return tx
}

func (repo *addressRepository) ownerCondition(owner entity.Owner) clause.Expression {
	return clause.And(
		clause.Eq{Column: clause.Column{Name: repo.columns.OwnerType}, Value: owner.OwnerType()},
		clause.Eq{Column: clause.Column{Name: repo.columns.OwnerID}, Value: owner.OwnerID()},
		clause.Eq{Column: clause.Column{Name: repo.columns.Relation}, Value: repo.relation},
	)
}

// ownerQuery builds the filtered, ordered query for an owner.
// Rows are ordered by the requested flag first, then by ID ascending.
func (repo *addressRepository) ownerQuery(ctx context.Context, owner entity.Owner, query repository.AddressQuery) (*gorm.DB, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where(repo.ownerCondition(owner))

	for _, filter := range query.Flags {
		if !filter.Flag.IsValid() {
			return nil, errors.Errorf("invalid address flag %q", filter.Flag)
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: filter.Flag.String()}, Value: filter.Value})
	}

	if query.Country != "" {
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: "country"}, Value: query.Country})
	}

	if query.OrderBy != nil {
		if !query.OrderBy.Flag.IsValid() {
			return nil, errors.Errorf("invalid address order flag %q", query.OrderBy.Flag)
		}
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: query.OrderBy.Flag.String()},
			Desc:   query.OrderBy.Direction.IsDesc(),
		})
	}

	return tx.Order(clause.OrderByColumn{Column: clause.PrimaryColumn}), nil
}

func translateWriteError(err error, details string) error {
	// Convert PostgreSQL errors to domain errors
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("missing required address information")
	}
	if isValueTooLong(err) || isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("address value rejected by the database")
	}

	// For other database errors, return a generic database error
	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	address := &entity.Address{
		ID:                 data.ID,
		OwnerType:          data.OwnerType,
		OwnerID:            data.OwnerID,
		Relation:           data.Relation,
		Label:              data.Label,
		Street:             data.Street,
		HouseNumber:        data.HouseNumber,
		HouseNumberPostfix: data.HouseNumberPostfix,
		PostalCode:         data.PostalCode,
		City:               data.City,
		State:              data.State,
		Country:            data.Country,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		IsPublic:           data.IsPublic,
		IsPrimary:          data.IsPrimary,
		IsBilling:          data.IsBilling,
		IsShipping:         data.IsShipping,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	if data.DeletedAt.Valid {
		deletedAt := data.DeletedAt.Time
		address.DeletedAt = &deletedAt
	}

	return address
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	addressM := &model.AddressModel{
		ID:                 data.ID,
		OwnerType:          data.OwnerType,
		OwnerID:            data.OwnerID,
		Relation:           data.Relation,
		Label:              data.Label,
		Street:             data.Street,
		HouseNumber:        data.HouseNumber,
		HouseNumberPostfix: data.HouseNumberPostfix,
		PostalCode:         data.PostalCode,
		City:               data.City,
		State:              data.State,
		Country:            data.Country,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		IsPublic:           data.IsPublic,
		IsPrimary:          data.IsPrimary,
		IsBilling:          data.IsBilling,
		IsShipping:         data.IsShipping,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	if data.DeletedAt != nil {
		addressM.DeletedAt = gorm.DeletedAt{Time: *data.DeletedAt, Valid: true}
	}

	return addressM
}
