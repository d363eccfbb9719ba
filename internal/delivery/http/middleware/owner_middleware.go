package middleware

import (
	"strconv"

	"addressbook/config"
	"addressbook/internal/delivery/http/response"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

const (
	// ParamOwnerType and ParamOwnerID are the path parameters naming the owner.
	ParamOwnerType = "ownerType"
	ParamOwnerID   = "ownerID"

	keyOwner = "owner"
)

// OwnerMiddleware resolves the owner addressed by the route.
type OwnerMiddleware struct {
	addresses *config.AddressesConfig
}

// NewOwnerMiddleware is the constructor for OwnerMiddleware.
func NewOwnerMiddleware(cfg *config.Config) *OwnerMiddleware {
	addresses := cfg.Addresses
	if addresses == nil {
		addresses = config.DefaultAddressesConfig()
	}

	return &OwnerMiddleware{addresses: addresses}
}

// ResolveOwner parses the owner path parameters and stores the owner on the context.
// Unknown owner types are rejected before any handler runs.
func (m *OwnerMiddleware) ResolveOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerType := c.Param(ParamOwnerType)
		if !m.addresses.AllowsOwnerType(ownerType) {
			return response.AppError(c, domainerrors.ErrOwnerTypeInvalid.WithDetails("owner type "+strconv.Quote(ownerType)+" is not accepted"))
		}

		ownerID, err := strconv.ParseUint(c.Param(ParamOwnerID), 10, 64)
		if err != nil || ownerID == 0 {
			return response.BadRequest(c, "INVALID_OWNER_ID", "Invalid owner ID")
		}

		c.Set(keyOwner, entity.NewOwnerRef(ownerType, ownerID))

		return next(c)
	}
}

// OwnerFromContext returns the owner stored by ResolveOwner.
func OwnerFromContext(c echo.Context) (entity.OwnerRef, bool) {
	owner, ok := c.Get(keyOwner).(entity.OwnerRef)

	return owner, ok
}
