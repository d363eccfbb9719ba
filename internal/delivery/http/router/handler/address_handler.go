package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"addressbook/internal/delivery/http/middleware"
	"addressbook/internal/delivery/http/response"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const paramAddressID = "addressID"

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the address routes of a single owner.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// BatchDeleteRequest represents the request body for deleting several addresses at once
type BatchDeleteRequest struct {
	IDs   []uint64 `json:"ids" validate:"required,min=1,dive,gt=0"`
	Force bool     `json:"force"`
}

// NearestQuery represents the query of the nearest address lookup
type NearestQuery struct {
	Latitude  float64 `validate:"min=-90,max=90"`
	Longitude float64 `validate:"min=-180,max=180"`
}

// DeleteResult is the body returned by delete operations.
type DeleteResult struct {
	Outcomes []usecase.DeleteOutcome `json:"outcomes"`
}

// ListAddresses handles listing the owner's addresses.
// Query: is_public, is_primary, is_billing, is_shipping, country, order_by, direction.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	query, err := parseAddressQuery(c)
	if err != nil {
		return err
	}

	addresses, err := h.addressUC.GetAddresses(c.Request().Context(), owner, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses)
}

// CreateAddress handles adding an address from a JSON object of fields.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), owner, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address)
}

// GetAddress handles retrieving one of the owner's addresses.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	addressID, err := parseAddressID(c)
	if err != nil {
		return err
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), owner, addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address)
}

// UpdateAddress handles updating one of the owner's addresses.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	addressID, err := parseAddressID(c)
	if err != nil {
		return err
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), owner, addressID, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address)
}

// DeleteAddress handles deleting a single address. ?force=true erases it permanently.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	addressID, err := parseAddressID(c)
	if err != nil {
		return err
	}

	force, err := queryBool(c, "force")
	if err != nil {
		return err
	}

	return h.deleteAddresses(c, owner, entity.ByID(addressID), force)
}

// BatchDeleteAddresses handles deleting several addresses in one transaction.
func (h *AddressHandler) BatchDeleteAddresses(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	var req BatchDeleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid delete request")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	return h.deleteAddresses(c, owner, entity.IDs(req.IDs...), req.Force)
}

func (h *AddressHandler) deleteAddresses(c echo.Context, owner entity.Owner, ref entity.AddressRef, force bool) error {
	mode := entity.SoftDelete
	if force {
		mode = entity.ForceDelete
	}

	outcomes, err := h.addressUC.DeleteAddress(c.Request().Context(), owner, ref, mode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, DeleteResult{Outcomes: outcomes})
}

// GetLabels handles listing the labels of the owner's addresses.
func (h *AddressHandler) GetLabels(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	labels, err := h.addressUC.GetAddressLabels(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, labels)
}

// HasAddresses handles checking whether the owner has any address.
func (h *AddressHandler) HasAddresses(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	has, err := h.addressUC.HasAddresses(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"has_addresses": has})
}

// ContainsAddress handles checking whether any of ?ids=1,2 belongs to the owner.
func (h *AddressHandler) ContainsAddress(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	ids, err := parseIDList(c.QueryParam("ids"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "ids must be a comma separated list of address IDs")
	}

	has, err := h.addressUC.HasAddress(c.Request().Context(), owner, entity.IDs(ids...))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"has_address": has})
}

// GetNearestAddress handles finding the owner's address closest to ?lat=&lng=.
func (h *AddressHandler) GetNearestAddress(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	var query NearestQuery
	err = echo.QueryParamsBinder(c).
		MustFloat64("lat", &query.Latitude).
		MustFloat64("lng", &query.Longitude).
		BindError()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "lat and lng are required numbers")
	}

	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.GetNearestAddress(c.Request().Context(), owner, orb.Point{query.Longitude, query.Latitude})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address)
}

// Designated returns the handler for one designated address flag.
func (h *AddressHandler) Designated(flag entity.AddressFlag) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := h.owner(c)
		if err != nil {
			return err
		}

		direction, ok := entity.ParseDirection(c.QueryParam("direction"))
		if !ok {
			return response.BadRequest(c, "INVALID_DIRECTION", "direction must be asc or desc")
		}

		address, err := h.addressUC.GetDesignatedAddress(c.Request().Context(), owner, flag, direction)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, address)
	}
}

// DeleteOwner handles the owner deletion cascade. ?purge=true erases the addresses permanently.
func (h *AddressHandler) DeleteOwner(c echo.Context) error {
	owner, err := h.owner(c)
	if err != nil {
		return err
	}

	purge, err := queryBool(c, "purge")
	if err != nil {
		return err
	}

	count, err := h.addressUC.DeleteOwner(c.Request().Context(), owner, purge)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": count})
}

func (h *AddressHandler) owner(c echo.Context) (entity.OwnerRef, error) {
	owner, ok := middleware.OwnerFromContext(c)
	if !ok {
		h.logger.Error("Owner missing from request context", slog.String("path", c.Path()))

		return entity.OwnerRef{}, errors.WithStack(domainerrors.ErrInternalError)
	}

	return owner, nil
}

// bindFields decodes the JSON body into a field map. Path and query parameters are not merged in.
func bindFields(c echo.Context) (service.AddressFields, error) {
	fields := service.AddressFields{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object"))
	}

	return fields, nil
}

func parseAddressID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(paramAddressID), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid address ID"))
	}

	return id, nil
}

func parseIDList(raw string) ([]uint64, error) {
	var ids []uint64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be true or false"))
	}

	return value, nil
}

func parseAddressQuery(c echo.Context) (repository.AddressQuery, error) {
	var query repository.AddressQuery

	for _, flag := range entity.AllFlags() {
		if !c.QueryParams().Has(flag.String()) {
			continue
		}

		value, err := queryBool(c, flag.String())
		if err != nil {
			return query, err
		}
		query.Flags = append(query.Flags, repository.FlagFilter{Flag: flag, Value: value})
	}

	query.Country = c.QueryParam("country")

	if orderBy := c.QueryParam("order_by"); orderBy != "" {
		flag := entity.AddressFlag(orderBy)
		if !flag.IsValid() {
			return query, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("order_by must be one of is_public, is_primary, is_billing, is_shipping"))
		}

		direction, ok := entity.ParseDirection(c.QueryParam("direction"))
		if !ok {
			return query, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("direction must be asc or desc"))
		}
		query.OrderBy = &repository.AddressOrder{Flag: flag, Direction: direction}
	}

	return query, nil
}
