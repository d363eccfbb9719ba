package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"addressbook/config"
	deliveryhttp "addressbook/internal/delivery/http"
	"addressbook/internal/delivery/http/middleware"
	"addressbook/internal/delivery/http/router"
	"addressbook/internal/delivery/http/router/handler"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	mockUsecase "addressbook/internal/mocks/usecase"
	"addressbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var customer = entity.NewOwnerRef("customer", 7)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) (*echo.Echo, *mockUsecase.MockAddressUsecase) {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Addresses.OwnerTypes = []string{"customer"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	addressUC := mockUsecase.NewMockAddressUsecase(t)
	e := deliveryhttp.NewEcho(cfg, logger, router.RouterParams{
		AddressHandler:  handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: addressUC, Logger: logger}),
		OwnerMiddleware: middleware.NewOwnerMiddleware(cfg),
		Config:          cfg,
	})

	return e, addressUC
}

func serve(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestHealthCheck(t *testing.T) {
	e, _ := newTestServer(t)

	rec, env := serve(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAddressHandler_CreateAddress(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().
		AddAddress(mock.Anything, customer, service.AddressFields{"label": "Home", "country": "NL", "is_primary": true}).
		Return(&entity.Address{ID: 3, OwnerType: "customer", OwnerID: 7, Label: "Home", Country: "NL", IsPrimary: true}, nil)

	rec, env := serve(t, e, http.MethodPost, "/owners/customer/7/addresses", `{"label":"Home","country":"NL","is_primary":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var address entity.Address
	require.NoError(t, json.Unmarshal(env.Data, &address))
	assert.Equal(t, uint64(3), address.ID)
	assert.Equal(t, "Home", address.Label)
	assert.True(t, address.IsPrimary)
}

func TestAddressHandler_CreateAddress_ValidationErrorListsMessages(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().
		AddAddress(mock.Anything, customer, mock.Anything).
		Return(nil, domainerrors.NewValidationError("The country field must be 2 characters."))

	rec, env := serve(t, e, http.MethodPost, "/owners/customer/7/addresses", `{"label":"X","country":"USA"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, []any{"The country field must be 2 characters."}, env.Error.Details)
}

func TestAddressHandler_CreateAddress_RejectsNonObjectBody(t *testing.T) {
	e, _ := newTestServer(t)

	rec, env := serve(t, e, http.MethodPost, "/owners/customer/7/addresses", `["label"]`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAddressHandler_UnknownOwnerType(t *testing.T) {
	e, _ := newTestServer(t)

	rec, env := serve(t, e, http.MethodGet, "/owners/invoice/7/addresses", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "OWNER_TYPE_INVALID", env.Error.Code)

	rec, env = serve(t, e, http.MethodGet, "/owners/customer/abc/addresses", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_OWNER_ID", env.Error.Code)
}

func TestAddressHandler_ListAddresses_ParsesQuery(t *testing.T) {
	e, addressUC := newTestServer(t)

	want := repository.AddressQuery{
		Flags:   []repository.FlagFilter{{Flag: entity.FlagPrimary, Value: true}},
		Country: "nl",
		OrderBy: &repository.AddressOrder{Flag: entity.FlagBilling, Direction: entity.DirectionAsc},
	}
	addressUC.EXPECT().
		GetAddresses(mock.Anything, customer, want).
		Return([]*entity.Address{{ID: 1, Label: "Home"}}, nil)

	rec, env := serve(t, e, http.MethodGet, "/owners/customer/7/addresses?is_primary=true&country=nl&order_by=is_billing&direction=asc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var addresses []entity.Address
	require.NoError(t, json.Unmarshal(env.Data, &addresses))
	require.Len(t, addresses, 1)
	assert.Equal(t, "Home", addresses[0].Label)
}

func TestAddressHandler_ListAddresses_RejectsUnknownOrder(t *testing.T) {
	e, _ := newTestServer(t)

	rec, _ := serve(t, e, http.MethodGet, "/owners/customer/7/addresses?order_by=label", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddressHandler_GetAddress_Errors(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().GetAddress(mock.Anything, customer, uint64(4)).Return(nil, domainerrors.ErrAddressNotFound)
	addressUC.EXPECT().GetAddress(mock.Anything, customer, uint64(5)).Return(nil, domainerrors.ErrAddressOwnershipViolation)

	rec, env := serve(t, e, http.MethodGet, "/owners/customer/7/addresses/4", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ADDRESS_NOT_FOUND", env.Error.Code)

	rec, env = serve(t, e, http.MethodGet, "/owners/customer/7/addresses/5", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "ADDRESS_OWNERSHIP_VIOLATION", env.Error.Code)

	rec, _ = serve(t, e, http.MethodGet, "/owners/customer/7/addresses/0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddressHandler_UpdateAddress(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().
		UpdateAddress(mock.Anything, customer, uint64(4), service.AddressFields{"label": "Office", "city": nil}).
		Return(&entity.Address{ID: 4, Label: "Office"}, nil)

	rec, _ := serve(t, e, http.MethodPatch, "/owners/customer/7/addresses/4", `{"label":"Office","city":null}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().
		DeleteAddress(mock.Anything, customer, entity.ByID(4), entity.ForceDelete).
		Return([]usecase.DeleteOutcome{{AddressID: 4, Status: usecase.DeleteStatusDeleted}}, nil)

	rec, env := serve(t, e, http.MethodDelete, "/owners/customer/7/addresses/4?force=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"outcomes":[{"address_id":4,"status":"deleted"}]}`, string(env.Data))
}

func TestAddressHandler_BatchDelete(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().
		DeleteAddress(mock.Anything, customer, entity.IDs(1, 2), entity.SoftDelete).
		Return([]usecase.DeleteOutcome{
			{AddressID: 1, Status: usecase.DeleteStatusDeleted},
			{AddressID: 2, Status: usecase.DeleteStatusNotOwned},
		}, nil)

	rec, env := serve(t, e, http.MethodPost, "/owners/customer/7/addresses/delete", `{"ids":[1,2]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"outcomes":[{"address_id":1,"status":"deleted"},{"address_id":2,"status":"not_owned"}]}`, string(env.Data))

	rec, env = serve(t, e, http.MethodPost, "/owners/customer/7/addresses/delete", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestAddressHandler_ContainsAndExists(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().HasAddress(mock.Anything, customer, entity.IDs(9, 1)).Return(true, nil)
	addressUC.EXPECT().HasAddresses(mock.Anything, customer).Return(false, nil)

	rec, env := serve(t, e, http.MethodGet, "/owners/customer/7/addresses/contains?ids=9,1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"has_address":true}`, string(env.Data))

	rec, env = serve(t, e, http.MethodGet, "/owners/customer/7/addresses/exists", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"has_addresses":false}`, string(env.Data))

	rec, _ = serve(t, e, http.MethodGet, "/owners/customer/7/addresses/contains?ids=one", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddressHandler_Labels(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().GetAddressLabels(mock.Anything, customer).Return([]string{"Home", "Work"}, nil)

	_, env := serve(t, e, http.MethodGet, "/owners/customer/7/addresses/labels", "")
	assert.JSONEq(t, `["Home","Work"]`, string(env.Data))
}

func TestAddressHandler_Designated(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().
		GetDesignatedAddress(mock.Anything, customer, entity.FlagPrimary, entity.DirectionDesc).
		Return(&entity.Address{ID: 1, Label: "Home", IsPrimary: true}, nil)
	addressUC.EXPECT().
		GetDesignatedAddress(mock.Anything, customer, entity.FlagShipping, entity.DirectionAsc).
		Return(nil, nil)

	rec, env := serve(t, e, http.MethodGet, "/owners/customer/7/addresses/primary", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"label":"Home"`)

	rec, _ = serve(t, e, http.MethodGet, "/owners/customer/7/addresses/shipping?direction=ASC", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":null`)

	rec, _ = serve(t, e, http.MethodGet, "/owners/customer/7/addresses/billing?direction=sideways", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddressHandler_Nearest(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().
		GetNearestAddress(mock.Anything, customer, orb.Point{4.3, 52.07}).
		Return(&entity.Address{ID: 2, Label: "Rotterdam"}, nil)

	rec, _ := serve(t, e, http.MethodGet, "/owners/customer/7/addresses/nearest?lat=52.07&lng=4.3", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(t, e, http.MethodGet, "/owners/customer/7/addresses/nearest?lat=52.07", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = serve(t, e, http.MethodGet, "/owners/customer/7/addresses/nearest?lat=123&lng=4.3", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddressHandler_DeleteOwner(t *testing.T) {
	e, addressUC := newTestServer(t)

	addressUC.EXPECT().DeleteOwner(mock.Anything, customer, true).Return(int64(3), nil)

	rec, env := serve(t, e, http.MethodDelete, "/owners/customer/7?purge=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":3}`, string(env.Data))
}
