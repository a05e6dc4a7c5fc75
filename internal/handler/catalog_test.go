package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/metro-ticket-booking/internal/model"
)

// fakeStationLister and fakePriceLister return canned catalogs, or an
// error when set, to exercise the degraded path.
type fakeStationLister struct {
	stations []model.Station
	err      error
}

func (f *fakeStationLister) ListActive(context.Context) ([]model.Station, error) {
	return f.stations, f.err
}

type fakePriceLister struct {
	prices []model.Price
	err    error
}

func (f *fakePriceLister) ListActive(context.Context) ([]model.Price, error) {
	return f.prices, f.err
}

func setupCatalogAPI(stations *fakeStationLister, prices *fakePriceLister) *echo.Echo {
	h := NewCatalogHandler(stations, prices)
	e := echo.New()
	e.GET("/v1/stations", h.ListStations)
	e.GET("/v1/prices", h.ListPrices)
	return e
}

func TestListStations(t *testing.T) {
	e := setupCatalogAPI(&fakeStationLister{stations: []model.Station{
		{Code: "central", Name: "Central Station", Position: 1, IsActive: true},
		{Code: "riverside", Name: "Riverside", Position: 2, IsActive: true},
	}}, &fakePriceLister{})

	w := do(e, http.MethodGet, "/v1/stations")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []PublicStation `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, PublicStation{Code: "central", Name: "Central Station", Position: 1}, resp.Items[0])
	assert.Equal(t, uint32(2), resp.Items[1].Position)
}

func TestListStations_EmptyCatalog(t *testing.T) {
	e := setupCatalogAPI(&fakeStationLister{}, &fakePriceLister{})

	w := do(e, http.MethodGet, "/v1/stations")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}

func TestListPrices(t *testing.T) {
	e := setupCatalogAPI(&fakeStationLister{}, &fakePriceLister{prices: []model.Price{
		{TicketType: "day-pass", AmountCents: 800, Description: "Unlimited travel for one day", IsActive: true},
		{TicketType: "regular", AmountCents: 250, Description: "Standard single journey", IsActive: true},
	}})

	w := do(e, http.MethodGet, "/v1/prices")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []PublicPrice `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, 8.00, resp.Items[0].Price)
	assert.Equal(t, 2.50, resp.Items[1].Price)
}

func TestCatalog_StoreFailure(t *testing.T) {
	e := setupCatalogAPI(
		&fakeStationLister{err: errors.New("connection refused")},
		&fakePriceLister{err: errors.New("connection refused")},
	)

	assert.Equal(t, http.StatusInternalServerError, do(e, http.MethodGet, "/v1/stations").Code)
	assert.Equal(t, http.StatusInternalServerError, do(e, http.MethodGet, "/v1/prices").Code)
}
