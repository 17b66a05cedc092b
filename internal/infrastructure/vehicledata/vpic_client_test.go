package vehicledata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"instant_offer/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL+"/api/vehicles", time.Second, nil)
	require.NoError(t, err)
	return c
}

func TestClient_DecodeVIN(t *testing.T) {
	t.Run("full decode", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/vehicles/DecodeVinValues/4T1BF1FK5FU000000", r.URL.Path)
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			_, _ = w.Write([]byte(`{"Count":1,"Results":[{"ModelYear":"2015","Make":"TOYOTA","Model":"Camry","Trim":"LE","ErrorCode":"0"}]}`))
		})
		attrs, err := c.DecodeVIN(context.Background(), "4T1BF1FK5FU000000")
		require.NoError(t, err)
		assert.Equal(t, 2015, attrs.Year)
		assert.Equal(t, "Toyota", attrs.Make)
		assert.Equal(t, "Camry", attrs.Model)
		assert.Equal(t, "LE", attrs.Trim)
	})

	t.Run("partial decode", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"Results":[{"ModelYear":"2015","Make":"BMW","Model":"","ErrorCode":"1,5"}]}`))
		})
		attrs, err := c.DecodeVIN(context.Background(), "WBA00000000000000")
		assert.True(t, errors.Is(err, interfaces.ErrVINPartialData))
		assert.Equal(t, "BMW", attrs.Make)
		assert.Equal(t, 2015, attrs.Year)
	})

	t.Run("not decodable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"Results":[{"ModelYear":"","Make":"","Model":"","ErrorCode":"11","ErrorText":"Incorrect Model Year"}]}`))
		})
		_, err := c.DecodeVIN(context.Background(), "00000000000000000")
		assert.True(t, errors.Is(err, interfaces.ErrVINNotDecodable))
	})

	t.Run("service unavailable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		_, err := c.DecodeVIN(context.Background(), "4T1BF1FK5FU000000")
		assert.True(t, errors.Is(err, interfaces.ErrVehicleServiceUnavailable))
	})

	t.Run("malformed body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		})
		_, err := c.DecodeVIN(context.Background(), "4T1BF1FK5FU000000")
		assert.True(t, errors.Is(err, interfaces.ErrVehicleServiceUnavailable))
	})
}

func TestClient_Catalogue(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/GetMakesForVehicleType/car"):
			_, _ = w.Write([]byte(`{"Results":[{"MakeName":"TOYOTA"},{"MakeName":"LAND ROVER"}]}`))
		case strings.HasSuffix(r.URL.Path, "/GetMakesForVehicleType/truck"):
			_, _ = w.Write([]byte(`{"Results":[{"MakeName":"GMC"}]}`))
		case strings.HasSuffix(r.URL.Path, "/GetModelsForMakeYear/make/Toyota/modelyear/2015"):
			_, _ = w.Write([]byte(`{"Results":[{"Model_Name":"Camry"},{"Model_Name":"Tacoma"}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	makes, err := c.Makes(context.Background(), 2015)
	require.NoError(t, err)
	assert.Equal(t, []string{"Toyota", "Land Rover", "GMC"}, makes)

	models, err := c.Models(context.Background(), 2015, "Toyota")
	require.NoError(t, err)
	assert.Equal(t, []string{"Camry", "Tacoma"}, models)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("not a url", time.Second, nil)
	assert.Error(t, err)
}
