package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := New(server.URL, WithToken("test-token"))
	t.Cleanup(func() { _ = c.Close() })

	return server, c
}

func writeEnvelope(w http.ResponseWriter, status int, data any, meta *Meta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"data":    data,
		"meta":    meta,
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}

func TestSalesChannelsService_List(t *testing.T) {
	t.Run("returns channels and serves repeats from cache", func(t *testing.T) {
		var hits atomic.Int64
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			assert.Equal(t, "/api/v1/sales-channels", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			writeEnvelope(w, http.StatusOK, []map[string]any{
				{"id": "sc-1", "name": "Webshop"},
			}, &Meta{Count: 1, Skip: 0, Take: 50})
		})

		ctx := context.Background()

		channels, meta, err := c.SalesChannels.List(ctx, ListSalesChannelsParams{})
		require.NoError(t, err)
		require.Len(t, channels, 1)
		assert.Equal(t, "Webshop", channels[0].Name)
		require.NotNil(t, meta)
		assert.Equal(t, int64(1), meta.Count)

		// Second identical call hits the cache, not the server
		_, _, err = c.SalesChannels.List(ctx, ListSalesChannelsParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), hits.Load())
	})

	t.Run("different params bypass the cached entry", func(t *testing.T) {
		var hits atomic.Int64
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			writeEnvelope(w, http.StatusOK, []map[string]any{}, &Meta{})
		})

		ctx := context.Background()

		_, _, err := c.SalesChannels.List(ctx, ListSalesChannelsParams{})
		require.NoError(t, err)
		_, _, err = c.SalesChannels.List(ctx, ListSalesChannelsParams{Search: "web"})
		require.NoError(t, err)

		assert.Equal(t, int64(2), hits.Load())
	})
}

func TestSalesChannelsService_Mutations(t *testing.T) {
	t.Run("create invalidates cached lists", func(t *testing.T) {
		var listHits atomic.Int64
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				listHits.Add(1)
				writeEnvelope(w, http.StatusOK, []map[string]any{}, &Meta{})
			case http.MethodPost:
				writeEnvelope(w, http.StatusCreated, map[string]any{"id": "sc-2", "name": "Outlet"}, nil)
			}
		})

		ctx := context.Background()

		_, _, err := c.SalesChannels.List(ctx, ListSalesChannelsParams{})
		require.NoError(t, err)

		created, err := c.SalesChannels.Create(ctx, CreateSalesChannelInput{Name: "Outlet"})
		require.NoError(t, err)
		assert.Equal(t, "Outlet", created.Name)

		// List refetches because the mutation dropped the cached entry
		_, _, err = c.SalesChannels.List(ctx, ListSalesChannelsParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), listHits.Load())
	})

	t.Run("delete returns no error on 204", func(t *testing.T) {
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		})

		err := c.SalesChannels.Delete(context.Background(), "sc-1")
		assert.NoError(t, err)
	})

	t.Run("surfaces API errors", func(t *testing.T) {
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeError(w, http.StatusNotFound, "ERR_NOT_FOUND", "Resource not found")
		})

		_, err := c.SalesChannels.Retrieve(context.Background(), "missing")
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Equal(t, "ERR_NOT_FOUND", apiErr.Code)
	})
}

func TestCustomShippingOptionsService(t *testing.T) {
	t.Run("creates overrides for a cart and invalidates cart reads", func(t *testing.T) {
		var listHits atomic.Int64
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				listHits.Add(1)
				writeEnvelope(w, http.StatusOK, []map[string]any{}, &Meta{})
			case http.MethodPost:
				var body createCustomShippingOptionsBody
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				require.Len(t, body.Options, 1)
				writeEnvelope(w, http.StatusCreated, []map[string]any{
					{"id": "cso-1", "cart_id": "cart-1", "shipping_option_id": body.Options[0].ShippingOptionID, "price": "4.50"},
				}, nil)
			}
		})

		ctx := context.Background()

		_, _, err := c.CustomShippingOptions.ListForCart(ctx, "cart-1", ListCustomShippingOptionsParams{})
		require.NoError(t, err)

		created, err := c.CustomShippingOptions.CreateForCart(ctx, "cart-1", CreateCustomShippingOptionInput{
			ShippingOptionID: "so-1",
			Price:            decimal.RequireFromString("4.50"),
		})
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.True(t, created[0].Price.Equal(decimal.RequireFromString("4.50")))

		_, _, err = c.CustomShippingOptions.ListForCart(ctx, "cart-1", ListCustomShippingOptionsParams{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), listHits.Load())
	})

	t.Run("retrieves a single override", func(t *testing.T) {
		_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/custom-shipping-options/cso-1", r.URL.Path)
			writeEnvelope(w, http.StatusOK, map[string]any{"id": "cso-1", "price": "8.00"}, nil)
		})

		option, err := c.CustomShippingOptions.Retrieve(context.Background(), "cso-1")
		require.NoError(t, err)
		assert.Equal(t, "cso-1", option.ID)
	})
}
