package httpclient_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/BrandyMint/moysklad/apierror"
	"github.com/BrandyMint/moysklad/httpclient"
	"github.com/BrandyMint/moysklad/testutil"
	"github.com/stretchr/testify/require"
)

type orderList struct {
	Meta struct {
		Size int `json:"size"`
	} `json:"meta"`
	Rows []struct {
		Name string  `json:"name"`
		Sum  float64 `json:"sum"`
	} `json:"rows"`
}

func TestGetJSON_MapsPayloadIntoType(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, testutil.Reply{
		StatusCode:  http.StatusOK,
		ContentType: "application/json",
		Body:        []byte(`{"meta":{"size":1},"rows":[{"name":"00001","sum":1250.5}]}`),
	})

	orders, err := httpclient.GetJSON[orderList](t.Context(), httpclient.New(server.URL), "/entity/customerorder")

	require.NoError(t, err)
	require.Equal(t, 1, orders.Meta.Size)
	require.Len(t, orders.Rows, 1)
	require.Equal(t, "00001", orders.Rows[0].Name)
	require.InDelta(t, 1250.5, orders.Rows[0].Sum, 0.0001)
}

func TestGetJSON_ReturnsClassifiedError(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, testutil.Reply{
		StatusCode:  http.StatusNotFound,
		ContentType: "application/json",
		Body:        []byte(`{"errors":[{"error":"not found"}]}`),
	})

	orders, err := httpclient.GetJSON[orderList](t.Context(), httpclient.New(server.URL), "/entity/customerorder/x")

	testutil.AssertAPIError(t, err, apierror.KindNotFound, http.StatusNotFound)
	require.Empty(t, orders.Rows)
}

func TestGetJSON_TypeMismatch(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, testutil.Reply{
		StatusCode:  http.StatusOK,
		ContentType: "application/json",
		Body:        []byte(`{"meta":"not an object"}`),
	})

	_, err := httpclient.GetJSON[orderList](t.Context(), httpclient.New(server.URL), "/entity/customerorder")

	require.ErrorIs(t, err, httpclient.ErrDecodeResponse)
}

func TestWriteHelpers(t *testing.T) {
	t.Parallel()

	server := testutil.NewServer(t, testutil.Reply{
		StatusCode:  http.StatusOK,
		ContentType: "application/json",
		Body:        []byte(`{"id":"7","version":3}`),
	})

	type entityRef struct {
		ID      string      `json:"id"`
		Version json.Number `json:"version"`
	}

	client := httpclient.New(server.URL)

	created, err := httpclient.PostJSON[entityRef](t.Context(), client, "/entity/product", map[string]string{"name": "x"})
	require.NoError(t, err)
	require.Equal(t, entityRef{ID: "7", Version: "3"}, created)

	updated, err := httpclient.PutJSON[entityRef](t.Context(), client, "/entity/product/7", map[string]string{"name": "y"})
	require.NoError(t, err)
	require.Equal(t, "7", updated.ID)

	deleted, err := httpclient.DeleteJSON[map[string]any](t.Context(), client, "/entity/product/7")
	require.NoError(t, err)
	require.Equal(t, "7", deleted["id"])

	patched, err := httpclient.DoJSON[entityRef](t.Context(), client, http.MethodPatch, "/entity/product/7", nil)
	require.NoError(t, err)
	require.Equal(t, json.Number("3"), patched.Version)
}
