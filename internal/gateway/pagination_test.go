package gateway

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapPaginatedEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":1},{"id":2}],"count":2,"next":null,"previous":null}`))
	}))

	resp, err := client.Do(context.Background(), http.MethodGet, "/sales/", nil, nil)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(resp.Body))
	require.NotNil(t, resp.Page)
	assert.Equal(t, int64(2), resp.Page.Count)
	assert.Nil(t, resp.Page.Next)
	assert.Nil(t, resp.Page.Previous)
}

func TestUnwrapKeepsNextPreviousLinks(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[],"count":30,"next":"/api/sales/?page=3","previous":"/api/sales/?page=1"}`))
	}))

	resp, err := client.Do(context.Background(), http.MethodGet, "/sales/", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, resp.Page)
	require.NotNil(t, resp.Page.Next)
	assert.Equal(t, "/api/sales/?page=3", *resp.Page.Next)
	require.NotNil(t, resp.Page.Previous)
	assert.Equal(t, "/api/sales/?page=1", *resp.Page.Previous)
}

func TestBareArrayPassesThrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":7}]`))
	}))

	resp, err := client.Do(context.Background(), http.MethodGet, "/sales/", nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":7}]`, string(resp.Body))
	assert.Nil(t, resp.Page)
}

func TestPlainObjectPassesThrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"name":"Nokia 3310"}`))
	}))

	resp, err := client.Do(context.Background(), http.MethodGet, "/products/1/", nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Nokia 3310"}`, string(resp.Body))
	assert.Nil(t, resp.Page)
}

func TestObjectWithNonArrayResultsPassesThrough(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":"summary text","count":1}`))
	}))

	resp, err := client.Do(context.Background(), http.MethodGet, "/reports/", nil, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":"summary text","count":1}`, string(resp.Body))
	assert.Nil(t, resp.Page)
}
