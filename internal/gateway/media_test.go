package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cellmart/pos-client/internal/session"
)

func TestMediaURLStripsAPISuffix(t *testing.T) {
	client := NewClient("https://pos.example.com/api", session.NewStore("", ""))

	assert.Equal(t, "https://pos.example.com/media/logo.png", client.MediaURL("/media/logo.png"))
	assert.Equal(t, "https://pos.example.com/media/logo.png", client.MediaURL("media/logo.png"))
	// Absolute URLs pass through untouched.
	assert.Equal(t, "https://cdn.example.com/l.png", client.MediaURL("https://cdn.example.com/l.png"))
}

func TestFetchMedia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/media/logo.png" {
			assert.Empty(t, r.Header.Get("Authorization"), "media fetches skip auth")
			w.Write([]byte("png-bytes"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	creds := session.NewStore("", "")
	require.NoError(t, creds.Set("tok", "ref"))
	client := NewClient(srv.URL+"/api", creds, WithHTTPClient(srv.Client()))

	data, err := client.FetchMedia(context.Background(), "/media/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	_, err = client.FetchMedia(context.Background(), "/media/missing.png")
	assert.Error(t, err)
}
