package gateway

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/cellmart/pos-client/pkg/apperror"
)

// MediaURL resolves a media path (e.g. a company logo) against the API
// origin with the /api suffix stripped: media is served from the site root,
// not under the API prefix.
func (c *Client) MediaURL(mediaPath string) string {
	if strings.HasPrefix(mediaPath, "http://") || strings.HasPrefix(mediaPath, "https://") {
		return mediaPath
	}
	origin := strings.TrimSuffix(c.baseURL, "/api")
	if !strings.HasPrefix(mediaPath, "/") {
		mediaPath = "/" + mediaPath
	}
	return origin + mediaPath
}

// FetchMedia downloads a media asset. Media requests skip the middleware
// pipeline: no auth header, no cache, no pagination.
func (c *Client) FetchMedia(ctx context.Context, mediaPath string) ([]byte, error) {
	u := c.MediaURL(mediaPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.hc.Do(req)
	if err != nil {
		return nil, apperror.NewTransportError("GET "+u, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, apperror.NewAPIError(httpResp.StatusCode, nil)
	}
	return io.ReadAll(httpResp.Body)
}
