package gateway

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestMiddleware mutates an outgoing request before dispatch.
type RequestMiddleware func(c *Client, req *http.Request) error

// ResponseMiddleware normalizes a response before it reaches the caller.
type ResponseMiddleware func(c *Client, resp *Response) error

// The pipelines run in a fixed declared order. refresh-and-retry is the one
// cross-cutting concern not expressed here: it needs to replay the whole
// request, so it lives in Client.recoverAuth.
func defaultRequestPipeline() []RequestMiddleware {
	return []RequestMiddleware{
		tagRequestID,
		attachAuth,
		invalidateCacheOnWrite,
	}
}

func defaultResponsePipeline() []ResponseMiddleware {
	return []ResponseMiddleware{
		unwrapPagination,
	}
}

// tagRequestID stamps every outgoing request with a correlation ID.
func tagRequestID(c *Client, req *http.Request) error {
	if req.Header.Get("X-Request-ID") == "" {
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
	return nil
}

// attachAuth adds the bearer credential when an access token is stored.
func attachAuth(c *Client, req *http.Request) error {
	if tok := c.creds.Access(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return nil
}

// invalidateCacheOnWrite purges the entire list cache before any non-read
// request: server state may have changed, so every cached list risks
// staleness. Coarse on purpose.
func invalidateCacheOnWrite(c *Client, req *http.Request) error {
	if req.Method != http.MethodGet {
		c.cache.purge()
	}
	return nil
}
