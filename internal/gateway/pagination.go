package gateway

import (
	"bytes"
	"encoding/json"
)

// envelope is the server's paginated list shape. Callers never see it: the
// results array becomes the payload and the rest moves to Response.Page.
type envelope struct {
	Results  json.RawMessage `json:"results"`
	Count    int64           `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
}

// unwrapPagination replaces a paginated envelope body with its results array.
// Bare arrays and plain objects pass through unchanged.
func unwrapPagination(c *Client, resp *Response) error {
	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || body[0] != '{' {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// Not an envelope-shaped object; leave the payload alone.
		return nil
	}
	results := bytes.TrimSpace(env.Results)
	if len(results) == 0 || results[0] != '[' {
		return nil
	}

	resp.Body = env.Results
	resp.Page = &Page{Count: env.Count, Next: env.Next, Previous: env.Previous}
	return nil
}
