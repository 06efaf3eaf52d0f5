package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"reolink-cli/pkg/models"
)

// Snapshot grabs a JPEG still frame from the given channel.
// Returns the binary byte slice of the image.
func (c *Client) Snapshot(channel int) ([]byte, error) {
	req := c.HTTP.R().
		SetQueryParam("cmd", "Snap").
		SetQueryParam("channel", strconv.Itoa(channel)).
		// Cache buster the vendor requires on Snap requests
		SetQueryParam("rs", strconv.FormatInt(time.Now().UnixNano(), 36))

	if token := c.Token(); token != "" {
		req.SetQueryParam("token", token)
	}

	resp, err := req.Get(apiPath)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("snapshot failed: unexpected HTTP status %s", resp.Status())
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: Snap: empty body", ErrMalformedResponse)
	}

	// A failed Snap comes back as a JSON error envelope instead of an image.
	if body[0] == '[' {
		var results []models.CommandResult
		if err := json.Unmarshal(body, &results); err != nil {
			return nil, fmt.Errorf("%w: Snap: %v", ErrMalformedResponse, err)
		}
		return nil, checkFirst("Snap", results)
	}

	c.log.Debug().Str("contentType", resp.Header().Get("Content-Type")).Int("bytes", len(body)).Msg("got snapshot")
	return body, nil
}
