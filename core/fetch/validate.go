// ABOUTME: Response validation shared by the feed and topics services
// ABOUTME: Checks status and content type, then drains the body exactly once

package fetch

import (
	"fmt"
	"io"
	"strings"

	"medium-feed-client/core/errors"
	"medium-feed-client/core/interfaces"
)

// ReadBody validates a response and returns its body.
//
// It fails with an UpstreamError when the status code is outside the 2xx
// range or when the Content-Type header does not contain wantType
// (case-insensitive substring match, so "text/xml; charset=UTF-8" passes
// for "text/xml"). The body is consumed and closed exactly once.
func ReadBody(resp interfaces.Response, url, wantType string) ([]byte, error) {
	body := resp.Body()
	defer body.Close()

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, &errors.UpstreamError{
			StatusCode: status,
			Message:    fmt.Sprintf("status code %d", status),
			URL:        url,
		}
	}

	contentType := resp.Header("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), strings.ToLower(wantType)) {
		return nil, &errors.UpstreamError{
			StatusCode: status,
			Message:    fmt.Sprintf("expected content type %q, got %q", wantType, contentType),
			URL:        url,
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.WrapError(err, "failed to read response body")
	}

	return data, nil
}
