package solver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/hadar-solver/hadar-go/domain"
)

// requestIDHeader correlates a remote solve with its server-side log
// lines, the same role cloudlus's job id plays across Run/Fetch.
const requestIDHeader = "X-Hadar-Request-Id"

// SolveRemote serializes study, POSTs it to url with token as a query
// parameter, and deserializes the response into a Result (spec §6.2).
// Grounded on rwcarlsen-cloudlus/cloudlus/client.go's Run/Start request
// shape, re-expressed over net/http+REST instead of net/rpc since the
// wire contract here is a single POST/response, not a job queue.
func SolveRemote(ctx context.Context, study *domain.Study, rawURL, token string) (*domain.Result, error) {
	body, err := encodeStudy(study)
	if err != nil {
		return nil, fmt.Errorf("solver: encoding study: %w", err)
	}

	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("solver: parsing remote url: %w", err)
	}
	q := target.Query()
	q.Set("token", token)
	target.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, TimeoutError{}
		}
		return nil, RemoteIOError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, RemoteIOError{Status: resp.StatusCode, Err: err}
		}
		result, err := decodeResult(data)
		if err != nil {
			return nil, RemoteIOError{Status: resp.StatusCode, Err: err}
		}
		return result, nil
	case resp.StatusCode == http.StatusForbidden, resp.StatusCode == http.StatusNotFound:
		return nil, AuthError{Status: resp.StatusCode}
	case resp.StatusCode >= 500:
		return nil, RemoteIOError{Status: resp.StatusCode}
	default:
		return nil, fmt.Errorf("solver: remote returned unexpected status %d", resp.StatusCode)
	}
}
