package steam

import "fmt"

// UpstreamError covers network failures, non-success HTTP statuses and
// malformed response envelopes from the Steam Web API.
type UpstreamError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("upstream %s: status %d", e.Endpoint, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// NotFoundError reports a match id the upstream does not know. Steam signals
// this with an error field inside an HTTP 200 body, not a status code.
type NotFoundError struct {
	MatchID string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("match %s not found upstream: %s", e.MatchID, e.Message)
}
