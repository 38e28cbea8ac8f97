package gap

import "errors"

// ErrUpstream marks a failed or malformed response from the analysis
// provider. Retryable; no persisted state changes on this path.
var ErrUpstream = errors.New("upstream analyzer failure")
