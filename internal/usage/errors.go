package usage

import "errors"

// ErrLimitReached is returned when a consume would exceed the plan limit.
var ErrLimitReached = errors.New("plan limit reached")
