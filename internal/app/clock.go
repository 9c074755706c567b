package app

import "time"

// Clock returns the current instant. Services read it once per operation so
// every date derived within the operation agrees.
type Clock func() time.Time
