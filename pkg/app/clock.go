package app

import "time"

// now is swapped in tests for deterministic history timestamps.
var now = time.Now
