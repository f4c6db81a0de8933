package tracking

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateNumber produces a tracking number of the form FL + the last 8
// digits of the current Unix-millisecond timestamp + a 3-digit random
// suffix. Uniqueness is probabilistic only; the shipments table carries a
// unique index and callers retry with a fresh number on a duplicate insert.
func GenerateNumber() string {
	millis := time.Now().UnixMilli()
	return fmt.Sprintf("FL%08d%03d", millis%100000000, rand.Intn(1000))
}
