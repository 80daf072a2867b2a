package adapter

import (
	"encoding/base64"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// correlationVector produces MS-CV header values of the form <base>.<n>. The
// counter is advanced atomically before every send, so values follow call
// issue order.
type correlationVector struct {
	base    string
	counter atomic.Uint64
}

func newCorrelationVector() *correlationVector {
	id := uuid.New()
	return &correlationVector{base: base64.RawStdEncoding.EncodeToString(id[:12])}
}

// Next returns the value for the next outgoing call.
func (c *correlationVector) Next() string {
	return c.base + "." + strconv.FormatUint(c.counter.Add(1), 10)
}
