package rate

import "time"

// Measurement summarises one finished session. Kilobytes and Mbps are kept at
// full precision; rounding happens only when the line is formatted.
type Measurement struct {
	Bytes     int64
	Elapsed   time.Duration
	Kilobytes float64
	Mbps      float64
	// Defined is false when Elapsed is zero and no rate could be computed.
	Defined bool
}
