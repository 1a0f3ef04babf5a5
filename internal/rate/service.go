package rate

import (
	"fmt"
	"time"
)

// Compute converts a byte count and elapsed time into kilobytes (bytes/1024)
// and megabits per second (bytes*8/1000/seconds/1000). ok is false for a zero
// elapsed time, in which case mbps is 0.
func Compute(bytes int64, elapsed time.Duration) (kilobytes float64, mbps float64, ok bool) {
	kilobytes = float64(bytes) / 1024

	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return kilobytes, 0, false
	}

	mbps = float64(bytes) * 8 / 1000 / seconds / 1000
	return kilobytes, mbps, true
}

func Measure(bytes int64, elapsed time.Duration) Measurement {
	kilobytes, mbps, ok := Compute(bytes, elapsed)
	return Measurement{
		Bytes:     bytes,
		Elapsed:   elapsed,
		Kilobytes: kilobytes,
		Mbps:      mbps,
		Defined:   ok,
	}
}

// Report renders "<label>=<KB> KB, Rate=<Mbps> Mbps", both rounded to one decimal.
func (m Measurement) Report(label string) string {
	if !m.Defined {
		return fmt.Sprintf("%s=%.1f KB, Rate=undefined", label, m.Kilobytes)
	}
	return fmt.Sprintf("%s=%.1f KB, Rate=%.1f Mbps", label, m.Kilobytes, m.Mbps)
}
