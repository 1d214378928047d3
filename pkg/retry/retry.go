package retry

import (
	"time"
)

type fn func() error
type shouldRetry func(err error, attempt int) bool

// WrapWithRetry wraps the given function and retries it while shouldRetry
// allows. Gives up early when errors come in faster than rate per second,
// so a hard-down dependency does not spin the caller.
func WrapWithRetry(f fn, shouldRetry shouldRetry, rate float32) func() error {
	size := int(rate + 1)
	var errorTimestamps []time.Time

	return func() error {
		attempt := 0

		for {
			err := f()
			if err == nil {
				return nil
			}

			attempt++

			errorTimestamps = append(errorTimestamps, time.Now())
			if len(errorTimestamps) > size {
				errorTimestamps = errorTimestamps[1:]
			}

			if !shouldRetry(err, attempt) {
				return err
			}

			if len(errorTimestamps) < size {
				continue
			}

			// size errors inside this window mean the error rate
			// exceeds rate per second.
			maxWindow := time.Duration(float64(size) / float64(rate) * float64(time.Second))

			window := errorTimestamps[len(errorTimestamps)-1].Sub(errorTimestamps[0])
			if window <= maxWindow {
				return err
			}
		}
	}
}
