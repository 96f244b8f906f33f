package circuitbreaker

import "github.com/sony/gobreaker/v2"

// CreateCircuitBreaker builds the breaker wrapped around outbound calls to the
// payment gateway. It opens after repeated upstream failures so a flapping
// gateway does not tie up request handlers.
func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return gobreaker.NewCircuitBreaker[[]byte](st)
}
