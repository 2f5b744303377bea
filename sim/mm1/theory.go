package mm1

import (
	"fmt"
	"strings"
)

// TheoreticalResults are the steady-state M/M/1 values for a configuration.
// They exist only when the queue is stable (rho < 1).
type TheoreticalResults struct {
	Stable         bool
	Utilization    float64 // rho
	AvgQueueLength float64 // L_q = rho^2 / (1 - rho)
	AvgWaitingTime float64 // W_q = rho / (mu (1 - rho))
}

// Theoretical computes the closed-form results for cfg.
func Theoretical(cfg Config) TheoreticalResults {
	rho := cfg.TrafficIntensity()
	if rho >= 1 {
		return TheoreticalResults{Utilization: rho}
	}
	return TheoreticalResults{
		Stable:         true,
		Utilization:    rho,
		AvgQueueLength: rho * rho / (1 - rho),
		AvgWaitingTime: rho / (cfg.ServiceRate * (1 - rho)),
	}
}

// Report renders the results, or a note when the queue is unstable.
func (t TheoreticalResults) Report() string {
	if !t.Stable {
		return "System is unstable (ρ >= 1), theoretical values not applicable."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Average queue length (L_q): %.4f\n", t.AvgQueueLength)
	fmt.Fprintf(&sb, "Average waiting time (W_q): %.4f\n", t.AvgWaitingTime)
	fmt.Fprintf(&sb, "Server utilization (ρ): %.4f", t.Utilization)
	return sb.String()
}
