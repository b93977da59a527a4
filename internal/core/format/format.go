// Package format turns raw scoreboard counters into display strings.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Clock renders seconds as MM:SS. Negative values render by magnitude.
func Clock(seconds int) string {
	a := abs(seconds)
	return fmt.Sprintf("%02d:%02d", a/60, a%60)
}

// ClockWithHours renders H:MM:SS once the value reaches an hour.
func ClockWithHours(seconds int) string {
	a := abs(seconds)
	if h := a / 3600; h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, (a%3600)/60, a%60)
	}
	return Clock(seconds)
}

// Overs renders a cricket over count as "o.b".
func Overs(overs, balls int) string {
	return fmt.Sprintf("%d.%d", overs, balls)
}

// RunRate is runs per over. Zero before the first ball.
func RunRate(runs, overs, balls int) float64 {
	total := float64(overs) + float64(balls)/6
	if total == 0 {
		return 0
	}
	return float64(runs) / total
}

// RequiredRunRate is the rate the chasing side needs from the remaining
// overs. Zero once no overs remain.
func RequiredRunRate(target, runs, maxOvers, overs, balls int) float64 {
	remaining := float64(maxOvers) - (float64(overs) + float64(balls)/6)
	if remaining <= 0 {
		return 0
	}
	need := target - runs
	if need < 0 {
		need = 0
	}
	return float64(need) / remaining
}

// StrikeRate is runs per hundred balls.
func StrikeRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) * 100 / float64(balls)
}

// Economy is runs conceded per over bowled.
func Economy(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) * 6 / float64(balls)
}

func Rate2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

// RelativeToPar renders a golf score against par: "E", "+3", "-2".
func RelativeToPar(diff int) string {
	switch {
	case diff == 0:
		return "E"
	case diff > 0:
		return fmt.Sprintf("+%d", diff)
	default:
		return fmt.Sprintf("%d", diff)
	}
}

func Ordinal(n int) string { return humanize.Ordinal(n) }

// PeriodLabel renders "2nd Half", "3rd Set", "1st Quarter".
func PeriodLabel(n int, unit string) string {
	return humanize.Ordinal(n) + " " + unit
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
