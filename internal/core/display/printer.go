package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charleschow/sportshunt/internal/core/state/game"
)

const (
	dividerHeavy = "========================================================================"
	dividerLight = "~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~"
)

// Render formats a full scoreboard block for one notification.
func Render(sum game.Summary, eventType string, now time.Time) string {
	divider := dividerHeavy
	if eventType == game.EventUndo || eventType == game.EventLoaded {
		divider = dividerLight
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n[%s %s]  %s  %s\n", eventType, now.Format("3:04:05.000 PM"), sum.Sport, shortID(sum.MatchID))
	fmt.Fprintf(&b, "%s\n", divider)
	fmt.Fprintf(&b, "  %s vs %s\n", sum.Home, sum.Away)
	fmt.Fprintf(&b, "    %-14s%s  %s - %s  %s\n", "Score:", shortName(sum.Home), sum.HomeScore, sum.AwayScore, shortName(sum.Away))

	period := sum.Period
	if sum.Clock != "" {
		period += "  |  " + sum.Clock
	}
	if period != "" {
		fmt.Fprintf(&b, "    %-14s%s\n", "Period:", period)
	}
	if sum.Serving != game.None && !sum.Complete {
		fmt.Fprintf(&b, "    %-14s%s\n", "Serving:", game.WinnerName(sum.Serving, sum.Home, sum.Away))
	}
	for _, line := range sum.Lines {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	if sum.Complete {
		winner := sum.Winner
		if winner == "" {
			winner = "-"
		}
		fmt.Fprintf(&b, "    >>> FINAL  winner: %s\n", winner)
	}
	fmt.Fprintf(&b, "    %-14s%d\n", "Actions:", sum.Actions)
	fmt.Fprintf(&b, "%s\n", divider)
	return b.String()
}

// RenderTick is the one-line form used while a clock runs.
func RenderTick(sum game.Summary, now time.Time) string {
	return fmt.Sprintf("[TICK %s]  %s %s - %s %s  |  %s  %s\n",
		now.Format("3:04:05 PM"), shortName(sum.Home), sum.HomeScore, sum.AwayScore, shortName(sum.Away), sum.Period, sum.Clock)
}

// Print writes Render's output to w.
func Print(w io.Writer, sum game.Summary, eventType string) {
	fmt.Fprint(w, Render(sum, eventType, time.Now()))
}

var teamSuffixes = map[string]bool{
	"FC": true, "SC": true, "CF": true, "AFC": true, "FK": true,
	"BK": true, "IF": true, "SK": true, "CD": true, "RFC": true,
}

func shortName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return name
	}
	last := parts[len(parts)-1]
	if len(parts) > 1 && teamSuffixes[strings.ToUpper(last)] {
		return parts[len(parts)-2]
	}
	return last
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
