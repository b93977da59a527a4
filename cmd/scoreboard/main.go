package main

import (
	"flag"

	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/process"
)

func main() {
	sport := flag.String("sport", "", "sport to open at start (e.g. tennis, cricket)")
	flag.Parse()

	process.RunScorer(process.ScorerConfig{Sport: events.Sport(*sport)})
}
