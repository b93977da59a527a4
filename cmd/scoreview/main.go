package main

import (
	"flag"

	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/process"
)

func main() {
	sport := flag.String("sport", "", "follow one sport (default: all)")
	flag.Parse()

	process.RunViewer(events.Sport(*sport))
}
