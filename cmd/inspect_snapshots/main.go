package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/charleschow/sportshunt/internal/config"
	"github.com/charleschow/sportshunt/internal/core/display"
	"github.com/charleschow/sportshunt/internal/core/registry"
	"github.com/charleschow/sportshunt/internal/core/snapshot"
)

func main() {
	sport := flag.String("sport", "all", "sport to inspect, or all")
	dbPath := flag.String("db", "", "snapshot database (default: SNAPSHOT_DB_PATH)")
	verbose := flag.Bool("v", false, "print the restored scoreboard and raw journal")
	flag.Parse()

	cfg := config.Load()
	path := *dbPath
	if path == "" {
		path = cfg.SnapshotDBPath
	}

	store, err := snapshot.OpenSQLite(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open %s: %v\n", path, err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	recs, err := store.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *sport != "all" {
		filtered := recs[:0]
		for _, r := range recs {
			if string(r.Sport) == strings.ToLower(*sport) {
				filtered = append(filtered, r)
			}
		}
		recs = filtered
	}

	fmt.Printf("=== Saved matches (%s) ===\n", path)
	if len(recs) == 0 {
		fmt.Println("(no data)")
		return
	}

	reg := registry.NewRegistry(config.Presets{}, nil)
	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "sport\tsize\tsaved\tscore\tperiod\tactions")
	fmt.Fprintln(w, strings.Repeat("----\t", 6))
	var restored []restoredMatch
	for _, r := range recs {
		rm, err := restore(ctx, reg, store, r.Sport)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\t%s\t(%v)\t\t\n", r.Sport, humanize.Bytes(uint64(r.Size)), humanize.Time(r.UpdatedAt), err)
			continue
		}
		sum := rm.summary
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s - %s %s\t%s\t%d\n",
			r.Sport, humanize.Bytes(uint64(r.Size)), humanize.Time(r.UpdatedAt),
			sum.Home, sum.HomeScore, sum.AwayScore, sum.Away, sum.Period, sum.Actions)
		restored = append(restored, rm)
	}
	w.Flush()

	if !*verbose {
		return
	}
	for _, rm := range restored {
		fmt.Print(display.Render(rm.summary, "SAVED", rm.savedAt))
		fmt.Printf("    raw: %s\n", rm.raw)
	}
}
