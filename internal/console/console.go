// Package console is the line-oriented scorer interface. Each line is one
// command; errors are printed and the session carries on.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charleschow/sportshunt/internal/core/display"
	"github.com/charleschow/sportshunt/internal/core/registry"
	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/core/state/store"
	"github.com/charleschow/sportshunt/internal/events"
	"github.com/charleschow/sportshunt/internal/telemetry"
)

var ErrNoSport = errors.New("no sport selected (use <sport> or new <sport>)")

const help = `commands:
  sports                 list sports (* = open)
  new <sport> [json]     start a new match with optional setup fields
  use <sport>            switch to a sport, restoring its saved match
  kinds                  list event kinds for the active sport
  <kind> [json]          apply an event to the active match
  undo                   revert the last scoring action
  reset                  clear the match, keeping setup
  show                   print the scoreboard
  quit`

// Console drives the live matches in games. Matches it opens get the
// given observers attached.
type Console struct {
	reg       *registry.Registry
	games     *store.GameStateStore
	observers []game.GameObserver
	out       io.Writer
	active    events.Sport
}

func New(reg *registry.Registry, games *store.GameStateStore, out io.Writer, observers ...game.GameObserver) *Console {
	return &Console{
		reg:       reg,
		games:     games,
		observers: observers,
		out:       out,
	}
}

// Active is the sport commands currently apply to.
func (c *Console) Active() events.Sport { return c.active }

// Run reads commands from in until quit, EOF or ctx is cancelled.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	c.prompt()
	for sc.Scan() {
		if c.Exec(ctx, sc.Text()) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		c.prompt()
	}
	return sc.Err()
}

// Exec runs one command line. Returns true on quit.
func (c *Console) Exec(ctx context.Context, line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	var err error
	switch strings.ToLower(cmd) {
	case "":
	case "quit", "exit":
		return true
	case "help", "?":
		fmt.Fprintln(c.out, help)
	case "sports":
		c.listSports()
	case "use":
		err = c.use(ctx, arg)
	case "new":
		sport, setup, _ := strings.Cut(arg, " ")
		err = c.newMatch(ctx, sport, strings.TrimSpace(setup))
	case "kinds":
		err = c.withActive(func(gc *game.GameContext) error {
			var kinds []string
			gc.Exec(func() { kinds = gc.Match.Kinds() })
			fmt.Fprintln(c.out, strings.Join(kinds, " "))
			return nil
		})
	case "undo":
		err = c.withActive(func(gc *game.GameContext) error {
			if !gc.Undo() {
				fmt.Fprintln(c.out, "nothing to undo")
			}
			return nil
		})
	case "reset":
		err = c.withActive(func(gc *game.GameContext) error {
			gc.Reset()
			return nil
		})
	case "show":
		err = c.withActive(func(gc *game.GameContext) error {
			fmt.Fprint(c.out, display.Render(gc.Summary(), "SHOW", time.Now()))
			return nil
		})
	default:
		err = c.withActive(func(gc *game.GameContext) error {
			return gc.Dispatch(cmd, []byte(arg))
		})
	}
	if err != nil {
		telemetry.Debugf("console: %q: %v", line, err)
		fmt.Fprintf(c.out, "error: %v\n", err)
	}
	return false
}

func (c *Console) prompt() {
	label := "-"
	if c.active != "" {
		label = string(c.active)
	}
	fmt.Fprintf(c.out, "%s> ", label)
}

func (c *Console) listSports() {
	for _, s := range c.reg.Sports() {
		mark := " "
		if _, ok := c.games.Get(s); ok {
			mark = "*"
		}
		fmt.Fprintf(c.out, " %s %s\n", mark, s)
	}
}

func (c *Console) withActive(fn func(gc *game.GameContext) error) error {
	if c.active == "" {
		return ErrNoSport
	}
	gc, err := c.games.Require(c.active)
	if err != nil {
		return err
	}
	return fn(gc)
}

// open returns the live context for sport, restoring its snapshot the
// first time it is opened.
func (c *Console) open(ctx context.Context, name string) (*game.GameContext, error) {
	sport := events.Sport(strings.ToLower(name))
	if _, ok := c.reg.Get(sport); !ok {
		return nil, fmt.Errorf("%w: %q", registry.ErrUnknownSport, name)
	}
	if gc, ok := c.games.Get(sport); ok {
		return gc, nil
	}
	gc, err := c.reg.Open(ctx, sport, c.observers...)
	if err != nil {
		return nil, err
	}
	c.games.Put(gc)
	return gc, nil
}

func (c *Console) use(ctx context.Context, name string) error {
	gc, err := c.open(ctx, name)
	if err != nil {
		return err
	}
	c.active = gc.Sport
	fmt.Fprint(c.out, display.Render(gc.Summary(), "SHOW", time.Now()))
	return nil
}

func (c *Console) newMatch(ctx context.Context, name, setup string) error {
	gc, err := c.open(ctx, name)
	if err != nil {
		return err
	}
	raw, err := c.reg.SetupParams(gc.Sport, []byte(setup))
	if err != nil {
		return err
	}
	if err := gc.Setup(raw); err != nil {
		return err
	}
	c.active = gc.Sport
	return nil
}
