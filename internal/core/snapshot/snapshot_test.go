package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charleschow/sportshunt/internal/core/state/game"
	"github.com/charleschow/sportshunt/internal/core/state/game/tennis"
	"github.com/charleschow/sportshunt/internal/events"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx, events.SportTennis); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty load err = %v, want ErrNotFound", err)
	}
	if err := s.Save(ctx, events.SportTennis, []byte(`{"v":1}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, events.SportTennis, []byte(`{"v":2}`)); err != nil {
		t.Fatal(err)
	}
	got, err := s.Load(ctx, events.SportTennis)
	if err != nil || string(got) != `{"v":2}` {
		t.Fatalf("load = %s, %v", got, err)
	}
	if _, err := s.Load(ctx, events.SportSquash); !errors.Is(err, ErrNotFound) {
		t.Fatal("keys must be per sport")
	}
	if err := s.Delete(ctx, events.SportTennis); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load(ctx, events.SportTennis); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after delete err = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scoreboard.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoreboard.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(context.Background(), events.SportGolf, []byte("round")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, err := s.Load(context.Background(), events.SportGolf)
	if err != nil || string(got) != "round" {
		t.Fatalf("reopened load = %q, %v", got, err)
	}
}

func TestSQLiteStoreList(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "scoreboard.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	ctx := context.Background()
	if err := s.Save(ctx, events.SportGolf, []byte("round")); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if err := s.Save(ctx, events.SportPool, []byte("rack one")); err != nil {
		t.Fatal(err)
	}

	recs, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].Sport != events.SportPool || recs[0].Size != len("rack one") {
		t.Fatalf("records = %+v", recs)
	}
	if recs[1].UpdatedAt.IsZero() {
		t.Fatal("updated_at not parsed")
	}
}

// countingStore records saves so debounce behaviour is observable.
type countingStore struct {
	*MemoryStore
	mu    sync.Mutex
	saves int
}

func (c *countingStore) Save(ctx context.Context, sport events.Sport, data []byte) error {
	c.mu.Lock()
	c.saves++
	c.mu.Unlock()
	return c.MemoryStore.Save(ctx, sport, data)
}

func (c *countingStore) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

func newTennisContext(obs game.GameObserver) *game.GameContext {
	gc := game.NewGameContext(tennis.New(tennis.Setup{}))
	gc.AddObserver(obs)
	return gc
}

func TestPersisterDebouncesToLatest(t *testing.T) {
	store := &countingStore{MemoryStore: NewMemoryStore()}
	p := NewPersister(store, time.Hour)
	gc := newTennisContext(p)
	defer gc.Close()

	for range 3 {
		if err := gc.Dispatch("point", []byte(`{"player":"A"}`)); err != nil {
			t.Fatal(err)
		}
	}
	if store.count() != 0 {
		t.Fatal("nothing should be written inside the debounce window")
	}
	p.Flush()
	if store.count() != 1 {
		t.Fatalf("saves = %d, want 1", store.count())
	}

	data, err := store.Load(context.Background(), events.SportTennis)
	if err != nil {
		t.Fatal(err)
	}
	restored := tennis.New(tennis.Setup{})
	if err := restored.RestoreSnapshot(data); err != nil {
		t.Fatal(err)
	}
	if restored.State().PointsA != 3 {
		t.Fatalf("saved snapshot has %d points, want the latest (3)", restored.State().PointsA)
	}
}

func TestPersisterWritesAfterDebounce(t *testing.T) {
	store := &countingStore{MemoryStore: NewMemoryStore()}
	p := NewPersister(store, 10*time.Millisecond)
	gc := newTennisContext(p)
	defer gc.Close()

	if err := gc.Dispatch("point", []byte(`{"player":"B"}`)); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for store.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if store.count() != 1 {
		t.Fatalf("saves = %d, want 1", store.count())
	}
}

func TestPersisterResetDeletes(t *testing.T) {
	store := &countingStore{MemoryStore: NewMemoryStore()}
	p := NewPersister(store, time.Hour)
	gc := newTennisContext(p)
	defer gc.Close()

	_ = gc.Dispatch("point", []byte(`{"player":"A"}`))
	p.Flush()
	_ = gc.Dispatch("point", []byte(`{"player":"A"}`))
	gc.Reset()
	p.Flush()

	if store.count() != 1 {
		t.Fatalf("reset should drop the queued save, saves = %d", store.count())
	}
	if _, err := store.Load(context.Background(), events.SportTennis); !errors.Is(err, ErrNotFound) {
		t.Fatalf("reset should delete the snapshot, err = %v", err)
	}
}

// gatedStore blocks each Save until released.
type gatedStore struct {
	*MemoryStore
	started chan struct{}
	release chan struct{}
}

func (g *gatedStore) Save(ctx context.Context, sport events.Sport, data []byte) error {
	g.started <- struct{}{}
	<-g.release
	return g.MemoryStore.Save(ctx, sport, data)
}

func TestPersisterResetDuringSaveLeavesNoSnapshot(t *testing.T) {
	store := &gatedStore{
		MemoryStore: NewMemoryStore(),
		started:     make(chan struct{}, 1),
		release:     make(chan struct{}),
	}
	p := NewPersister(store, time.Millisecond)
	gc := newTennisContext(p)
	defer gc.Close()

	if err := gc.Dispatch("point", []byte(`{"player":"A"}`)); err != nil {
		t.Fatal(err)
	}
	select {
	case <-store.started:
	case <-time.After(2 * time.Second):
		t.Fatal("save never started")
	}

	done := make(chan struct{})
	go func() {
		gc.Reset()
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	close(store.release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("reset did not complete")
	}
	p.Flush()

	if _, err := store.Load(context.Background(), events.SportTennis); !errors.Is(err, ErrNotFound) {
		t.Fatalf("snapshot survived reset, err = %v", err)
	}
}
