package cell_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danmuck/cellkit/cell"
	"github.com/danmuck/cellkit/internal/testutil/testlog"
)

func TestMapPerKeyOnce(t *testing.T) {
	testlog.Start(t)

	var m cell.Map[string, *counter]
	var constructed atomic.Int64

	keys := []string{"alpha", "beta", "gamma"}
	const workersPerKey = 20

	var wg sync.WaitGroup
	results := make(map[string][]*counter)
	var mu sync.Mutex
	for _, key := range keys {
		key := key
		for rep := 0; rep < workersPerKey; rep++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := m.GetOrInit(key, func() (*counter, error) {
					constructed.Add(1)
					return &counter{}, nil
				})
				if err != nil {
					t.Errorf("key %s: %v", key, err)
					return
				}
				mu.Lock()
				results[key] = append(results[key], got)
				mu.Unlock()
			}()
		}
	}
	wg.Wait()

	if n := constructed.Load(); n != int64(len(keys)) {
		t.Fatalf("expected %d constructions, got %d", len(keys), n)
	}
	for _, key := range keys {
		for i, got := range results[key] {
			if got != results[key][0] {
				t.Fatalf("key %s worker %d observed a different instance", key, i)
			}
		}
	}
}

func TestMapFailedKeyRetries(t *testing.T) {
	testlog.Start(t)

	var m cell.Map[string, int]
	boom := errors.New("boom")
	calls := 0

	_, err := m.GetOrInit("k", func() (int, error) {
		calls++
		return 0, boom
	})
	if !errors.Is(err, cell.ErrInitFailed) {
		t.Fatalf("expected ErrInitFailed, got %v", err)
	}
	if m.Initialized("k") {
		t.Fatalf("key populated after failure")
	}

	got, err := m.GetOrInit("k", func() (int, error) {
		calls++
		return 5, nil
	})
	if err != nil || got != 5 {
		t.Fatalf("retry returned (%d, %v)", got, err)
	}
	if calls != 2 {
		t.Fatalf("expected two initializer calls, got %d", calls)
	}
}

func TestMapPeek(t *testing.T) {
	testlog.Start(t)

	var m cell.Map[string, int]
	if _, ok := m.Get("missing"); ok {
		t.Fatalf("missing key reported a value")
	}
	if _, err := m.GetOrInit("k", func() (int, error) { return 1, nil }); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	got, ok := m.Get("k")
	if !ok || got != 1 {
		t.Fatalf("expected (1, true), got (%d, %v)", got, ok)
	}
}
