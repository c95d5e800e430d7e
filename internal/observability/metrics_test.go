package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/danmuck/cellkit/internal/testutil/testlog"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)

	RegisterMetrics()
	RegisterMetrics()

	RecordCellInit("config", true, 3*time.Millisecond)
	RecordCellInit("config", false, 5*time.Millisecond)
	RecordHTTPRequest("cellkit-a", "GET", "/health", 200, 12*time.Millisecond)
}

func TestInstrumentPreservesInitSemantics(t *testing.T) {
	testlog.Start(t)

	boom := errors.New("boom")
	calls := 0
	init := Instrument("flaky", func() (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 9, nil
	})

	if _, err := init(); !errors.Is(err, boom) {
		t.Fatalf("expected cause to pass through, got %v", err)
	}
	got, err := init()
	if err != nil || got != 9 {
		t.Fatalf("second attempt returned (%d, %v)", got, err)
	}
	if calls != 2 {
		t.Fatalf("expected two underlying calls, got %d", calls)
	}
}
