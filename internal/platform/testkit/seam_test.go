package testkit

import (
	"sync"
	"testing"
	"time"
)

// package-level seams of the shape production code swaps in tests
var (
	nowFn     = func() time.Time { return time.Unix(0, 0) }
	retryCeil = 5
)

func TestSwap_FunctionAndRestore(t *testing.T) {
	fixed := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)

	// run swap in a subtest so Cleanup runs before we validate restoration
	t.Run("swap-in-subtest", func(t *testing.T) {
		if !nowFn().Equal(time.Unix(0, 0)) {
			t.Fatalf("precondition failed, nowFn()=%v", nowFn())
		}
		Swap(t, &nowFn, func() time.Time { return fixed })
		if got := nowFn(); !got.Equal(fixed) {
			t.Fatalf("swap did not take effect, got %v want %v", got, fixed)
		}
	})

	// after subtest completes, Cleanup restored the original
	if got := nowFn(); !got.Equal(time.Unix(0, 0)) {
		t.Fatalf("swap did not restore original, got %v", got)
	}
}

func TestSwap_NonFunctionType(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		if retryCeil != 5 {
			t.Fatalf("precondition failed, got %d", retryCeil)
		}
		Swap(t, &retryCeil, 1)
		if retryCeil != 1 {
			t.Fatalf("swap failed, got %d want 1", retryCeil)
		}
	})
	if retryCeil != 5 {
		t.Fatalf("swap did not restore original, got %d want 5", retryCeil)
	}
}

func TestSerial_GuardsConcurrentSubtests(t *testing.T) {
	t.Parallel()

	var seqMu sync.Mutex
	seq := make([]string, 0, 4)

	record := func(s string) {
		seqMu.Lock()
		seq = append(seq, s)
		seqMu.Unlock()
	}

	t.Run("A", func(t *testing.T) {
		t.Parallel()
		Serial(t)
		record("A-start")
		time.Sleep(50 * time.Millisecond)
		record("A-end")
	})

	t.Run("B", func(t *testing.T) {
		t.Parallel()
		Serial(t)
		record("B-start")
		time.Sleep(50 * time.Millisecond)
		record("B-end")
	})

	t.Cleanup(func() {
		seqMu.Lock()
		defer seqMu.Unlock()
		if len(seq) != 4 {
			t.Fatalf("unexpected sequence length %d, seq=%v", len(seq), seq)
		}
		idx := map[string]int{}
		for i, s := range seq {
			idx[s] = i
		}
		// Serial must prevent interleaving: one subtest finishes before the
		// other starts, in either order
		aFirst := idx["A-start"] < idx["A-end"] && idx["A-end"] < idx["B-start"]
		bFirst := idx["B-start"] < idx["B-end"] && idx["B-end"] < idx["A-start"]
		if !(aFirst || bFirst) {
			t.Fatalf("expected grouped execution, got seq=%v", seq)
		}
	})
}
