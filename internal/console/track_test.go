package console

import "testing"

func TestTrackerPendingWhileInFlight(t *testing.T) {
	tr := NewTracker()

	if tr.Status(1) != StatusIdle {
		t.Fatal("unknown entity must start idle")
	}

	seq := tr.Begin(1)
	if !tr.Pending(1) {
		t.Error("entity must be pending after Begin")
	}
	if tr.Pending(2) {
		t.Error("other entities must stay idle")
	}

	tr.Finish(1, seq, false)
	if tr.Status(1) != StatusIdle {
		t.Error("entity must return to idle after a successful finish")
	}
}

func TestTrackerFailedStatus(t *testing.T) {
	tr := NewTracker()

	seq := tr.Begin(7)
	tr.Finish(7, seq, true)
	if tr.Status(7) != StatusFailed {
		t.Error("entity must be failed after a failed finish")
	}

	seq = tr.Begin(7)
	if tr.Status(7) != StatusPending {
		t.Error("a new request clears the failed state")
	}
	tr.Finish(7, seq, false)
	if tr.Status(7) != StatusIdle {
		t.Error("a later success returns the entity to idle")
	}
}

func TestTrackerDiscardsStaleResponse(t *testing.T) {
	tr := NewTracker()

	first := tr.Begin(1)
	second := tr.Begin(1)

	if !tr.Finish(1, second, false) {
		t.Fatal("the newer response must be applied")
	}
	if tr.Finish(1, first, false) {
		t.Error("the older response must be discarded once a newer one applied")
	}
}

func TestTrackerAppliesInOrderResponses(t *testing.T) {
	tr := NewTracker()

	first := tr.Begin(1)
	if !tr.Finish(1, first, false) {
		t.Fatal("an in-order response must be applied")
	}
	second := tr.Begin(1)
	if !tr.Finish(1, second, false) {
		t.Fatal("the next in-order response must be applied")
	}
}
