package tui

import "testing"

func tickSeconds(m BreatheModel, n int) BreatheModel {
	for i := 0; i < n; i++ {
		m = m.advance()
	}
	return m
}

func TestBreathePhaseDurations(t *testing.T) {
	if PhaseInhale.Duration() != 4 || PhaseHold.Duration() != 7 || PhaseExhale.Duration() != 8 {
		t.Fatalf("expected 4-7-8 durations, got %d-%d-%d",
			PhaseInhale.Duration(), PhaseHold.Duration(), PhaseExhale.Duration())
	}
}

func TestBreatheAdvancesThroughPhases(t *testing.T) {
	m := newEmbeddedBreatheModel(2)

	if m.phase != PhaseInhale {
		t.Fatalf("expected session to start inhaling, got phase %d", m.phase)
	}

	m = tickSeconds(m, 4)
	if m.phase != PhaseHold {
		t.Errorf("after 4s expected hold, got phase %d", m.phase)
	}

	m = tickSeconds(m, 7)
	if m.phase != PhaseExhale {
		t.Errorf("after 11s expected exhale, got phase %d", m.phase)
	}

	m = tickSeconds(m, 8)
	if m.phase != PhaseInhale || m.cycle != 1 {
		t.Errorf("after 19s expected second cycle inhale, got phase %d cycle %d", m.phase, m.cycle)
	}
}

func TestBreatheCompletesAfterTargetCycles(t *testing.T) {
	m := newEmbeddedBreatheModel(2)

	// One full cycle is 19 seconds
	m = tickSeconds(m, 19)
	if m.done {
		t.Fatalf("expected session to continue after first cycle")
	}

	m = tickSeconds(m, 19)
	if !m.done {
		t.Fatalf("expected session to complete after second cycle")
	}
	if m.cycle != 2 {
		t.Errorf("expected 2 completed cycles, got %d", m.cycle)
	}

	// Further ticks are a no-op once done
	m = tickSeconds(m, 5)
	if m.cycle != 2 || !m.done {
		t.Errorf("expected completed session to stay completed")
	}
}
