package dotmesh

import "testing"

// runTicks drives the scheduler from tick 0 through last and records the
// tick of every firing, per action label.
func runTicks(s *Scheduler[string], last Clock) map[string][]Clock {
	fired := make(map[string][]Clock)
	for now := Clock(0); now <= last; now++ {
		for _, action := range s.Pop(now) {
			fired[action] = append(fired[action], now)
		}
	}
	return fired
}

func ticksEqual(a, b []Clock) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSpanLen(t *testing.T) {
	if got := (Span{3, 3}).Len(); got != 1 {
		t.Errorf("single-tick span Len = %d, want 1", got)
	}
	if got := (Span{3, 7}).Len(); got != 5 {
		t.Errorf("Len = %d, want 5", got)
	}
}

func TestScheduleOnce(t *testing.T) {
	s := NewScheduler[string]()
	s.Push(Once(5), "boom")
	fired := runTicks(s, 10)
	if !ticksEqual(fired["boom"], []Clock{5}) {
		t.Errorf("fired at %v, want [5]", fired["boom"])
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after a once entry fired", s.Len())
	}
}

func TestScheduleDuring(t *testing.T) {
	s := NewScheduler[string]()
	s.Push(During(3, 4), "spin")
	fired := runTicks(s, 10)
	if !ticksEqual(fired["spin"], []Clock{3, 4, 5, 6}) {
		t.Errorf("fired at %v, want [3 4 5 6]", fired["spin"])
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after the span drained", s.Len())
	}
}

func TestScheduleEvery(t *testing.T) {
	s := NewScheduler[string]()
	s.Push(Every(2, 5), "pulse")
	fired := runTicks(s, 12)
	if !ticksEqual(fired["pulse"], []Clock{2, 7, 12}) {
		t.Errorf("fired at %v, want [2 7 12]", fired["pulse"])
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, repeating entry should stay queued", s.Len())
	}
}

func TestScheduleEverySpan(t *testing.T) {
	s := NewScheduler[string]()
	s.Push(EverySpan(4, 6, 2), "burst")
	fired := runTicks(s, 17)
	if !ticksEqual(fired["burst"], []Clock{4, 5, 10, 11, 16, 17}) {
		t.Errorf("fired at %v, want [4 5 10 11 16 17]", fired["burst"])
	}
}

func TestScheduleMixed(t *testing.T) {
	s := NewScheduler[string]()
	s.Push(Once(3), "a")
	s.Push(During(2, 3), "b")
	s.Push(Every(0, 4), "c")
	fired := runTicks(s, 8)

	if !ticksEqual(fired["a"], []Clock{3}) {
		t.Errorf("a fired at %v", fired["a"])
	}
	if !ticksEqual(fired["b"], []Clock{2, 3, 4}) {
		t.Errorf("b fired at %v", fired["b"])
	}
	if !ticksEqual(fired["c"], []Clock{0, 4, 8}) {
		t.Errorf("c fired at %v", fired["c"])
	}
}

func TestSchedulerLateNoBurst(t *testing.T) {
	// A loop stall must not replay missed repetitions: the first Pop after
	// the stall fires the entry once and reschedules relative to now.
	s := NewScheduler[string]()
	s.Push(Every(2, 5), "pulse")

	if got := s.Pop(9); len(got) != 1 {
		t.Fatalf("Pop(9) = %v, want one firing", got)
	}
	if got := s.Pop(10); len(got) != 0 {
		t.Errorf("Pop(10) = %v, want none", got)
	}
	if got := s.Pop(14); len(got) != 1 {
		t.Errorf("Pop(14) = %v, want one firing", got)
	}
}

func TestSchedulerEarlyPop(t *testing.T) {
	s := NewScheduler[string]()
	s.Push(Once(5), "boom")
	if got := s.Pop(4); len(got) != 0 {
		t.Errorf("Pop(4) = %v, want none", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, entry must stay queued", s.Len())
	}
}

func TestSchedulerMultipleDueSameTick(t *testing.T) {
	s := NewScheduler[string]()
	s.Push(Once(3), "a")
	s.Push(Once(3), "b")
	s.Push(Once(7), "c")
	got := s.Pop(3)
	if len(got) != 2 {
		t.Fatalf("Pop(3) = %v, want two firings", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}
