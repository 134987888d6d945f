package dotmesh

import "container/heap"

// Clock counts simulation ticks. The surrounding game loop decides what a
// tick is; the scheduler only compares values.
type Clock uint64

// Span is an inclusive range of ticks.
type Span struct {
	Start, End Clock
}

// Len returns the number of ticks the span covers.
func (s Span) Len() Clock {
	return 1 + s.End - s.Start
}

type scheduleKind uint8

const (
	scheduleOnce scheduleKind = iota
	scheduleSpan
	scheduleEvery
	scheduleEverySpan
)

// Schedule describes when an action fires. Build one with Once, During,
// Every or EverySpan.
type Schedule struct {
	kind     scheduleKind
	next     Span  // ticks the action currently fires on
	interval Clock // start-to-start distance for repeating kinds
	execLen  Clock // span length for EverySpan
}

// Once fires at exactly one tick.
func Once(at Clock) Schedule {
	return Schedule{kind: scheduleOnce, next: Span{at, at}}
}

// During fires on every tick of the inclusive span [start, start+length-1].
func During(start, length Clock) Schedule {
	return Schedule{kind: scheduleSpan, next: Span{start, start + length - 1}}
}

// Every fires at start, then again every interval ticks after each firing.
func Every(start, interval Clock) Schedule {
	return Schedule{kind: scheduleEvery, next: Span{start, start}, interval: interval}
}

// EverySpan fires on execLen consecutive ticks starting at start, then
// repeats the whole span every interval ticks. interval must be at least
// execLen.
func EverySpan(start, interval, execLen Clock) Schedule {
	return Schedule{
		kind:     scheduleEverySpan,
		next:     Span{start, start + execLen - 1},
		interval: interval,
		execLen:  execLen,
	}
}

type scheduleEntry[T any] struct {
	schedule Schedule
	action   T
}

// scheduleHeap is a min-heap on the next firing tick.
type scheduleHeap[T any] []scheduleEntry[T]

func (h scheduleHeap[T]) Len() int { return len(h) }
func (h scheduleHeap[T]) Less(i, j int) bool {
	return h[i].schedule.next.Start < h[j].schedule.next.Start
}
func (h scheduleHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *scheduleHeap[T]) Push(x any) {
	*h = append(*h, x.(scheduleEntry[T]))
}

func (h *scheduleHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Scheduler queues actions against a tick counter. It backs timed events in
// the per-tick game loop: push actions with a Schedule, call Pop once per
// tick with the current counter, and run whatever comes back. Not safe for
// concurrent use; the game loop owns it.
type Scheduler[T any] struct {
	h scheduleHeap[T]
}

// NewScheduler creates an empty scheduler.
func NewScheduler[T any]() *Scheduler[T] {
	return &Scheduler[T]{}
}

// Push queues an action.
func (s *Scheduler[T]) Push(schedule Schedule, action T) {
	heap.Push(&s.h, scheduleEntry[T]{schedule: schedule, action: action})
}

// Len returns the number of queued entries.
func (s *Scheduler[T]) Len() int {
	return len(s.h)
}

// Pop returns every action due at tick now and requeues repeating entries.
// Repeats are rescheduled relative to now, so a stalled loop does not burst
// missed repetitions.
func (s *Scheduler[T]) Pop(now Clock) []T {
	var due []T
	for len(s.h) > 0 && s.h[0].schedule.next.Start <= now {
		e := heap.Pop(&s.h).(scheduleEntry[T])
		due = append(due, e.action)
		sch := e.schedule
		switch sch.kind {
		case scheduleSpan:
			if sch.next.Len() <= 1 {
				continue
			}
			sch.next.Start++
		case scheduleEvery:
			sch.next = Span{now + sch.interval, now + sch.interval}
		case scheduleEverySpan:
			if sch.next.Len() <= 1 {
				end := now + sch.interval
				sch.next = Span{end + 1 - sch.execLen, end}
			} else {
				sch.next.Start++
			}
			if sch.next.Start <= now {
				continue
			}
		default:
			continue
		}
		heap.Push(&s.h, scheduleEntry[T]{schedule: sch, action: e.action})
	}
	return due
}
