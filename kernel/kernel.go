// Package kernel is the cooperative tick scheduler. One hardware timer
// drives everything: on each tick every registered task runs exactly once,
// in registration order, and must return within its cycle budget. There is
// no preemption and no blocking anywhere in the tick path; a task that
// cannot make progress returns and retries next tick.
package kernel

const maxTasks = 8

// Task is a unit of per-tick work.
type Task interface {
	Tick()
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func()

func (f TaskFunc) Tick() { f() }

// Scheduler steps a fixed set of tasks once per hardware tick.
//
// Registration order is the execution order and is part of the system
// contract: the transport pump must run before the display update, which
// must run before audio rendering.
type Scheduler struct {
	tasks [maxTasks]Task
	count int
	ticks uint64
}

// AddTask appends a task to the tick order. It returns false when the
// task table is full.
func (s *Scheduler) AddTask(t Task) bool {
	if s.count >= maxTasks || t == nil {
		return false
	}
	s.tasks[s.count] = t
	s.count++
	return true
}

// Tick runs one scheduling round.
func (s *Scheduler) Tick() {
	s.ticks++
	for i := 0; i < s.count; i++ {
		s.tasks[i].Tick()
	}
}

// Ticks returns the number of completed rounds.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
