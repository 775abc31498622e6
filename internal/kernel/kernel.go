package kernel

import (
	"context"
	"log"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MaxTasks bounds how many tasks can be registered before Start.
const MaxTasks = 16

// Tick is the kernel's base time unit for delays and timeouts.
type Tick uint32

// StackClass is the stack allocation requested for a task. Goroutine stacks
// grow on demand, so the class is recorded but not enforced.
type StackClass uint8

const (
	StackMinimal StackClass = iota
	StackLarge
)

// TaskFunc is a task body. It must return once ctx is done.
type TaskFunc func(ctx context.Context)

// TaskInfo describes a registered task.
type TaskInfo struct {
	Name     string
	Stack    StackClass
	Priority int
	// Period is zero for plain tasks.
	Period Tick
}

type task struct {
	TaskInfo
	fn  TaskFunc
	seq int
}

// Kernel runs every registered task on its own goroutine. Priorities are
// recorded and used for launch order only; goroutines are time-shared by the
// Go scheduler.
type Kernel struct {
	id   uuid.UUID
	tick time.Duration

	mu      sync.Mutex
	tasks   []*task
	started bool
	wg      sync.WaitGroup
}

func New(tick time.Duration) *Kernel {
	if tick <= 0 {
		tick = time.Millisecond
	}
	return &Kernel{
		id:   uuid.New(),
		tick: tick,
	}
}

// ID identifies this boot of the kernel.
func (k *Kernel) ID() uuid.UUID { return k.id }

func (k *Kernel) TickDuration() time.Duration { return k.tick }

// Ticks converts n ticks to wall-clock time.
func (k *Kernel) Ticks(n Tick) time.Duration {
	return time.Duration(n) * k.tick
}

// CreateTask registers a plain task. It reports false if the task could not be
// allocated: a nil body, the task table is full, or the kernel already started.
func (k *Kernel) CreateTask(fn TaskFunc, name string, stack StackClass, priority int) bool {
	return k.create(fn, TaskInfo{Name: name, Stack: stack, Priority: priority})
}

// CreatePeriodicTask registers a task with an explicit period that doubles as
// its relative deadline.
func (k *Kernel) CreatePeriodicTask(fn TaskFunc, name string, stack StackClass, priority int, period Tick) bool {
	if period == 0 {
		log.Printf("kernel: create task failed name=%q reason=zero period", name)
		return false
	}
	return k.create(fn, TaskInfo{Name: name, Stack: stack, Priority: priority, Period: period})
}

func (k *Kernel) create(fn TaskFunc, info TaskInfo) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch {
	case fn == nil:
		log.Printf("kernel: create task failed name=%q reason=nil body", info.Name)
		return false
	case k.started:
		log.Printf("kernel: create task failed name=%q reason=scheduler running", info.Name)
		return false
	case len(k.tasks) >= MaxTasks:
		log.Printf("kernel: create task failed name=%q reason=task table full", info.Name)
		return false
	}

	k.tasks = append(k.tasks, &task{TaskInfo: info, fn: fn, seq: len(k.tasks)})
	log.Printf("kernel: task created name=%q prio=%d period=%d", info.Name, info.Priority, info.Period)
	return true
}

// Tasks returns the registered tasks in launch order.
func (k *Kernel) Tasks() []TaskInfo {
	k.mu.Lock()
	ordered := launchOrder(k.tasks)
	k.mu.Unlock()

	out := make([]TaskInfo, len(ordered))
	for i, t := range ordered {
		out[i] = t.TaskInfo
	}
	return out
}

// Delay suspends the calling task for n ticks. It returns false if ctx ended
// first, which is the task's signal to return.
func (k *Kernel) Delay(ctx context.Context, n Tick) bool {
	if n == 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(k.Ticks(n))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Start launches every registered task. Further registrations fail. Tasks run
// until ctx is cancelled; use Wait to join them.
func (k *Kernel) Start(ctx context.Context) {
	k.mu.Lock()
	if k.started {
		k.mu.Unlock()
		return
	}
	k.started = true
	ordered := launchOrder(k.tasks)
	k.mu.Unlock()

	log.Printf("kernel: scheduler start boot=%s tasks=%d tick=%s", k.id, len(ordered), k.tick)
	for _, t := range ordered {
		k.wg.Add(1)
		go k.run(ctx, t)
	}
}

func (k *Kernel) run(ctx context.Context, t *task) {
	defer k.wg.Done()
	// Паника одной задачи не роняет остальные
	defer func() {
		if r := recover(); r != nil {
			log.Printf("kernel: task panic name=%q: %v\n%s", t.Name, r, debug.Stack())
		}
	}()
	t.fn(ctx)
	log.Printf("kernel: task exit name=%q", t.Name)
}

// Wait blocks until every started task has returned.
func (k *Kernel) Wait() {
	k.wg.Wait()
}
