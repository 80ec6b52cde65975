package store

import "context"

// Effect is a unit of work a reducer asks the store to perform after a transition.
// A zero Effect does nothing.
type Effect[A any] struct {
	actions []A
	task    *task[A]
	do      func()
}

type task[A any] struct {
	name string
	run  func(ctx context.Context) A
}

// None returns an empty effect list.
func None[A any]() []Effect[A] {
	return nil
}

// Send dispatches follow-up actions synchronously, in order, before the triggering Send returns.
func Send[A any](actions ...A) Effect[A] {
	return Effect[A]{actions: actions}
}

// Run starts fn in its own goroutine. The action it returns is sent back into the store
// unless the store was closed in the meantime.
func Run[A any](name string, fn func(ctx context.Context) A) Effect[A] {
	if fn == nil {
		return Effect[A]{}
	}
	return Effect[A]{task: &task[A]{name: name, run: fn}}
}

// Do invokes fn once the transition has been committed and the store lock released.
func Do[A any](fn func()) Effect[A] {
	return Effect[A]{do: fn}
}

// Map lifts child effects into the parent's action type, so a parent reducer can embed a child
// reducer and route its follow-ups through wrap.
func Map[A, B any](effects []Effect[A], wrap func(A) B) []Effect[B] {
	if len(effects) == 0 {
		return nil
	}
	mapped := make([]Effect[B], 0, len(effects))
	for _, eff := range effects {
		out := Effect[B]{do: eff.do}
		for _, a := range eff.actions {
			out.actions = append(out.actions, wrap(a))
		}
		if eff.task != nil {
			run := eff.task.run
			out.task = &task[B]{name: eff.task.name, run: func(ctx context.Context) B {
				return wrap(run(ctx))
			}}
		}
		mapped = append(mapped, out)
	}
	return mapped
}
