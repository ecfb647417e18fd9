package search

import "gridpath/pkg/engine/world"

// Observer is notified after every frontier expansion and every path-tracing step.
// It is called synchronously and must not mutate the grid.
type Observer interface {
	Step()
}

// ExpansionObserver additionally receives each expanded cell with its cost from
// Start at the moment it was popped.
type ExpansionObserver interface {
	Observer
	Expanded(cell *world.Cell, cost int)
}

// StepFunc adapts a plain callback to Observer. A nil StepFunc does nothing.
type StepFunc func()

// Step calls f
func (f StepFunc) Step() {
	if f != nil {
		f()
	}
}

func notifyStep(obs Observer) {
	if obs != nil {
		obs.Step()
	}
}

func notifyExpanded(obs Observer, cell *world.Cell, cost int) {
	if eo, ok := obs.(ExpansionObserver); ok {
		eo.Expanded(cell, cost)
	}
}
