package mdp

import (
	"math"
	"strconv"
)

// QFunction maps (state, action) pairs to scalar value estimates.
//
// Values are looked up in a ValueTable by a key built from the Keyer's
// canonical state and action keys. QFunction also tracks the distinct
// actions that have ever been assigned a value, in the order in which
// they were first assigned; ArgMax scans actions in that order.
type QFunction[S, A any] struct {
	keyer Keyer[S, A]
	table ValueTable

	actions    []A
	actionKeys map[string]struct{}
}

// NewQFunction creates an empty QFunction that stores values in the given table.
func NewQFunction[S, A any](keyer Keyer[S, A], table ValueTable) *QFunction[S, A] {
	return &QFunction[S, A]{
		keyer:      keyer,
		table:      table,
		actionKeys: make(map[string]struct{}),
	}
}

// key length-prefixes the state key so that no two distinct pairs of
// state and action keys produce the same table key.
func (q *QFunction[S, A]) key(state S, action A) string {
	stateKey := q.keyer.StateKey(state)
	return strconv.Itoa(len(stateKey)) + ":" + stateKey + q.keyer.ActionKey(action)
}

// Get returns the stored value for the pair and whether one was present.
func (q *QFunction[S, A]) Get(state S, action A) (float64, bool) {
	return q.table.Get(q.key(state, action))
}

// Set stores the value for the pair, registering action if it is new.
func (q *QFunction[S, A]) Set(state S, action A, value float64) {
	actionKey := q.keyer.ActionKey(action)
	if _, ok := q.actionKeys[actionKey]; !ok {
		q.actionKeys[actionKey] = struct{}{}
		q.actions = append(q.actions, action)
	}

	q.table.Put(q.key(state, action), value)
}

// ArgMax returns the tracked action with the greatest stored value for
// the given state. On ties the action registered first wins. If no value
// is stored for any action at this state, ok is false and best is -Inf.
func (q *QFunction[S, A]) ArgMax(state S) (action A, best float64, ok bool) {
	best = math.Inf(-1)
	for _, a := range q.actions {
		v, found := q.Get(state, a)
		if !found {
			continue
		}

		if v > best {
			best = v
			action = a
			ok = true
		}
	}

	return action, best, ok
}

// Actions returns the tracked actions in registration order.
func (q *QFunction[S, A]) Actions() []A {
	return append([]A(nil), q.actions...)
}

// Reset removes all values and tracked actions.
func (q *QFunction[S, A]) Reset() {
	q.table.Clear()
	q.actions = nil
	q.actionKeys = make(map[string]struct{})
}
