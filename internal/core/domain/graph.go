package domain

import "go.trai.ch/zerr"

const (
	stateUnvisited = iota
	stateActive
	stateDone
)

// Walk tracks depth-first traversal state over package hashes.
// A hash is active while it is on the current path and done once it has been left.
type Walk struct {
	state map[string]int
	path  []string
	label map[string]string
}

// NewWalk creates an empty Walk.
func NewWalk() *Walk {
	return &Walk{
		state: make(map[string]int),
		label: make(map[string]string),
	}
}

// Enter pushes hash onto the active path. It returns an ErrCyclicDependency
// carrying the cycle path when hash is already active.
func (w *Walk) Enter(hash, label string) error {
	if w.state[hash] == stateActive {
		return zerr.With(ErrCyclicDependency, "cycle", w.CyclePath(hash, label))
	}
	w.state[hash] = stateActive
	w.label[hash] = label
	w.path = append(w.path, hash)
	return nil
}

// Leave pops hash from the active path and marks it done.
func (w *Walk) Leave(hash string) {
	w.state[hash] = stateDone
	if n := len(w.path); n > 0 && w.path[n-1] == hash {
		w.path = w.path[:n-1]
	}
}

// Active reports whether hash is on the current path.
func (w *Walk) Active(hash string) bool {
	return w.state[hash] == stateActive
}

// Done reports whether hash has been fully walked.
func (w *Walk) Done(hash string) bool {
	return w.state[hash] == stateDone
}

// CyclePath renders the path from the first occurrence of hash back to hash, e.g. "a -> b -> a".
func (w *Walk) CyclePath(hash, label string) string {
	cyclePath := ""
	startIdx := -1
	for i, node := range w.path {
		if node == hash {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return label
	}
	for i := startIdx; i < len(w.path); i++ {
		cyclePath += w.label[w.path[i]] + " -> "
	}
	cyclePath += label
	return cyclePath
}
