package djgraph

import "sync"

// EdgeWeight is the weight type carried on arcs. It mirrors the original
// engine's unsigned weight type; zero means "no edge" for coloring purposes.
type EdgeWeight uint64

// WeightChangeFunc is invoked synchronously whenever an arc's weight
// changes, with the arc, its previous weight, and its new weight.
type WeightChangeFunc func(a ArcID, oldWeight, newWeight EdgeWeight)

type subscriber struct {
	key interface{}
	cb  WeightChangeFunc
}

// WeightMap is a guarded arc-to-weight map with an ordered subscriber list.
// Every Set that changes a weight invokes each subscriber's callback
// synchronously, in the order
// subscriptions were registered. The coloring data structure must subscribe
// before the active algorithm so that its running total weight and mate
// bookkeeping are already consistent by the time the algorithm reacts to the
// same change.
type WeightMap struct {
	mu          sync.Mutex
	weights     map[ArcID]EdgeWeight
	subscribers []subscriber
}

// NewWeightMap returns an empty weight map. Arcs with no explicit weight
// read as zero.
func NewWeightMap() *WeightMap {
	return &WeightMap{weights: make(map[ArcID]EdgeWeight)}
}

// Get returns the current weight of a, or zero if never set.
func (w *WeightMap) Get(a ArcID) EdgeWeight {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.weights[a]
}

// Set assigns a new weight to a and, if the weight changed, notifies every
// subscriber, in registration order, with the old and new weights.
// Subscribers run synchronously on the caller's goroutine after the map's
// lock has been released.
func (w *WeightMap) Set(a ArcID, newWeight EdgeWeight) {
	w.mu.Lock()
	old := w.weights[a]
	if newWeight == 0 {
		delete(w.weights, a)
	} else {
		w.weights[a] = newWeight
	}
	subs := w.subscribers
	w.mu.Unlock()

	if old == newWeight {
		return
	}
	for _, s := range subs {
		s.cb(a, old, newWeight)
	}
}

// Subscribe registers cb to be called on every future Set that changes a
// weight. key identifies
// the subscription for later Unsubscribe and must be comparable. Subscribing
// twice with the same key replaces the previous callback but keeps its
// original position in the notification order.
func (w *WeightMap) Subscribe(key interface{}, cb WeightChangeFunc) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, s := range w.subscribers {
		if s.key == key {
			w.subscribers[i].cb = cb
			return
		}
	}
	w.subscribers = append(w.subscribers, subscriber{key: key, cb: cb})
}

// Unsubscribe removes the subscription registered under key, if any.
func (w *WeightMap) Unsubscribe(key interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, s := range w.subscribers {
		if s.key == key {
			w.subscribers = append(w.subscribers[:i], w.subscribers[i+1:]...)
			return
		}
	}
}
