package postproc

import (
	"github.com/bdisjoint/djmatch/bucketqueue"
	"github.com/bdisjoint/djmatch/kcoloring"
	"github.com/bdisjoint/djmatch/timedset"
)

// Coloring is the subset of *kcoloring.Coloring the post-processor needs.
type Coloring interface {
	IsColored(a kcoloring.ArcID) bool
	MateArc(c kcoloring.Color, v kcoloring.VertexID) kcoloring.ArcID
	Color(a kcoloring.ArcID, c kcoloring.Color) error
	Uncolor(a kcoloring.ArcID) error
	NumColors() int
}

// FreeColors is the subset of *kcoloring.FreeColorsExtension needed to try
// the cheap common-free-color path before falling back to eviction.
type FreeColors interface {
	CommonFreeColor(u, v kcoloring.VertexID) kcoloring.Color
}

// HostGraph is the subset of host graph operations needed to find an arc's
// endpoints.
type HostGraph interface {
	Tail(a kcoloring.ArcID) kcoloring.VertexID
	Head(a kcoloring.ArcID) kcoloring.VertexID
}

// WeightSource supplies current arc weights.
type WeightSource interface {
	Get(a kcoloring.ArcID) kcoloring.EdgeWeight
}

// Processor drives the maximality post-processing loop over a registered
// candidate set of uncolored arcs, using an approximate bucket queue keyed
// on weight.
type Processor struct {
	graph   HostGraph
	weights WeightSource
	kc      Coloring
	free    FreeColors

	queue      *bucketqueue.Queue[kcoloring.ArcID]
	registered *timedset.Set[kcoloring.ArcID]
}

// New constructs a Processor wired to the given host graph, weight source,
// coloring, and free-colors extension.
func New(g HostGraph, w WeightSource, kc Coloring, free FreeColors) *Processor {
	return &Processor{
		graph:      g,
		weights:    w,
		kc:         kc,
		free:       free,
		queue:      bucketqueue.New[kcoloring.ArcID](),
		registered: timedset.NewSet[kcoloring.ArcID](),
	}
}

// RegisterArc adds a to the candidate set for the current round,
// deduplicated: calling this twice for the same arc in the same round
// before PerformPostProcessing (or NextRound) is a no-op the second time.
// Only positive-weight, currently uncolored arcs are actually queued; other
// arcs are recorded as "seen" but contribute nothing to the queue.
func (p *Processor) RegisterArc(a kcoloring.ArcID) {
	if !p.registered.Contains(a) {
		p.registered.Add(a)
		if !p.kc.IsColored(a) && p.weights.Get(a) > 0 {
			p.queue.Push(a, bucketqueue.Priority(p.weights.Get(a)))
		}
	}
}

// NextRound clears the per-round registration dedup set, letting arcs be
// registered again in a future round. It does not touch the queue itself;
// callers normally call PerformPostProcessing before NextRound.
func (p *Processor) NextRound() {
	p.registered.NextRound()
}

// Reset clears both the queue and the round-registration state.
func (p *Processor) Reset() {
	p.queue.Clear()
	p.registered.Reset()
}

// PerformPostProcessing drains the queue, trying to color each popped arc
// either directly (common free color) or by evicting a lighter colored
// pair at its endpoints, as described in this package's doc comment.
func (p *Processor) PerformPostProcessing() error {
	for !p.queue.Empty() {
		x, priority := p.queue.PopMax()
		if p.kc.IsColored(x) {
			continue
		}
		wx := kcoloring.EdgeWeight(priority)
		tail, head := p.graph.Tail(x), p.graph.Head(x)

		if c := p.free.CommonFreeColor(tail, head); c != kcoloring.UncoloredColor {
			if err := p.kc.Color(x, c); err != nil {
				return err
			}
			continue
		}

		if err := p.tryEvictAndColor(x, tail, head, wx); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) tryEvictAndColor(x kcoloring.ArcID, tail, head kcoloring.VertexID, wx kcoloring.EdgeWeight) error {
	for c := 0; c < p.kc.NumColors(); c++ {
		color := kcoloring.Color(c)
		at := p.kc.MateArc(color, tail)
		ah := p.kc.MateArc(color, head)

		heavier := (at != kcoloring.NoArc && p.weights.Get(at) >= wx) ||
			(ah != kcoloring.NoArc && p.weights.Get(ah) >= wx)
		if heavier {
			continue
		}
		sum := p.weights.Get(at) + p.weights.Get(ah)
		if sum >= wx {
			continue
		}

		if at != kcoloring.NoArc {
			if err := p.kc.Uncolor(at); err != nil {
				return err
			}
			p.queue.Push(at, bucketqueue.Priority(p.weights.Get(at)))
		}
		if ah != kcoloring.NoArc {
			if err := p.kc.Uncolor(ah); err != nil {
				return err
			}
			p.queue.Push(ah, bucketqueue.Priority(p.weights.Get(ah)))
		}
		return p.kc.Color(x, color)
	}
	return nil
}
