package matching

import (
	"github.com/bdisjoint/djmatch/kcoloring"
)

// HostGraph is the host graph surface algorithms consult directly (beyond
// what the coloring already wraps): incident-arc enumeration for
// candidate search.
type HostGraph = kcoloring.HostGraph

// WeightMap is the full weight map contract algorithms subscribe to.
type WeightMap = kcoloring.WeightMap

// Algorithm is the uniform interface every matching algorithm implements
// (spec.md §4.10 / §6 algorithm driver contract).
type Algorithm interface {
	Name() string
	ShortName() string

	Configure(cfg MatchingConfig)
	SetGraph(g HostGraph)
	UnsetGraph()
	SetWeights(w WeightMap)
	UnsetWeights()

	SetNumMatchings(b int)
	Init()
	Reset()

	OnWeightChange(a kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight)
	OnArcRemove(a kcoloring.ArcID)

	Run() error
	PostRun() error
	Deliver() kcoloring.EdgeWeight

	GetFineCounts() kcoloring.OpCounts
	GetCoarseCounts() kcoloring.OpCounts
}

const algorithmWeightSubscriberKey = "matching.Algorithm"

// base provides the framework plumbing shared by every algorithm: coloring
// lifecycle, weight-map (un)subscription, configuration storage, and
// operation-count bookkeeping. Concrete algorithms embed base and provide
// their own OnWeightChange/Run/Name/ShortName.
type base struct {
	graph   HostGraph
	weights WeightMap

	coloring *kcoloring.Coloring
	free     *kcoloring.FreeColorsExtension
	mates    *kcoloring.ArcMateExtension
	stats    *kcoloring.ColoringStatsExtension

	config MatchingConfig
	filter UpdateFilter

	onWeightChange func(a kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight)
}

// newBase builds a base with a coloring wired to all three extensions.
// onChange is the concrete algorithm's own weight-change handler; base
// invokes it after the coloring's own subscription has already run (the
// coloring always subscribes first, per spec.md §6).
func newBase(onChange func(a kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight)) base {
	free := kcoloring.NewFreeColorsExtension()
	mates := kcoloring.NewArcMateExtension()
	stats := kcoloring.NewColoringStatsExtension()
	return base{
		coloring:       kcoloring.New(free, mates, stats),
		free:           free,
		mates:          mates,
		stats:          stats,
		onWeightChange: onChange,
	}
}

func (b *base) Configure(cfg MatchingConfig) {
	b.config = cfg
	b.filter = NewUpdateFilter(cfg.FilterThreshold)
}

func (b *base) SetGraph(g HostGraph) {
	b.graph = g
	b.coloring.SetGraph(g)
	b.mates.Bind(g, b.weights)
}

func (b *base) UnsetGraph() {
	b.coloring.UnsetGraph()
	b.graph = nil
}

func (b *base) SetWeights(w WeightMap) {
	b.weights = w
	b.coloring.SetWeights(w)
	b.mates.Bind(b.graph, w)
	w.Subscribe(algorithmWeightSubscriberKey, func(a kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight) {
		b.onWeightChange(a, oldW, newW)
	})
}

func (b *base) UnsetWeights() {
	if b.weights != nil {
		b.weights.Unsubscribe(algorithmWeightSubscriberKey)
	}
	b.coloring.UnsetWeights()
	b.weights = nil
}

// OnWeightChange satisfies the Algorithm interface by delegating to the
// concrete algorithm's own handler. The weight map also invokes that
// handler directly via the subscription installed in SetWeights; this
// method exists so callers holding only an Algorithm (not a *base) can
// still drive it, e.g. from tests or a replay tool.
func (b *base) OnWeightChange(a kcoloring.ArcID, oldW, newW kcoloring.EdgeWeight) {
	b.onWeightChange(a, oldW, newW)
}

func (b *base) SetNumMatchings(n int) {
	b.coloring.SetNumColors(n)
}

func (b *base) Reset() {
	b.coloring.Reset()
}

// Init is a no-op default; algorithms that need to prepare extra state
// before their first Run (node-centered's incidence lists, for instance)
// override it.
func (b *base) Init() {}

// OnArcRemove is the default behavior: setting weight to 0 goes through
// the ordinary weight-change path (spec.md §6).
func (b *base) OnArcRemove(a kcoloring.ArcID) {
	b.weights.Set(a, 0)
}

func (b *base) Deliver() kcoloring.EdgeWeight {
	return b.coloring.TotalWeight()
}

// PostRun runs the sanity check (if configured) and returns any violation
// as an error. Every algorithm uses this PostRun as is.
func (b *base) PostRun() error {
	if b.config.SanityCheck {
		return b.coloring.SanityCheck()
	}
	return nil
}

func (b *base) GetFineCounts() kcoloring.OpCounts {
	return b.stats.GetFineCounts()
}

func (b *base) GetCoarseCounts() kcoloring.OpCounts {
	return b.stats.ComputeCoarseCountsAndReset()
}
