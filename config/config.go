// Package config parses the benchmark driver's YAML run configuration and
// translates it into the matching package's runtime types. It replaces
// the original's hand-rolled token-stream ConfigReader
// (original_source/src/parse_configuration.h) with a declarative format
// parsed by gopkg.in/yaml.v3, the teacher corpus's own serialization
// library.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bdisjoint/djmatch/matching"
)

// AlgorithmSpec names one algorithm to run and its tunables. BuildAlgorithms
// hands every field to the algorithm's Configure as given, so a field left at
// its zero value selects the zero setting (recursion depth 0, static mode,
// sum aggregation, threshold 0) in place of any constructor default. Only
// FilterThreshold falls back, to the run-wide value 2, when left at 0.
type AlgorithmSpec struct {
	Name string `yaml:"name"`

	LocalSwap        bool    `yaml:"local_swap,omitempty"`
	PostProcess      bool    `yaml:"post_process,omitempty"`
	RecursionDepth   int     `yaml:"recursion_depth,omitempty"`
	RandomCandidates int     `yaml:"random_candidates,omitempty"`
	Mode             string  `yaml:"mode,omitempty"` // static | dynamic | hybrid
	HybridThreshold  float64 `yaml:"hybrid_threshold,omitempty"`
	CommonColor      bool    `yaml:"common_color,omitempty"`
	RotateLong       bool    `yaml:"rotate_long,omitempty"`
	Aggregate        string  `yaml:"aggregate,omitempty"` // sum | max | avg | median | b_sum
	Threshold        float64 `yaml:"threshold,omitempty"`
	FilterThreshold  float64 `yaml:"filter_threshold,omitempty"`
}

// RunConfig is the full YAML document shape, mirroring spec.md §6's
// Configuration section plus the per-algorithm parameter blocks recovered
// from parse_configuration.h's "algo" sub-commands.
type RunConfig struct {
	GraphFile       string `yaml:"graph_file"`
	OutputFile      string `yaml:"output_file"`
	WriteOutputFile bool   `yaml:"write_output_file"`
	ConsoleLog      bool   `yaml:"console_log"`

	B     int   `yaml:"b"`
	AllBs []int `yaml:"all_bs"`

	SanityCheck      bool `yaml:"sanity_check"`
	CountColoringOps bool `yaml:"count_coloring_ops"`

	Seed               int64 `yaml:"seed"`
	AlgorithmOrderSeed int64 `yaml:"algorithm_order_seed"`

	Algorithms []AlgorithmSpec `yaml:"algorithms"`
}

// Load reads and parses a YAML run configuration from path.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.B == 0 && len(cfg.AllBs) == 0 {
		return nil, fmt.Errorf("config: %s sets neither b nor all_bs", path)
	}
	if len(cfg.Algorithms) == 0 {
		return nil, fmt.Errorf("config: %s declares no algorithms", path)
	}
	return &cfg, nil
}

// Bs returns the list of b values this run should sweep: AllBs if set,
// otherwise the single value B.
func (c *RunConfig) Bs() []int {
	if len(c.AllBs) > 0 {
		return c.AllBs
	}
	return []int{c.B}
}

// baseMatchingConfig builds the shared matching.MatchingConfig fields every
// algorithm instance in this run starts from.
func (c *RunConfig) baseMatchingConfig(b int) matching.MatchingConfig {
	return matching.MatchingConfig{
		B:                  b,
		AllBs:              c.AllBs,
		SanityCheck:        c.SanityCheck,
		CountColoringOps:   c.CountColoringOps,
		Seed:               c.Seed,
		AlgorithmOrderSeed: c.AlgorithmOrderSeed,
		GraphFilename:      c.GraphFile,
		OutputFile:         c.OutputFile,
		WriteOutputFile:    c.WriteOutputFile,
		ConsoleLog:         c.ConsoleLog,
		FilterThreshold:    2,
	}
}

// BuildAlgorithms instantiates one matching.Algorithm per AlgorithmSpec in
// this run, each Configure'd with this run's shared settings plus its own
// spec overrides, for the given b.
func (c *RunConfig) BuildAlgorithms(b int) ([]matching.Algorithm, error) {
	algos := make([]matching.Algorithm, 0, len(c.Algorithms))
	for _, spec := range c.Algorithms {
		algo, ok := matching.New(spec.Name)
		if !ok {
			return nil, fmt.Errorf("config: unknown algorithm %q", spec.Name)
		}
		cfg := c.baseMatchingConfig(b)
		if err := applySpec(&cfg, spec); err != nil {
			return nil, err
		}
		algo.Configure(cfg)
		algos = append(algos, algo)
	}
	return algos, nil
}

func applySpec(cfg *matching.MatchingConfig, spec AlgorithmSpec) error {
	cfg.LocalSwap = spec.LocalSwap
	cfg.PostProcess = spec.PostProcess
	cfg.RecursionDepth = spec.RecursionDepth
	cfg.RandomCandidates = spec.RandomCandidates
	cfg.HybridThreshold = spec.HybridThreshold
	cfg.CommonColor = spec.CommonColor
	cfg.RotateLong = spec.RotateLong
	cfg.NodeCenteredThreshold = spec.Threshold
	if spec.FilterThreshold != 0 {
		cfg.FilterThreshold = spec.FilterThreshold
	}

	if spec.Mode != "" {
		mode, err := parseMode(spec.Mode)
		if err != nil {
			return err
		}
		cfg.EdgeColoringMode = mode
	}
	if spec.Aggregate != "" {
		agg, err := parseAggregate(spec.Aggregate)
		if err != nil {
			return err
		}
		cfg.NodeCenteredAggregate = agg
	}
	return nil
}

func parseMode(s string) (matching.EdgeColoringMode, error) {
	switch s {
	case "static":
		return matching.ModeStatic, nil
	case "dynamic":
		return matching.ModeDynamic, nil
	case "hybrid":
		return matching.ModeHybrid, nil
	default:
		return 0, fmt.Errorf("config: unknown edge-coloring mode %q", s)
	}
}

func parseAggregate(s string) (matching.AggregateType, error) {
	switch s {
	case "sum":
		return matching.AggregateSum, nil
	case "max":
		return matching.AggregateMax, nil
	case "avg":
		return matching.AggregateAvg, nil
	case "median":
		return matching.AggregateMedian, nil
	case "b_sum":
		return matching.AggregateBSum, nil
	default:
		return 0, fmt.Errorf("config: unknown aggregate %q", s)
	}
}
