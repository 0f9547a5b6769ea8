// Command djmatch-bench drives the dynamic b-disjoint matching engine over
// a KONECT graph file and a sequence of edge weight update batches,
// printing one result row per (b, algorithm, delta). Recovered from
// original_source/src/main.cpp + parse_parameters.h, replacing
// getopt-style argument parsing with github.com/urfave/cli/v2.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bdisjoint/djmatch/chrono"
	"github.com/bdisjoint/djmatch/config"
	"github.com/bdisjoint/djmatch/konect"
	"github.com/bdisjoint/djmatch/matching"
	"github.com/bdisjoint/djmatch/report"
)

func main() {
	app := &cli.App{
		Name:  "djmatch-bench",
		Usage: "replay a KONECT delta stream through the dynamic b-disjoint matching engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "YAML run configuration",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "graph",
				Aliases: []string{"g"},
				Usage:   "KONECT graph file (overrides the config's graph_file)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "result table output file (default: stdout)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "override the configured random seed",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		report.Log.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if graphFile := c.String("graph"); graphFile != "" {
		cfg.GraphFile = graphFile
	}
	if cfg.GraphFile == "" {
		return fmt.Errorf("no graph file: pass --graph or set graph_file in the config")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}

	out := os.Stdout
	if outputPath := c.String("output"); outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("open output file: %w", err)
		}
		defer f.Close()
		out = f
		cfg.OutputFile = outputPath
		cfg.WriteOutputFile = true
	}

	report.Log.Infof("graph file: %s", cfg.GraphFile)
	table := report.NewTable(out)

	for _, b := range cfg.Bs() {
		algos, err := cfg.BuildAlgorithms(b)
		if err != nil {
			return err
		}
		for _, algo := range algos {
			if err := runOne(table, cfg.GraphFile, b, algo); err != nil {
				return fmt.Errorf("running %s at b=%d: %w", algo.Name(), b, err)
			}
		}
	}

	table.Render()
	return nil
}

// runOne replays the graph file's full delta stream through one algorithm
// instance at one value of b, appending a result row per delta. Each call
// re-reads the graph file from scratch: the original resets its dynamic
// graph to "big bang" before every algorithm (main.cpp's
// G.resetToBigBang()), and re-parsing achieves the same fresh-snapshot
// effect without djgraph needing its own rewind support.
func runOne(table *report.Table, graphFile string, b int, algo matching.Algorithm) error {
	g, w, stream, err := konect.ReadFile(graphFile)
	if err != nil {
		return err
	}

	algo.SetGraph(g)
	algo.SetWeights(w)
	algo.SetNumMatchings(b)
	algo.Init()
	defer func() {
		algo.UnsetWeights()
		algo.UnsetGraph()
	}()

	deltaCounter := 0
	deltaTimer := chrono.New()
	for {
		batch, ok := stream.Next()
		if !ok {
			break
		}
		deltaCounter++
		deltaTime := deltaTimer.Total()

		if err := konect.Apply(g, w, batch); err != nil {
			return err
		}

		runTimer := chrono.New()
		if err := algo.Run(); err != nil {
			return fmt.Errorf("delta %d: %w", deltaCounter, err)
		}
		runTime := runTimer.Total()
		if err := algo.PostRun(); err != nil {
			return fmt.Errorf("delta %d sanity check: %w", deltaCounter, err)
		}

		fine := algo.GetFineCounts()
		coarse := algo.GetCoarseCounts()
		table.AddRow(report.Row{
			B:             b,
			Delta:         deltaCounter,
			Algorithm:     algo.Name(),
			Weight:        algo.Deliver(),
			TimeS:         runTime.Seconds(),
			DeltaTimeS:    deltaTime.Seconds(),
			TotalTimeS:    (deltaTime + runTime).Seconds(),
			FineColor:     fine.ColorCount,
			FineUncolor:   fine.UncolorCount,
			FineRecolor:   fine.RecolorCount,
			CoarseColor:   coarse.ColorCount,
			CoarseUncolor: coarse.UncolorCount,
			CoarseRecolor: coarse.RecolorCount,
			NumEdges:      g.NumArcs(),
			DeltaSize:     len(batch),
		})
		table.Render()
		deltaTimer.Restart()
	}
	return nil
}
