package engine

import "github.com/piwi3910/cutstock/internal/model"

// Scenario2D names one Options2D configuration to evaluate against a
// fixed set of pieces and stocks.
type Scenario2D struct {
	Name string
	Opts model.Options2D
}

// ScenarioResult2D pairs a scenario with the result of running it.
type ScenarioResult2D struct {
	Name   string
	Result model.Result2D
	Err    error
}

// CompareScenarios2D runs every scenario against the same pieces and
// stocks and returns one result per scenario, in input order, so callers
// can rank algorithms/heuristics without re-running the optimizer by hand.
func CompareScenarios2D(pieces []model.Piece2D, stocks []model.Stock2D, scenarios []Scenario2D) []ScenarioResult2D {
	out := make([]ScenarioResult2D, 0, len(scenarios))
	for _, sc := range scenarios {
		res, err := Optimize2D(pieces, stocks, sc.Opts)
		out = append(out, ScenarioResult2D{Name: sc.Name, Result: res, Err: err})
	}
	return out
}

// BuildDefaultScenarios2D returns one scenario per built-in 2D algorithm,
// each a copy of base with only the algorithm replaced (so MAXRECTS uses
// base's heuristic), for a baseline comparison run.
func BuildDefaultScenarios2D(base model.Options2D) []Scenario2D {
	withAlgorithm := func(alg model.Algorithm2D) model.Options2D {
		o := base
		o.Algorithm = alg
		return o
	}
	return []Scenario2D{
		{Name: "bottom_left", Opts: withAlgorithm(model.BottomLeft)},
		{Name: "guillotine", Opts: withAlgorithm(model.Guillotine)},
		{Name: "maxrects", Opts: withAlgorithm(model.MaxRects)},
		{Name: "maxrects_best", Opts: withAlgorithm(model.MaxRectsBest)},
	}
}

// BestScenario2D returns the name and result of the scenario with the
// fewest unplaced pieces, breaking ties by fewer sheets used and then by
// lower total waste area.
func BestScenario2D(results []ScenarioResult2D) (ScenarioResult2D, bool) {
	var best *ScenarioResult2D
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			continue
		}
		if best == nil || betterResult2D(r.Result, best.Result) {
			best = r
		}
	}
	if best == nil {
		return ScenarioResult2D{}, false
	}
	return *best, true
}
