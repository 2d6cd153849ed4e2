package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/philipparndt/gowall/internal/logging"
	"github.com/philipparndt/gowall/pkg/plan"
	"github.com/philipparndt/gowall/pkg/planfile"
)

// loadPlan reads a plan file and logs how long it took
func loadPlan(ctx context.Context, path string) (*plan.Plan, error) {
	progress := logging.StartProgress(logging.FromContext(ctx))
	p, err := planfile.Load(path)
	if err != nil {
		return nil, err
	}
	progress.Done(fmt.Sprintf("Loaded %d walls from %s", p.Len(), path))
	return p, nil
}

// resolveWall finds a wall by id or by its zero-based index
func resolveWall(p *plan.Plan, ref string) (*plan.Wall, int, error) {
	if w := p.Find(ref); w != nil {
		return w, p.Index(ref), nil
	}
	i, err := strconv.Atoi(ref)
	if err != nil {
		return nil, -1, fmt.Errorf("no wall with id %q", ref)
	}
	walls := p.Walls()
	if i < 0 || i >= len(walls) {
		return nil, -1, fmt.Errorf("wall index %d out of range [0, %d)", i, len(walls))
	}
	return walls[i], i, nil
}

// seedPlan builds a reproducible plan of count random walls and returns the
// wall ids in creation order
func seedPlan(count int, seed uint64) (*plan.Plan, []string, error) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	p, err := plan.FromRecords(plan.RandomRecords(rng, count))
	if err != nil {
		return nil, nil, err
	}
	ids := make([]string, 0, p.Len())
	for _, w := range p.Walls() {
		ids = append(ids, w.ID())
	}
	return p, ids, nil
}
