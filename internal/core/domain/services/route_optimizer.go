package services

import (
	"fmt"
	"math"

	"tourdispatch/internal/core/domain/model/kernel"
	"tourdispatch/internal/core/domain/model/tour"
)

// RouteOptimizer sequences the stops of a tour with a greedy nearest-neighbour
// walk starting at the city anchor. It does not attempt global optimality.
type RouteOptimizer struct {
	synthesizer CoordinateSynthesizer
}

func NewRouteOptimizer(synthesizer CoordinateSynthesizer) RouteOptimizer {
	return RouteOptimizer{synthesizer: synthesizer}
}

// OptimizeTour returns the tour's order ids in visiting order. The tour itself
// is not modified.
func (r RouteOptimizer) OptimizeTour(t *tour.Tour) ([]string, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	city := t.Key().City
	stops := t.Stops()
	ids := make([]string, len(stops))
	coordinates := make(map[string]kernel.Coordinates, len(stops))
	for i, s := range stops {
		ids[i] = s.OrderID()
		coordinates[s.OrderID()] = r.synthesizer.Synthesize(s.OrderID(), s.Address(), city)
	}

	return r.Optimize(r.synthesizer.Anchor(city), ids, coordinates)
}

// Optimize orders ids by repeatedly visiting the closest unvisited point.
// Ties go to the earlier id in the input. With fewer than two ids the input is
// returned unchanged.
func (r RouteOptimizer) Optimize(
	start kernel.Coordinates,
	ids []string,
	coordinates map[string]kernel.Coordinates,
) ([]string, error) {
	if len(ids) < 2 {
		return ids, nil
	}
	for _, id := range ids {
		if _, ok := coordinates[id]; !ok {
			return nil, fmt.Errorf("optimize route: missing coordinates for %q", id)
		}
	}

	visited := make([]bool, len(ids))
	route := make([]string, 0, len(ids))
	current := start

	for len(route) < len(ids) {
		best := -1
		bestDistance := math.Inf(1)

		for i, id := range ids {
			if visited[i] {
				continue
			}
			d, err := current.Distance(coordinates[id])
			if err != nil {
				return nil, fmt.Errorf("optimize route: %w", err)
			}
			// Strict comparison keeps the first of equally distant stops.
			if d < bestDistance {
				best, bestDistance = i, d
			}
		}

		visited[best] = true
		route = append(route, ids[best])
		current = coordinates[ids[best]]
	}

	return route, nil
}
