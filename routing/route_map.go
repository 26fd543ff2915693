package routing

import (
	"errors"
	"math"

	"github.com/VWoerdings/GlobeScopeAssignment/graph"
)

//**********************************************************
// route queries
//**********************************************************

var (
	// ErrNoSuchRoute reports that the requested path does not exist in
	// the network. It is an expected query outcome, not a failure.
	ErrNoSuchRoute = errors.New("no such route")

	// ErrInvalidRoute reports malformed route input.
	ErrInvalidRoute = errors.New("route must contain at least two stops")
)

// RouteMap answers queries about the transit network.
type RouteMap struct {
	g *graph.TransitGraph
}

func NewRouteMap(g *graph.TransitGraph) *RouteMap {
	return &RouteMap{g: g}
}

func (self *RouteMap) Graph() *graph.TransitGraph {
	return self.g
}

// RouteLength sums the weights along the given route. It fails with
// ErrNoSuchRoute on the first missing connection.
func (self *RouteMap) RouteLength(route Route) (int64, error) {
	if len(route) < 2 {
		return 0, ErrInvalidRoute
	}
	total := int64(0)
	for i := 0; i < len(route)-1; i++ {
		weight, ok := self.g.EdgeWeight(route[i], route[i+1])
		if !ok {
			return 0, ErrNoSuchRoute
		}
		total += weight
	}
	return total, nil
}

// CountRoutes returns the number of distinct routes between source and
// target within bound. The distance type selects how the bound is
// consumed and whether shorter routes count as well.
func (self *RouteMap) CountRoutes(source string, target string, bound int64, typ DistanceType) int {
	var opts EnumerateOptions
	switch typ {
	case MAX_STOPS:
		opts = EnumerateOptions{Cumulative: true, UseWeights: false}
	case EXACT_STOPS:
		opts = EnumerateOptions{Cumulative: false, UseWeights: false}
	case MAX_DISTANCE:
		opts = EnumerateOptions{Cumulative: true, UseWeights: true}
	default:
		panic("unknown distance type")
	}
	count := 0
	for _, route := range EnumerateRoutes(self.g, source, bound, opts) {
		if route.Last() == target {
			count++
		}
	}
	return count
}

// ShortestRoute returns the weight of the minimum-weight route between
// the two stops. When source and target are the same stop the trivial
// zero-length path does not count; the route has to leave the stop and
// come back, so the minimum is taken over all outgoing connections plus
// the shortest way back from their endpoint.
func (self *RouteMap) ShortestRoute(source string, target string) (int64, error) {
	if source != target {
		dist, ok := self.g.ShortestPathLength(source, target)
		if !ok {
			return 0, ErrNoSuchRoute
		}
		return dist, nil
	}
	shortest := int64(math.MaxInt64)
	for _, next := range self.g.Successors(source) {
		weight, ok := self.g.EdgeWeight(source, next)
		if !ok {
			continue
		}
		dist, ok := self.g.ShortestPathLength(next, target)
		if !ok {
			continue
		}
		if weight+dist < shortest {
			shortest = weight + dist
		}
	}
	if shortest == math.MaxInt64 {
		return 0, ErrNoSuchRoute
	}
	return shortest, nil
}
