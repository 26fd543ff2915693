package routing

import (
	"github.com/VWoerdings/GlobeScopeAssignment/graph"
)

//**********************************************************
// route enumeration
//**********************************************************

type EnumerateOptions struct {
	// Cumulative keeps every route within the budget instead of only
	// routes that consume it exactly.
	Cumulative bool
	// UseWeights charges edge weights against the budget instead of one
	// unit per traversed connection.
	UseWeights bool
}

type searchState struct {
	route  Route
	budget int64
}

// EnumerateRoutes collects the distinct routes starting at source whose
// consumption satisfies bound. Repeated stops are allowed as long as
// the budget permits, so a stop can reach itself. Routes that have not
// traversed at least one connection are never returned.
//
// Termination: every pushed state carries a strictly smaller budget
// than its parent, weights are positive.
func EnumerateRoutes(g *graph.TransitGraph, source string, bound int64, opts EnumerateOptions) []Route {
	found := make(map[string]Route, 16)
	stack := make([]searchState, 0, 16)
	stack = append(stack, searchState{route: Route{source}, budget: bound})
	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if state.budget == 0 {
			// exact landing, the only result on this branch
			if len(state.route) > 1 {
				found[state.route.key()] = state.route
			}
			continue
		}
		if opts.Cumulative && len(state.route) > 1 {
			found[state.route.key()] = state.route
		}
		current := state.route.Last()
		for _, next := range g.Successors(current) {
			cost := int64(1)
			if opts.UseWeights {
				weight, ok := g.EdgeWeight(current, next)
				if !ok {
					continue
				}
				cost = weight
			}
			if cost > state.budget {
				continue
			}
			extended := make(Route, len(state.route), len(state.route)+1)
			copy(extended, state.route)
			extended = append(extended, next)
			stack = append(stack, searchState{route: extended, budget: state.budget - cost})
		}
	}
	routes := make([]Route, 0, len(found))
	for _, route := range found {
		routes = append(routes, route)
	}
	return routes
}
