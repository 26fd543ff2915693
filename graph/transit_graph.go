package graph

import (
	"math"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dijkstra"

	"github.com/VWoerdings/GlobeScopeAssignment/parser"
)

//**********************************************************
// transit graph
//**********************************************************

// TransitGraph wraps the lvlath digraph with the lookups the route
// queries need. The graph is built once and read-only afterwards.
type TransitGraph struct {
	g *core.Graph
}

func NewTransitGraph() *TransitGraph {
	// directed, weighted
	return &TransitGraph{
		g: core.NewGraph(true, true),
	}
}

// BuildTransitGraph builds the network from parsed edge-list records.
// Stops are created implicitly, a second record for the same ordered
// pair replaces the first.
func BuildTransitGraph(records []parser.ConnectionRecord) *TransitGraph {
	type pair struct {
		from string
		to   string
	}
	weights := make(map[pair]int64, len(records))
	order := make([]pair, 0, len(records))
	for _, record := range records {
		p := pair{record.From, record.To}
		if _, ok := weights[p]; !ok {
			order = append(order, p)
		}
		weights[p] = record.Weight
	}
	graph := NewTransitGraph()
	for _, p := range order {
		graph.g.AddEdge(p.from, p.to, weights[p])
	}
	return graph
}

func (self *TransitGraph) NodeCount() int {
	return self.g.VertexCount()
}

func (self *TransitGraph) EdgeCount() int {
	return self.g.EdgeCount()
}

// Successors returns the stops directly reachable from node.
func (self *TransitGraph) Successors(node string) []string {
	edges, err := self.g.Neighbors(node)
	if err != nil {
		return nil
	}
	succs := make([]string, 0, len(edges))
	for _, edge := range edges {
		if edge.From == node {
			succs = append(succs, edge.To)
		}
	}
	return succs
}

// EdgeWeight returns the weight of the directed connection from -> to.
func (self *TransitGraph) EdgeWeight(from string, to string) (int64, bool) {
	edges, err := self.g.Neighbors(from)
	if err != nil {
		return 0, false
	}
	for _, edge := range edges {
		if edge.From == from && edge.To == to {
			return edge.Weight, true
		}
	}
	return 0, false
}

// ShortestPathLength returns the weight of the minimum-weight path
// between the two stops. The second return is false when target is not
// reachable from source. A stop trivially reaches itself with length 0.
func (self *TransitGraph) ShortestPathLength(source string, target string) (int64, bool) {
	dist, _, err := dijkstra.Dijkstra(self.g, dijkstra.Source(source))
	if err != nil {
		return 0, false
	}
	d, ok := dist[target]
	if !ok || d == math.MaxInt64 {
		return 0, false
	}
	return d, true
}

// HasPath reports whether target is reachable from source.
func (self *TransitGraph) HasPath(source string, target string) bool {
	_, ok := self.ShortestPathLength(source, target)
	return ok
}
