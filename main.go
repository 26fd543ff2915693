package main

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"github.com/VWoerdings/GlobeScopeAssignment/graph"
	"github.com/VWoerdings/GlobeScopeAssignment/parser"
	"github.com/VWoerdings/GlobeScopeAssignment/routing"
)

var ROUTES *routing.RouteMap

func main() {
	slog.SetDefault(slog.New(NewLogHandler(os.Stdout, nil)))

	config := ReadConfig("./config.yaml")

	records, err := parser.ParseEdgeList(config.Graph.EdgeList)
	if err != nil {
		slog.Error("failed to read edge list: " + err.Error())
		panic(err)
	}
	g := graph.BuildTransitGraph(records)
	ROUTES = routing.NewRouteMap(g)
	GraphStops.Set(float64(g.NodeCount()))
	GraphConnections.Set(float64(g.EdgeCount()))

	app := http.NewServeMux()
	MapPost(app, "/v1/route/length", HandleRouteLength)
	MapPost(app, "/v1/route/count", HandleCountRoutes)
	MapPost(app, "/v1/route/shortest", HandleShortestRoute)
	MapGet(app, "/v1/status", HandleStatus)
	app.Handle("/metrics", promhttp.Handler())

	slog.Info("serving on " + config.Server.Address)
	http.ListenAndServe(config.Server.Address, app)
}
