package main

import (
	"errors"

	"github.com/VWoerdings/GlobeScopeAssignment/routing"
)

//**********************************************************
// query handlers
//**********************************************************

func HandleRouteLength(req RouteLengthRequest) Result {
	length, err := ROUTES.RouteLength(routing.ParseRoute(req.Route))
	if errors.Is(err, routing.ErrNoSuchRoute) {
		RouteQueryTotal.WithLabelValues("route-length", "no-route").Inc()
		return OK(NewNoSuchRouteResponse())
	}
	if err != nil {
		RouteQueryTotal.WithLabelValues("route-length", "invalid").Inc()
		return BadRequest(err.Error())
	}
	RouteQueryTotal.WithLabelValues("route-length", "ok").Inc()
	return OK(NewDistanceResponse(length))
}

func HandleCountRoutes(req CountRoutesRequest) Result {
	if req.Source == "" || req.Target == "" {
		RouteQueryTotal.WithLabelValues("count-routes", "invalid").Inc()
		return BadRequest("source and target are required")
	}
	typ, err := routing.DistanceTypeFromString(req.Policy)
	if err != nil {
		RouteQueryTotal.WithLabelValues("count-routes", "invalid").Inc()
		return BadRequest(err.Error())
	}
	count := ROUTES.CountRoutes(req.Source, req.Target, req.Bound, typ)
	RouteQueryTotal.WithLabelValues("count-routes", "ok").Inc()
	return OK(CountRoutesResponse{Count: count})
}

func HandleShortestRoute(req ShortestRouteRequest) Result {
	if req.Source == "" || req.Target == "" {
		RouteQueryTotal.WithLabelValues("shortest-route", "invalid").Inc()
		return BadRequest("source and target are required")
	}
	length, err := ROUTES.ShortestRoute(req.Source, req.Target)
	if errors.Is(err, routing.ErrNoSuchRoute) {
		RouteQueryTotal.WithLabelValues("shortest-route", "no-route").Inc()
		return OK(NewNoSuchRouteResponse())
	}
	RouteQueryTotal.WithLabelValues("shortest-route", "ok").Inc()
	return OK(NewDistanceResponse(length))
}

func HandleStatus(none) Result {
	g := ROUTES.Graph()
	return OK(StatusResponse{
		Stops:       g.NodeCount(),
		Connections: g.EdgeCount(),
	})
}
