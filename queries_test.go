package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VWoerdings/GlobeScopeAssignment/graph"
	"github.com/VWoerdings/GlobeScopeAssignment/parser"
	"github.com/VWoerdings/GlobeScopeAssignment/routing"
)

func setupTestServer(t *testing.T) *httptest.Server {
	records, err := parser.ParseEdgeList("./network.txt")
	if err != nil {
		t.Fatalf("failed to load test network: %v", err)
	}
	ROUTES = routing.NewRouteMap(graph.BuildTransitGraph(records))

	app := http.NewServeMux()
	MapPost(app, "/v1/route/length", HandleRouteLength)
	MapPost(app, "/v1/route/count", HandleCountRoutes)
	MapPost(app, "/v1/route/shortest", HandleShortestRoute)
	MapGet(app, "/v1/status", HandleStatus)
	server := httptest.NewServer(app)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHandleRouteLength(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/v1/route/length", RouteLengthRequest{Route: "ABC"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v; want 200", resp.StatusCode)
	}
	var body DistanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Distance != 9 || body.Message != "" {
		t.Errorf("body = %+v; want distance 9", body)
	}
}

func TestHandleRouteLengthNoSuchRoute(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/v1/route/length", RouteLengthRequest{Route: "AED"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v; want 200", resp.StatusCode)
	}
	var body DistanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != NO_SUCH_ROUTE {
		t.Errorf("message = %q; want %q", body.Message, NO_SUCH_ROUTE)
	}
}

func TestHandleRouteLengthInvalid(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/v1/route/length", RouteLengthRequest{Route: "A"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %v; want 400", resp.StatusCode)
	}
}

func TestHandleCountRoutes(t *testing.T) {
	server := setupTestServer(t)

	known_counts := []struct {
		req  CountRoutesRequest
		want int
	}{
		{CountRoutesRequest{Source: "C", Target: "C", Bound: 3, Policy: "max-stops"}, 2},
		{CountRoutesRequest{Source: "A", Target: "C", Bound: 4, Policy: "exact-stops"}, 3},
		{CountRoutesRequest{Source: "C", Target: "C", Bound: 29, Policy: "max-distance"}, 7},
	}
	for _, test := range known_counts {
		resp := postJSON(t, server.URL+"/v1/route/count", test.req)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %v; want 200", resp.StatusCode)
		}
		var body CountRoutesResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Count != test.want {
			t.Errorf("count for %+v = %v; want %v", test.req, body.Count, test.want)
		}
	}
}

func TestHandleCountRoutesUnknownPolicy(t *testing.T) {
	server := setupTestServer(t)

	req := CountRoutesRequest{Source: "A", Target: "C", Bound: 3, Policy: "fastest"}
	resp := postJSON(t, server.URL+"/v1/route/count", req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %v; want 400", resp.StatusCode)
	}
}

func TestHandleShortestRoute(t *testing.T) {
	server := setupTestServer(t)

	known_lengths := []struct {
		req  ShortestRouteRequest
		want int64
	}{
		{ShortestRouteRequest{Source: "A", Target: "C"}, 9},
		{ShortestRouteRequest{Source: "B", Target: "B"}, 9},
	}
	for _, test := range known_lengths {
		resp := postJSON(t, server.URL+"/v1/route/shortest", test.req)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %v; want 200", resp.StatusCode)
		}
		var body DistanceResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if body.Distance != test.want {
			t.Errorf("distance for %+v = %v; want %v", test.req, body.Distance, test.want)
		}
	}
}

func TestHandleShortestRouteUnreachable(t *testing.T) {
	server := setupTestServer(t)

	resp := postJSON(t, server.URL+"/v1/route/shortest", ShortestRouteRequest{Source: "C", Target: "A"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v; want 200", resp.StatusCode)
	}
	var body DistanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != NO_SUCH_ROUTE {
		t.Errorf("message = %q; want %q", body.Message, NO_SUCH_ROUTE)
	}
}

func TestHandleStatus(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/v1/status")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %v; want 200", resp.StatusCode)
	}
	var body StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Stops != 5 || body.Connections != 9 {
		t.Errorf("body = %+v; want 5 stops, 9 connections", body)
	}
}
