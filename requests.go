package main

//**********************************************************
// query requests
//**********************************************************

type RouteLengthRequest struct {
	// concatenated one-character stop names, e.g. "ABC"
	Route string `json:"route"`
}

type CountRoutesRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Bound  int64  `json:"bound"`
	Policy string `json:"policy"`
}

type ShortestRouteRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}
