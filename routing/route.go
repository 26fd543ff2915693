package routing

import (
	"strings"
)

//**********************************************************
// routes
//**********************************************************

// Route is a walk through the network, stored as the ordered list of
// visited stops.
type Route []string

func (self Route) Last() string {
	return self[len(self)-1]
}

func (self Route) String() string {
	return strings.Join(self, "")
}

// key joins the stops with a separator so that stop names longer than
// one character cannot collide.
func (self Route) key() string {
	return strings.Join(self, "\x1f")
}

// ParseRoute splits the wire form of a route ("ABC") into its stops.
func ParseRoute(text string) Route {
	route := make(Route, 0, len(text))
	for _, c := range text {
		route = append(route, string(c))
	}
	return route
}
