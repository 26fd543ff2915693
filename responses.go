package main

//**********************************************************
// query responses
//**********************************************************

const NO_SUCH_ROUTE = "NO SUCH ROUTE"

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

type DistanceResponse struct {
	Distance int64  `json:"distance"`
	Message  string `json:"message,omitempty"`
}

func NewDistanceResponse(distance int64) DistanceResponse {
	return DistanceResponse{
		Distance: distance,
	}
}

// NewNoSuchRouteResponse reports the expected "route does not exist"
// outcome as a normal response, not as an HTTP error.
func NewNoSuchRouteResponse() DistanceResponse {
	return DistanceResponse{
		Distance: -1,
		Message:  NO_SUCH_ROUTE,
	}
}

type CountRoutesResponse struct {
	Count int `json:"count"`
}

type StatusResponse struct {
	Stops       int `json:"stops"`
	Connections int `json:"connections"`
}
