package routing

import (
	"encoding/json"
	"errors"
)

//**********************************************************
// distance types
//**********************************************************

type DistanceType byte

const (
	MAX_STOPS    DistanceType = 0
	EXACT_STOPS  DistanceType = 1
	MAX_DISTANCE DistanceType = 2
)

func (self DistanceType) String() string {
	switch self {
	case MAX_STOPS:
		return "max-stops"
	case EXACT_STOPS:
		return "exact-stops"
	case MAX_DISTANCE:
		return "max-distance"
	default:
		panic("unknown distance type")
	}
}
func (self DistanceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *DistanceType) UnmarshalJSON(data []byte) error {
	var typ string
	err := json.Unmarshal(data, &typ)
	if err != nil {
		return err
	}
	*self, err = DistanceTypeFromString(typ)
	return err
}

func DistanceTypeFromString(s string) (DistanceType, error) {
	switch s {
	case "max-stops":
		return MAX_STOPS, nil
	case "exact-stops":
		return EXACT_STOPS, nil
	case "max-distance":
		return MAX_DISTANCE, nil
	default:
		return MAX_STOPS, errors.New("unknown distance type")
	}
}
