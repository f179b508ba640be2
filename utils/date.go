package utils

import "time"

// LoadZone resolves an IANA zone name, falling back to a fixed offset
// when tzdata is unavailable (e.g. scratch containers).
func LoadZone(name string, fallbackName string, fallbackOffsetSeconds int) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone(fallbackName, fallbackOffsetSeconds)
	}
	return loc
}
