package domain

import "fmt"

// Coordinate is a WGS84 point selected on the restaurant map.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lon float64 `json:"longitude"`
}

// IsZero reports whether the coordinate is the unset sentinel (0,0) stored on
// restaurant records that have never been placed on the map. An unset
// coordinate must fall back to the configured default center instead of being
// geocoded.
func (c Coordinate) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0
}

// Validate checks the WGS84 value ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Lon)
	}
	return nil
}
