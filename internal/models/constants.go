package models

// Common constants used across the application
const (
	// DateLayout is the wire format of plant dates.
	DateLayout = "2006-01-02"

	// SwitzerlandCenterLat and SwitzerlandCenterLon centre the national map
	// and serve as the fallback centre of canton maps.
	SwitzerlandCenterLat = 46.8
	SwitzerlandCenterLon = 8.3
)
