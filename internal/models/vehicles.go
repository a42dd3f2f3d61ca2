// ABOUTME: Known vehicle and track lists plus per-vehicle capability flags.
// ABOUTME: The capability map gates which setup fields are semantically valid.
package models

// DefaultVehicle and DefaultTrack seed the blank template.
const (
	DefaultVehicle = "Roadster"
	DefaultTrack   = "富士スピードウェイ"
)

// VehicleList enumerates the known vehicles.
var VehicleList = []string{
	"Roadster",
	"RS3 LMS TCR",
}

// TrackList enumerates the known tracks.
var TrackList = []string{
	"富士スピードウェイ",
	"鈴鹿サーキット",
}

// VehicleConfig is the capability flag set for one vehicle.
type VehicleConfig struct {
	Suspension bool `json:"suspension" yaml:"suspension"`
}

// DefaultVehicleConfigs maps vehicle names to their capabilities.
var DefaultVehicleConfigs = map[string]VehicleConfig{
	"Roadster":    {Suspension: false},
	"RS3 LMS TCR": {Suspension: true},
}

// IsValidVehicle checks if a string is a known vehicle.
func IsValidVehicle(s string) bool {
	for _, v := range VehicleList {
		if v == s {
			return true
		}
	}
	return false
}

// IsValidTrack checks if a string is a known track.
func IsValidTrack(s string) bool {
	for _, t := range TrackList {
		if t == s {
			return true
		}
	}
	return false
}

// HasSuspension reports whether the vehicle's config enables adjustable
// suspension. Unknown vehicles have no capabilities.
func HasSuspension(vehicle string) bool {
	return DefaultVehicleConfigs[vehicle].Suspension
}
