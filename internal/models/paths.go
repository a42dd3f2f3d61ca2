// ABOUTME: Closed set of dot-delimited field paths for sheet mutation.
// ABOUTME: Raw string input is coerced per field; the enumeration documents the schema.
package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// fieldSetter applies one raw input value to its field, coercing as needed.
type fieldSetter func(s *SetupSheet, value string)

// parseOptionalFloat coerces raw input for an optional numeric field.
// Empty or non-numeric input means "not recorded", never zero.
func parseOptionalFloat(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ensureSuspension creates the suspension container on demand so deep
// paths can be set on sheets that never had one.
func ensureSuspension(s *SetupSheet) *Suspension {
	if s.SetupBefore.Suspension == nil {
		s.SetupBefore.Suspension = &Suspension{}
	}
	return s.SetupBefore.Suspension
}

func damperSetters(pos WheelPos) (bump, rebound fieldSetter) {
	bump = func(s *SetupSheet, v string) {
		ensureSuspension(s).Dampers.At(pos).Bump = parseOptionalFloat(v)
	}
	rebound = func(s *SetupSheet, v string) {
		ensureSuspension(s).Dampers.At(pos).Rebound = parseOptionalFloat(v)
	}
	return bump, rebound
}

var fieldSetters = buildFieldSetters()

func buildFieldSetters() map[string]fieldSetter {
	m := map[string]fieldSetter{
		"vehicle":     func(s *SetupSheet, v string) { s.Vehicle = v },
		"trackName":   func(s *SetupSheet, v string) { s.TrackName = v },
		"dateTime":    func(s *SetupSheet, v string) { s.DateTime = v },
		"driver":      func(s *SetupSheet, v string) { s.Driver = v },
		"sessionType": func(s *SetupSheet, v string) { s.SessionType = v },

		"environment.weather":   func(s *SetupSheet, v string) { s.Environment.Weather = v },
		"environment.airTemp":   func(s *SetupSheet, v string) { s.Environment.AirTemp = parseOptionalFloat(v) },
		"environment.trackTemp": func(s *SetupSheet, v string) { s.Environment.TrackTemp = parseOptionalFloat(v) },
		"environment.humidity":  func(s *SetupSheet, v string) { s.Environment.Humidity = parseOptionalFloat(v) },
		"environment.pressure":  func(s *SetupSheet, v string) { s.Environment.Pressure = parseOptionalFloat(v) },

		"setupBefore.tires.brand":    func(s *SetupSheet, v string) { s.SetupBefore.Tires.Brand = v },
		"setupBefore.tires.compound": func(s *SetupSheet, v string) { s.SetupBefore.Tires.Compound = v },
		"setupBefore.tires.mileage":  func(s *SetupSheet, v string) { s.SetupBefore.Tires.Mileage = parseOptionalFloat(v) },

		"setupBefore.engine.oilBrand":     func(s *SetupSheet, v string) { s.SetupBefore.Engine.OilBrand = v },
		"setupBefore.engine.oilViscosity": func(s *SetupSheet, v string) { s.SetupBefore.Engine.OilViscosity = v },
		"setupBefore.engine.oilMileage":   func(s *SetupSheet, v string) { s.SetupBefore.Engine.OilMileage = parseOptionalFloat(v) },

		"setupBefore.fuel": func(s *SetupSheet, v string) { s.SetupBefore.Fuel = parseOptionalFloat(v) },

		"setupBefore.suspension.rideHeight.front": func(s *SetupSheet, v string) {
			ensureSuspension(s).RideHeight.Front = parseOptionalFloat(v)
		},
		"setupBefore.suspension.rideHeight.rear": func(s *SetupSheet, v string) {
			ensureSuspension(s).RideHeight.Rear = parseOptionalFloat(v)
		},

		"setupAfter.tires.brand":    func(s *SetupSheet, v string) { s.SetupAfter.Tires.Brand = v },
		"setupAfter.tires.compound": func(s *SetupSheet, v string) { s.SetupAfter.Tires.Compound = v },
		"setupAfter.tires.mileage":  func(s *SetupSheet, v string) { s.SetupAfter.Tires.Mileage = parseOptionalFloat(v) },

		"driverNotes.freeText": func(s *SetupSheet, v string) { s.DriverNotes.FreeText = v },
	}

	for _, pos := range AllWheelPositions {
		pos := pos
		m["setupBefore.tires.pressure."+string(pos)] = func(s *SetupSheet, v string) {
			*pressureField(&s.SetupBefore.Tires.Pressure, pos) = parseOptionalFloat(v)
		}
		m["setupAfter.tires.pressure."+string(pos)] = func(s *SetupSheet, v string) {
			*pressureField(&s.SetupAfter.Tires.Pressure, pos) = parseOptionalFloat(v)
		}
		bump, rebound := damperSetters(pos)
		m["setupBefore.suspension.dampers."+string(pos)+".bump"] = bump
		m["setupBefore.suspension.dampers."+string(pos)+".rebound"] = rebound
	}

	for _, band := range AllSpeedBands {
		for _, phase := range AllCornerPhases {
			band, phase := band, phase
			m["driverNotes.cornerBalance."+string(band)+"."+string(phase)] = func(s *SetupSheet, v string) {
				if !IsValidBalance(v) {
					return
				}
				*s.DriverNotes.CornerBalance.Band(band).At(phase) = Balance(v)
			}
		}
	}

	return m
}

func pressureField(p *PressureSet, pos WheelPos) **float64 {
	switch pos {
	case WheelFL:
		return &p.FL
	case WheelFR:
		return &p.FR
	case WheelRL:
		return &p.RL
	default:
		return &p.RR
	}
}

// KnownFieldPaths returns every addressable path, sorted.
func KnownFieldPaths() []string {
	paths := make([]string, 0, len(fieldSetters))
	for p := range fieldSetters {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// IsKnownFieldPath checks if a path is addressable.
func IsKnownFieldPath(path string) bool {
	_, ok := fieldSetters[path]
	return ok
}

// SetField applies a raw string value to a known dot-delimited path,
// creating intermediate containers as needed. Numeric fields coerce empty
// or malformed input to "not recorded". Unknown paths are rejected.
func (s *SetupSheet) SetField(path, value string) error {
	setter, ok := fieldSetters[path]
	if !ok {
		return fmt.Errorf("unknown field path: %s", path)
	}
	setter(s, value)
	return nil
}
