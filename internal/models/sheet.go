// ABOUTME: SetupSheet model for motorsport session records.
// ABOUTME: Defines the sheet shape, blank template, deep clone, and id generation.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateTimeLayout is the storage format for sheet timestamps: local
// wall-clock, minute precision, no timezone offset.
const DateTimeLayout = "2006-01-02T15:04"

// Balance is a driver's understeer/oversteer assessment for one cell of
// the corner-balance grid.
type Balance string

const (
	BalanceNeutral Balance = "neutral"
	BalanceUnder   Balance = "under"
	BalanceOver    Balance = "over"
)

// IsValidBalance checks if a string is a valid balance value.
func IsValidBalance(s string) bool {
	switch Balance(s) {
	case BalanceNeutral, BalanceUnder, BalanceOver:
		return true
	}
	return false
}

// WheelPos identifies one of the four wheel positions.
type WheelPos string

const (
	WheelFL WheelPos = "fl"
	WheelFR WheelPos = "fr"
	WheelRL WheelPos = "rl"
	WheelRR WheelPos = "rr"
)

// AllWheelPositions lists the four positions in display order.
var AllWheelPositions = []WheelPos{WheelFL, WheelFR, WheelRL, WheelRR}

// PressureSet holds tire pressures (kPa) for the four wheel positions.
// Each position is independently optional; nil means "not recorded".
type PressureSet struct {
	FL *float64 `json:"fl,omitempty" yaml:"fl,omitempty"`
	FR *float64 `json:"fr,omitempty" yaml:"fr,omitempty"`
	RL *float64 `json:"rl,omitempty" yaml:"rl,omitempty"`
	RR *float64 `json:"rr,omitempty" yaml:"rr,omitempty"`
}

// At returns the pressure for a position, or nil if not recorded.
func (p *PressureSet) At(pos WheelPos) *float64 {
	if p == nil {
		return nil
	}
	switch pos {
	case WheelFL:
		return p.FL
	case WheelFR:
		return p.FR
	case WheelRL:
		return p.RL
	case WheelRR:
		return p.RR
	}
	return nil
}

func (p *PressureSet) clone() PressureSet {
	if p == nil {
		return PressureSet{}
	}
	return PressureSet{
		FL: cloneFloat(p.FL),
		FR: cloneFloat(p.FR),
		RL: cloneFloat(p.RL),
		RR: cloneFloat(p.RR),
	}
}

// Environment holds the weather and track conditions for a session.
type Environment struct {
	Weather   string   `json:"weather,omitempty" yaml:"weather,omitempty"`
	AirTemp   *float64 `json:"airTemp,omitempty" yaml:"airTemp,omitempty"`
	TrackTemp *float64 `json:"trackTemp,omitempty" yaml:"trackTemp,omitempty"`
	Humidity  *float64 `json:"humidity,omitempty" yaml:"humidity,omitempty"`
	Pressure  *float64 `json:"pressure,omitempty" yaml:"pressure,omitempty"`
}

func (e Environment) clone() Environment {
	return Environment{
		Weather:   e.Weather,
		AirTemp:   cloneFloat(e.AirTemp),
		TrackTemp: cloneFloat(e.TrackTemp),
		Humidity:  cloneFloat(e.Humidity),
		Pressure:  cloneFloat(e.Pressure),
	}
}

// Tires holds tire details and the per-wheel pressure set.
type Tires struct {
	Brand    string      `json:"brand,omitempty" yaml:"brand,omitempty"`
	Compound string      `json:"compound,omitempty" yaml:"compound,omitempty"`
	Mileage  *float64    `json:"mileage,omitempty" yaml:"mileage,omitempty"`
	Pressure PressureSet `json:"pressure" yaml:"pressure"`
}

// Engine holds oil details; only meaningful on the pre-session setup.
type Engine struct {
	OilBrand     string   `json:"oilBrand,omitempty" yaml:"oilBrand,omitempty"`
	OilViscosity string   `json:"oilViscosity,omitempty" yaml:"oilViscosity,omitempty"`
	OilMileage   *float64 `json:"oilMileage,omitempty" yaml:"oilMileage,omitempty"`
}

// RideHeight holds front/rear ride height in mm.
type RideHeight struct {
	Front *float64 `json:"front,omitempty" yaml:"front,omitempty"`
	Rear  *float64 `json:"rear,omitempty" yaml:"rear,omitempty"`
}

// Damper holds bump/rebound click counts for one wheel.
type Damper struct {
	Bump    *float64 `json:"bump,omitempty" yaml:"bump,omitempty"`
	Rebound *float64 `json:"rebound,omitempty" yaml:"rebound,omitempty"`
}

func (d Damper) clone() Damper {
	return Damper{Bump: cloneFloat(d.Bump), Rebound: cloneFloat(d.Rebound)}
}

// DamperSet holds damper settings for the four wheel positions.
type DamperSet struct {
	FL Damper `json:"fl" yaml:"fl"`
	FR Damper `json:"fr" yaml:"fr"`
	RL Damper `json:"rl" yaml:"rl"`
	RR Damper `json:"rr" yaml:"rr"`
}

// At returns the damper settings for a position.
func (d *DamperSet) At(pos WheelPos) *Damper {
	switch pos {
	case WheelFL:
		return &d.FL
	case WheelFR:
		return &d.FR
	case WheelRL:
		return &d.RL
	case WheelRR:
		return &d.RR
	}
	return nil
}

// Suspension holds ride height and damper settings. Only present on the
// pre-session setup, and only relevant when the vehicle config enables it.
type Suspension struct {
	RideHeight RideHeight `json:"rideHeight" yaml:"rideHeight"`
	Dampers    DamperSet  `json:"dampers" yaml:"dampers"`
}

func (s *Suspension) clone() *Suspension {
	if s == nil {
		return nil
	}
	return &Suspension{
		RideHeight: RideHeight{
			Front: cloneFloat(s.RideHeight.Front),
			Rear:  cloneFloat(s.RideHeight.Rear),
		},
		Dampers: DamperSet{
			FL: s.Dampers.FL.clone(),
			FR: s.Dampers.FR.clone(),
			RL: s.Dampers.RL.clone(),
			RR: s.Dampers.RR.clone(),
		},
	}
}

// Setup is one configuration state. SetupBefore carries the full set of
// fields; SetupAfter only records tires (hot pressures).
type Setup struct {
	Tires      Tires       `json:"tires" yaml:"tires"`
	Engine     Engine      `json:"engine,omitempty" yaml:"engine,omitempty"`
	Fuel       *float64    `json:"fuel,omitempty" yaml:"fuel,omitempty"`
	Suspension *Suspension `json:"suspension,omitempty" yaml:"suspension,omitempty"`
}

func (s Setup) clone() Setup {
	return Setup{
		Tires: Tires{
			Brand:    s.Tires.Brand,
			Compound: s.Tires.Compound,
			Mileage:  cloneFloat(s.Tires.Mileage),
			Pressure: s.Tires.Pressure.clone(),
		},
		Engine: Engine{
			OilBrand:     s.Engine.OilBrand,
			OilViscosity: s.Engine.OilViscosity,
			OilMileage:   cloneFloat(s.Engine.OilMileage),
		},
		Fuel:       cloneFloat(s.Fuel),
		Suspension: s.Suspension.clone(),
	}
}

// SpeedBand is a row of the corner-balance grid.
type SpeedBand string

const (
	LowSpeed  SpeedBand = "lowSpeed"
	MidSpeed  SpeedBand = "midSpeed"
	HighSpeed SpeedBand = "highSpeed"
)

// AllSpeedBands lists the grid rows in display order.
var AllSpeedBands = []SpeedBand{LowSpeed, MidSpeed, HighSpeed}

// CornerPhase is a column of the corner-balance grid.
type CornerPhase string

const (
	PhaseEntry CornerPhase = "entry"
	PhaseMid   CornerPhase = "mid"
	PhaseExit  CornerPhase = "exit"
)

// AllCornerPhases lists the grid columns in display order.
var AllCornerPhases = []CornerPhase{PhaseEntry, PhaseMid, PhaseExit}

// PhaseBalance holds the three corner-phase cells for one speed band.
type PhaseBalance struct {
	Entry Balance `json:"entry" yaml:"entry"`
	Mid   Balance `json:"mid" yaml:"mid"`
	Exit  Balance `json:"exit" yaml:"exit"`
}

func (p *PhaseBalance) normalize() {
	if p.Entry == "" {
		p.Entry = BalanceNeutral
	}
	if p.Mid == "" {
		p.Mid = BalanceNeutral
	}
	if p.Exit == "" {
		p.Exit = BalanceNeutral
	}
}

// At returns the cell for a corner phase.
func (p *PhaseBalance) At(phase CornerPhase) *Balance {
	switch phase {
	case PhaseEntry:
		return &p.Entry
	case PhaseMid:
		return &p.Mid
	case PhaseExit:
		return &p.Exit
	}
	return nil
}

// CornerBalance is the fixed 3x3 grid of understeer/oversteer assessments,
// speed band by corner phase. All nine cells are always present.
type CornerBalance struct {
	LowSpeed  PhaseBalance `json:"lowSpeed" yaml:"lowSpeed"`
	MidSpeed  PhaseBalance `json:"midSpeed" yaml:"midSpeed"`
	HighSpeed PhaseBalance `json:"highSpeed" yaml:"highSpeed"`
}

// Band returns the row for a speed band.
func (c *CornerBalance) Band(band SpeedBand) *PhaseBalance {
	switch band {
	case LowSpeed:
		return &c.LowSpeed
	case MidSpeed:
		return &c.MidSpeed
	case HighSpeed:
		return &c.HighSpeed
	}
	return nil
}

// Cells flattens the grid into its nine cells, row by row.
func (c *CornerBalance) Cells() []Balance {
	return []Balance{
		c.LowSpeed.Entry, c.LowSpeed.Mid, c.LowSpeed.Exit,
		c.MidSpeed.Entry, c.MidSpeed.Mid, c.MidSpeed.Exit,
		c.HighSpeed.Entry, c.HighSpeed.Mid, c.HighSpeed.Exit,
	}
}

// DriverNotes holds the driver's free text and corner-balance grid.
type DriverNotes struct {
	FreeText      string        `json:"freeText" yaml:"freeText"`
	CornerBalance CornerBalance `json:"cornerBalance" yaml:"cornerBalance"`
}

// SetupSheet is one logged record of vehicle configuration and conditions
// for a single track session.
type SetupSheet struct {
	ID          string      `json:"id" yaml:"id"`
	Vehicle     string      `json:"vehicle" yaml:"vehicle"`
	TrackName   string      `json:"trackName" yaml:"trackName"`
	DateTime    string      `json:"dateTime" yaml:"dateTime"`
	Driver      string      `json:"driver,omitempty" yaml:"driver,omitempty"`
	SessionType string      `json:"sessionType,omitempty" yaml:"sessionType,omitempty"`
	Environment Environment `json:"environment" yaml:"environment"`
	SetupBefore Setup       `json:"setupBefore" yaml:"setupBefore"`
	SetupAfter  Setup       `json:"setupAfter" yaml:"setupAfter"`
	DriverNotes DriverNotes `json:"driverNotes" yaml:"driverNotes"`
}

// Clone returns an independently owned deep copy of the sheet. Every
// hand-off between the committed collection and a draft goes through here.
func (s *SetupSheet) Clone() *SetupSheet {
	if s == nil {
		return nil
	}
	out := &SetupSheet{
		ID:          s.ID,
		Vehicle:     s.Vehicle,
		TrackName:   s.TrackName,
		DateTime:    s.DateTime,
		Driver:      s.Driver,
		SessionType: s.SessionType,
		Environment: s.Environment.clone(),
		SetupBefore: s.SetupBefore.clone(),
		SetupAfter:  s.SetupAfter.clone(),
		DriverNotes: DriverNotes{
			FreeText:      s.DriverNotes.FreeText,
			CornerBalance: s.DriverNotes.CornerBalance,
		},
	}
	return out
}

// Normalize fills structural gaps so readers can index unconditionally:
// empty corner-balance cells default to neutral.
func (s *SetupSheet) Normalize() {
	s.DriverNotes.CornerBalance.LowSpeed.normalize()
	s.DriverNotes.CornerBalance.MidSpeed.normalize()
	s.DriverNotes.CornerBalance.HighSpeed.normalize()
}

// NewSheetID generates a fresh session id. Millisecond timestamp plus a
// UUID fragment keeps ids unique even within the same instant.
func NewSheetID() string {
	return fmt.Sprintf("session-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// BlankSheet returns the canonical blank template for new-sheet creation.
// Fields not present here are treated by readers as "not recorded".
func BlankSheet() *SetupSheet {
	s := &SetupSheet{
		Vehicle:     DefaultVehicle,
		TrackName:   DefaultTrack,
		SessionType: "New Session",
		SetupBefore: Setup{
			Suspension: &Suspension{},
		},
	}
	s.Normalize()
	return s
}

// NewSheet creates a sheet ready for insertion: a deep copy of base with
// the session type suffixed as a copy, or the blank template. A fresh id
// and the current wall-clock minute are assigned either way.
func NewSheet(base *SetupSheet) *SetupSheet {
	var s *SetupSheet
	if base != nil {
		s = base.Clone()
		sessionType := base.SessionType
		if sessionType == "" {
			sessionType = "New Session"
		}
		s.SessionType = sessionType + " (コピー)"
	} else {
		s = BlankSheet()
	}
	s.ID = NewSheetID()
	s.DateTime = time.Now().Format(DateTimeLayout)
	s.Normalize()
	return s
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Float is a convenience for building optional numeric fields.
func Float(v float64) *float64 {
	return &v
}
