package rocket

import "gonum.org/v1/gonum/floats"

// StepSample stores the state of the rocket and the forces acting on it at one step.
type StepSample struct {
	Time     float64 // s
	Altitude float64 // m
	Velocity float64 // m/s, positive upwards
	Thrust   float64 // N
	Drag     float64 // N
	Mass     float64 // kg, dry mass and propellant
}

// TrajectoryLog is the ordered record of a whole flight, one sample per step.
type TrajectoryLog []StepSample

func (l TrajectoryLog) series(val func(StepSample) float64) []float64 {
	s := make([]float64, len(l))
	for i, sample := range l {
		s[i] = val(sample)
	}
	return s
}

// Time returns the time vector of the flight.
func (l TrajectoryLog) Time() []float64 {
	return l.series(func(s StepSample) float64 { return s.Time })
}

// Altitudes returns the altitude series.
func (l TrajectoryLog) Altitudes() []float64 {
	return l.series(func(s StepSample) float64 { return s.Altitude })
}

// Velocities returns the velocity series.
func (l TrajectoryLog) Velocities() []float64 {
	return l.series(func(s StepSample) float64 { return s.Velocity })
}

// Thrusts returns the thrust series.
func (l TrajectoryLog) Thrusts() []float64 {
	return l.series(func(s StepSample) float64 { return s.Thrust })
}

// Drags returns the drag series.
func (l TrajectoryLog) Drags() []float64 {
	return l.series(func(s StepSample) float64 { return s.Drag })
}

// Masses returns the total mass series.
func (l TrajectoryLog) Masses() []float64 {
	return l.series(func(s StepSample) float64 { return s.Mass })
}

// Summary stores the key figures of a flight.
type Summary struct {
	Apogee      float64 // m
	ApogeeTime  float64 // s
	MaxVelocity float64 // m/s
	MaxDescent  float64 // m/s, the most negative velocity
	MaxThrust   float64 // N
	Landed      bool    // Whether the rocket came back to the ground after leaving it.
	LandingTime float64 // s, only meaningful if Landed
}

// Summary returns the key figures of this flight.
func (l TrajectoryLog) Summary() (s Summary) {
	if len(l) == 0 {
		return
	}
	alt := l.Altitudes()
	vel := l.Velocities()
	apogeeIdx := floats.MaxIdx(alt)
	s.Apogee = alt[apogeeIdx]
	s.ApogeeTime = l[apogeeIdx].Time
	s.MaxVelocity = floats.Max(vel)
	s.MaxDescent = floats.Min(vel)
	s.MaxThrust = floats.Max(l.Thrusts())
	if s.Apogee <= 0 {
		return
	}
	for i := apogeeIdx + 1; i < len(l); i++ {
		if alt[i] == 0 {
			s.Landed = true
			s.LandingTime = l[i].Time
			break
		}
	}
	return
}
