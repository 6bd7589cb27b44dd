package rocket

// tailOffRate is the thrust decay rate at the end of the burn, in N/s.
const tailOffRate = 3

// MotorProfile defines the thrust curve and the propellant load of a solid motor.
type MotorProfile struct {
	Peak           float64 // Peak thrust (N)
	Average        float64 // Average thrust (N)
	TimePeak       float64 // Time from ignition to peak thrust (s)
	BurnTime       float64 // Total burn time (s)
	PropellantMass float64 // Propellant mass at ignition (kg)
}

// Thrust returns the thrust in Newtons and the remaining propellant mass in kg, t seconds after ignition.
// The curve ramps up to the peak, decays to the average, holds, then tails off to zero at burnout.
func (m MotorProfile) Thrust(t float64) (thrust, propellant float64) {
	switch {
	case t <= m.TimePeak:
		thrust = (t / m.TimePeak) * m.Peak
	case t <= 2*m.TimePeak:
		thrust = m.Peak - (t-m.TimePeak)*(m.Peak-m.Average)/m.TimePeak
	case t <= m.BurnTime-m.Average/3:
		thrust = m.Average
	case t <= m.BurnTime:
		thrust = tailOffRate * (m.BurnTime - t)
	}
	// The propellant is depleted linearly, independently of the thrust phases.
	if t <= m.BurnTime {
		propellant = m.PropellantMass * (1 - t/m.BurnTime)
	}
	return
}

// Validate returns a ConfigurationError for each invalid field of this profile.
func (m MotorProfile) Validate() error {
	var v validator
	v.check(m.TimePeak > 0, "motor.tpeak", m.TimePeak, "must be positive")
	v.check(m.BurnTime > m.TimePeak, "motor.burn", m.BurnTime, "must be after the thrust peak")
	v.check(m.PropellantMass >= 0, "motor.propellant", m.PropellantMass, "may not be negative")
	return v.err()
}
