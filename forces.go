package rocket

const (
	airDensity           = 1.293 // kg/m³
	bodyDragCoefficient  = 0.1
	chuteDragCoefficient = 1.75
)

// ForceModel computes the forces acting on the rocket. It holds no state.
type ForceModel struct {
	Motor       MotorProfile
	BodyRadius  float64 // Radius of the rocket body (m)
	ChuteRadius float64 // Radius of the open parachute (m)
}

// Thrust returns the motor thrust (N) and the propellant mass left (kg) at t seconds after ignition.
func (f ForceModel) Thrust(t float64) (thrust, propellant float64) {
	return f.Motor.Thrust(t)
}

// Drag returns the quadratic aerodynamic drag (N) for the velocity v, which always opposes the motion.
// The deployed parachute replaces the body as the drag surface.
func (f ForceModel) Drag(v float64, deployed bool) float64 {
	cd, area := bodyDragCoefficient, discArea(f.BodyRadius)
	if deployed {
		cd, area = chuteDragCoefficient, discArea(f.ChuteRadius)
	}
	return -0.5 * airDensity * (v * v) * cd * area * sign(v)
}
