package integrator

// Integrable defines a one dimensional second order system which can be integrated, i.e. has a position and a velocity.
// WARNING: Implementation must manage its own state based on the iteration.
type Integrable interface {
	GetState() (x, v float64)              // Get the latest state of this integrable.
	SetState(i uint64, x, v float64)       // Set the state of a given iteration i.
	Stop(i uint64) bool                    // Return whether to stop the integration from iteration i.
	Accel(t float64, x, v float64) float64 // Acceleration at time t for position x and velocity v.
}
