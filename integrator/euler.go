package integrator

// SemiImplicitEuler defines a fixed rate semi-implicit (symplectic) Euler integrator.
// The velocity is updated from the acceleration of the current step, and the
// position from the already updated velocity.
type SemiImplicitEuler struct {
	Rate       int        // Number of steps per unit of time.
	Integrator Integrable // What is to be integrated.
}

// NewSemiImplicitEuler returns a new SemiImplicitEuler integrator instance.
func NewSemiImplicitEuler(rate int, inte Integrable) *SemiImplicitEuler {
	if rate <= 0 {
		panic("config Rate must be positive")
	}
	if inte == nil {
		panic("config Integrator may not be nil")
	}
	return &SemiImplicitEuler{Rate: rate, Integrator: inte}
}

// Time returns the time of iteration i, i.e. i/Rate.
// This is the only clock of the integration: it is never accumulated.
func (e *SemiImplicitEuler) Time(i uint64) float64 {
	return float64(i) / float64(e.Rate)
}

// Solve solves the configured integrable.
// Returns the number of iterations performed and the time following the last iteration.
func (e *SemiImplicitEuler) Solve() (uint64, float64) {
	rate := float64(e.Rate)
	iterNum := uint64(0)
	for !e.Integrator.Stop(iterNum) {
		x, v := e.Integrator.GetState()
		a := e.Integrator.Accel(e.Time(iterNum), x, v)
		v += a / rate
		x += v / rate
		e.Integrator.SetState(iterNum, x, v)
		iterNum++
	}
	return iterNum, e.Time(iterNum)
}
