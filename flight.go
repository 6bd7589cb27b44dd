package rocket

import (
	"errors"

	kitlog "github.com/go-kit/log"

	"github.com/tomatencode/rocet-simulation/integrator"
)

// gravity is the gravitational acceleration, in m/s² and pointing down.
const gravity = -9.81

// ChuteState is the state of the parachute.
type ChuteState uint8

const (
	// NoChute is the state from ignition until deployment.
	NoChute ChuteState = iota
	// ChuteDeployed is the terminal state, once the deployment time has passed.
	ChuteDeployed
)

func (s ChuteState) String() string {
	if s == ChuteDeployed {
		return "deployed"
	}
	return "stowed"
}

// Flight defines a rocket flight and does the integration.
// A Flight is immutable: Run may be called several times, concurrently if needed.
type Flight struct {
	config SimulationConfig
	forces ForceModel
	logger kitlog.Logger
}

// NewFlight returns a new Flight after validating its configuration and its motor.
// A nil logger disables logging.
func NewFlight(conf SimulationConfig, motor MotorProfile, logger kitlog.Logger) (*Flight, error) {
	if err := errors.Join(conf.Validate(), motor.Validate()); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	forces := ForceModel{Motor: motor, BodyRadius: conf.BodyRadius, ChuteRadius: conf.ChuteRadius}
	return &Flight{conf, forces, logger}, nil
}

// Simulate runs a single flight of the provided configuration and motor.
func Simulate(conf SimulationConfig, motor MotorProfile) (TrajectoryLog, error) {
	f, err := NewFlight(conf, motor, nil)
	if err != nil {
		return nil, err
	}
	return f.Run(), nil
}

// Config returns a copy of the validated configuration of this flight.
func (f *Flight) Config() SimulationConfig {
	return f.config
}

// Forces returns the force model of this flight.
func (f *Flight) Forces() ForceModel {
	return f.forces
}

// Deployed returns whether the parachute is open at time t.
// This is derived from the time alone: nothing is latched.
func (f *Flight) Deployed(t float64) bool {
	return t > f.config.ChuteDeploy
}

// ChuteState returns the state of the parachute at time t.
func (f *Flight) ChuteState(t float64) ChuteState {
	if f.Deployed(t) {
		return ChuteDeployed
	}
	return NoChute
}

// Run integrates the whole flight from the pad and returns its trajectory.
func (f *Flight) Run() TrajectoryLog {
	logger := f.logger
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	steps := f.config.Steps()
	r := &flightRun{Flight: f, logger: logger, steps: uint64(steps), log: make(TrajectoryLog, 0, steps)}
	logger.Log("level", "info", "subsys", "flight", "status", "ignition", "steps", steps, "tps", f.config.StepsPerSecond, "chute(s)", f.config.ChuteDeploy)
	integrator.NewSemiImplicitEuler(f.config.StepsPerSecond, r).Solve() // Blocking.

	sum := r.log.Summary()
	logger.Log("level", "notice", "subsys", "flight", "status", "finished", "apogee(m)", sum.Apogee, "apogee(s)", sum.ApogeeTime, "vmax(m/s)", sum.MaxVelocity, "descent(m/s)", -sum.MaxDescent)
	if !sum.Landed {
		logger.Log("level", "warning", "subsys", "flight", "message", "rocket has not landed by the end of the simulation", "altitude(m)", r.state.Altitude)
	}
	return r.log
}

// FlightState is the state of the rocket during a run.
type FlightState struct {
	Altitude float64 // m
	Velocity float64 // m/s
}

// flightRun is the integrator.Integrable of a single run of a Flight.
type flightRun struct {
	*Flight
	logger  kitlog.Logger
	state   FlightState
	pending StepSample // forces of the current step, completed by SetState
	log     TrajectoryLog
	steps   uint64
}

// GetState implements the integrator.Integrable interface.
func (r *flightRun) GetState() (float64, float64) {
	return r.state.Altitude, r.state.Velocity
}

// Stop implements the integrator.Integrable interface.
func (r *flightRun) Stop(i uint64) bool {
	return i >= r.steps
}

// Accel implements the integrator.Integrable interface.
func (r *flightRun) Accel(t, altitude, velocity float64) float64 {
	thrust, propellant := r.forces.Thrust(t)
	drag := r.forces.Drag(velocity, r.Deployed(t))
	mass := r.config.DryMass + propellant
	r.pending = StepSample{Time: t, Thrust: thrust, Drag: drag, Mass: mass}
	return gravity + (drag+thrust)/mass
}

// SetState implements the integrator.Integrable interface.
// It enforces the ground contact and records the step.
func (r *flightRun) SetState(i uint64, altitude, velocity float64) {
	impact := velocity
	if altitude <= 0 {
		altitude = 0
		// Inelastic landing, but an upward velocity may still lift off the pad.
		if velocity < 0 {
			velocity = 0
		}
	}
	r.state = FlightState{altitude, velocity}

	sample := r.pending
	sample.Altitude = altitude
	sample.Velocity = velocity
	if len(r.log) > 0 {
		r.logEvents(r.log[len(r.log)-1], sample, impact)
	}
	r.log = append(r.log, sample)
}

func (r *flightRun) logEvents(prev, cur StepSample, impact float64) {
	switch {
	case prev.Altitude == 0 && cur.Altitude > 0:
		r.logger.Log("level", "info", "subsys", "flight", "status", "liftoff", "t(s)", cur.Time, "thrust(N)", cur.Thrust)
	case prev.Altitude > 0 && cur.Altitude == 0:
		r.logger.Log("level", "notice", "subsys", "flight", "status", "touchdown", "t(s)", cur.Time, "impact(m/s)", impact)
	case prev.Velocity > 0 && cur.Velocity <= 0:
		r.logger.Log("level", "notice", "subsys", "flight", "status", "apogee", "t(s)", prev.Time, "altitude(m)", prev.Altitude)
	}
	if prev.Thrust > 0 && cur.Thrust == 0 {
		r.logger.Log("level", "info", "subsys", "prop", "status", "burnout", "t(s)", cur.Time, "altitude(m)", cur.Altitude, "velocity(m/s)", cur.Velocity)
	}
	if !r.Deployed(prev.Time) && r.Deployed(cur.Time) {
		r.logger.Log("level", "notice", "subsys", "chute", "status", r.ChuteState(cur.Time), "t(s)", cur.Time, "altitude(m)", cur.Altitude, "velocity(m/s)", cur.Velocity)
	}
}
