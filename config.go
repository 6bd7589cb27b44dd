package rocket

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix prefixes the environment variables overriding a scenario, e.g. ROCKET_MOTOR_PEAK.
const envPrefix = "ROCKET"

// SimulationConfig defines the fixed parameters of a flight simulation.
type SimulationConfig struct {
	Duration       float64 // Total simulated time (s)
	StepsPerSecond int     // Integration rate, i.e. dt = 1/StepsPerSecond
	DryMass        float64 // Rocket mass without propellant (kg)
	BodyRadius     float64 // Rocket body radius (m)
	ChuteRadius    float64 // Parachute radius (m)
	ChuteDeploy    float64 // Parachute deployment time after ignition (s)
}

// DefaultConfig returns the reference model rocket flight.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		Duration:       20,
		StepsPerSecond: 60,
		DryMass:        0.2,
		BodyRadius:     0.03,
		ChuteRadius:    0.1,
		ChuteDeploy:    5,
	}
}

// DefaultMotor returns the motor of the reference model rocket.
func DefaultMotor() MotorProfile {
	return MotorProfile{Peak: 5, Average: 3, TimePeak: 0.5, BurnTime: 5, PropellantMass: 0.05}
}

// Steps returns the number of integration steps of the simulation.
func (c SimulationConfig) Steps() int {
	return int(math.Round(c.Duration * float64(c.StepsPerSecond)))
}

// Validate returns a ConfigurationError for each invalid field of this configuration.
func (c SimulationConfig) Validate() error {
	var v validator
	v.check(c.StepsPerSecond > 0, "simulation.tps", float64(c.StepsPerSecond), "must be positive")
	v.check(c.Duration > 0, "simulation.duration", c.Duration, "must be positive")
	if c.StepsPerSecond > 0 && c.Duration > 0 {
		v.check(c.Steps() >= 1, "simulation.duration", c.Duration, "is shorter than one step")
	}
	v.check(c.DryMass > 0, "rocket.mass", c.DryMass, "must be positive")
	v.check(c.BodyRadius > 0, "rocket.radius", c.BodyRadius, "must be positive")
	v.check(c.ChuteRadius > 0, "parachute.radius", c.ChuteRadius, "must be positive")
	v.check(c.ChuteDeploy >= 0, "parachute.deploy", c.ChuteDeploy, "may not be negative")
	return v.err()
}

func setDefaults(v *viper.Viper, conf SimulationConfig, motor MotorProfile) {
	v.SetDefault("simulation.duration", conf.Duration)
	v.SetDefault("simulation.tps", conf.StepsPerSecond)
	v.SetDefault("rocket.mass", conf.DryMass)
	v.SetDefault("rocket.radius", conf.BodyRadius)
	v.SetDefault("parachute.radius", conf.ChuteRadius)
	v.SetDefault("parachute.deploy", conf.ChuteDeploy)
	v.SetDefault("motor.peak", motor.Peak)
	v.SetDefault("motor.average", motor.Average)
	v.SetDefault("motor.tpeak", motor.TimePeak)
	v.SetDefault("motor.burn", motor.BurnTime)
	v.SetDefault("motor.propellant", motor.PropellantMass)
}

// LoadScenario reads a scenario file (TOML, or any format viper supports) on top of the default flight.
// An empty path only applies the defaults and the ROCKET_* environment overrides.
// The returned configuration and motor are validated.
func LoadScenario(path string) (SimulationConfig, MotorProfile, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig(), DefaultMotor())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return SimulationConfig{}, MotorProfile{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	conf := SimulationConfig{
		Duration:       v.GetFloat64("simulation.duration"),
		StepsPerSecond: v.GetInt("simulation.tps"),
		DryMass:        v.GetFloat64("rocket.mass"),
		BodyRadius:     v.GetFloat64("rocket.radius"),
		ChuteRadius:    v.GetFloat64("parachute.radius"),
		ChuteDeploy:    v.GetFloat64("parachute.deploy"),
	}
	motor := MotorProfile{
		Peak:           v.GetFloat64("motor.peak"),
		Average:        v.GetFloat64("motor.average"),
		TimePeak:       v.GetFloat64("motor.tpeak"),
		BurnTime:       v.GetFloat64("motor.burn"),
		PropellantMass: v.GetFloat64("motor.propellant"),
	}
	return conf, motor, errors.Join(conf.Validate(), motor.Validate())
}
