package rocket

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	if err := conf.Validate(); err != nil {
		t.Fatalf("default configuration is invalid: %s", err)
	}
	if conf.Steps() != 1200 {
		t.Fatalf("expected 1200 steps, got %d", conf.Steps())
	}
}

func TestConfigSteps(t *testing.T) {
	conf := DefaultConfig()
	conf.Duration = 0.29
	conf.StepsPerSecond = 100
	if conf.Steps() != 29 {
		t.Fatalf("expected 29 steps, got %d", conf.Steps())
	}
	conf.Duration = 0.001
	conf.StepsPerSecond = 60
	assertConfigError(t, conf.Validate(), "simulation.duration")
}

func TestConfigValidate(t *testing.T) {
	for field, mutate := range map[string]func(*SimulationConfig){
		"simulation.tps":      func(c *SimulationConfig) { c.StepsPerSecond = 0 },
		"simulation.duration": func(c *SimulationConfig) { c.Duration = -1 },
		"rocket.mass":         func(c *SimulationConfig) { c.DryMass = 0 },
		"rocket.radius":       func(c *SimulationConfig) { c.BodyRadius = -0.03 },
		"parachute.radius":    func(c *SimulationConfig) { c.ChuteRadius = 0 },
		"parachute.deploy":    func(c *SimulationConfig) { c.ChuteDeploy = -1 },
	} {
		conf := DefaultConfig()
		mutate(&conf)
		assertConfigError(t, conf.Validate(), field)
	}
}

func TestLoadScenarioDefaults(t *testing.T) {
	conf, motor, err := LoadScenario("")
	if err != nil {
		t.Fatal(err)
	}
	if conf != DefaultConfig() {
		t.Fatalf("unexpected configuration %+v", conf)
	}
	if motor != DefaultMotor() {
		t.Fatalf("unexpected motor %+v", motor)
	}
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
[simulation]
duration = 30
tps = 100

[parachute]
deploy = 6.5

[motor]
peak = 6
`)
	t.Setenv("ROCKET_ROCKET_MASS", "0.3")
	conf, motor, err := LoadScenario(path)
	if err != nil {
		t.Fatal(err)
	}
	exp := DefaultConfig()
	exp.Duration = 30
	exp.StepsPerSecond = 100
	exp.ChuteDeploy = 6.5
	exp.DryMass = 0.3
	if conf != exp {
		t.Fatalf("got %+v\nexpected %+v", conf, exp)
	}
	expMotor := DefaultMotor()
	expMotor.Peak = 6
	if motor != expMotor {
		t.Fatalf("got %+v\nexpected %+v", motor, expMotor)
	}
}

func TestLoadScenarioInvalid(t *testing.T) {
	path := writeScenario(t, `
[simulation]
tps = 0
`)
	_, _, err := LoadScenario(path)
	assertConfigError(t, err, "simulation.tps")

	path = writeScenario(t, `
[motor]
tpeak = 2
burn = 1
`)
	_, _, err = LoadScenario(path)
	assertConfigError(t, err, "motor.burn")

	if _, _, err = LoadScenario(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("loading a missing scenario should fail")
	}
}
