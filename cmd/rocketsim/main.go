package main

import (
	"flag"
	"os"

	kitlog "github.com/go-kit/log"

	rocket "github.com/tomatencode/rocet-simulation"
)

// This code reads the scenario, flies the rocket and streams the trajectory table to stdout.

var (
	scenario  string
	verbose   bool
	header    bool
	precision int
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", "", "scenario TOML file (defaults to the reference flight)")
	flag.BoolVar(&verbose, "verbose", false, "log the configuration")
	flag.BoolVar(&header, "header", true, "write the column names")
	flag.IntVar(&precision, "precision", 6, "digits after the decimal point, 0 for the shortest exact value")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)

	conf, motor, err := rocket.LoadScenario(scenario)
	if err != nil {
		logger.Log("level", "critical", "subsys", "config", "scenario", scenario, "err", err)
		os.Exit(1)
	}
	if verbose {
		logger.Log("level", "info", "subsys", "config", "duration(s)", conf.Duration, "tps", conf.StepsPerSecond, "mass(kg)", conf.DryMass, "radius(m)", conf.BodyRadius, "chute(m)", conf.ChuteRadius, "deploy(s)", conf.ChuteDeploy)
		logger.Log("level", "info", "subsys", "config", "peak(N)", motor.Peak, "average(N)", motor.Average, "tpeak(s)", motor.TimePeak, "burn(s)", motor.BurnTime, "propellant(kg)", motor.PropellantMass)
	}

	flight, err := rocket.NewFlight(conf, motor, logger)
	if err != nil {
		logger.Log("level", "critical", "subsys", "config", "err", err)
		os.Exit(1)
	}
	traj := flight.Run()

	if err := rocket.WriteTable(os.Stdout, traj, rocket.ExportConfig{Header: header, Precision: precision}); err != nil {
		logger.Log("level", "critical", "subsys", "export", "err", err)
		os.Exit(1)
	}
}
