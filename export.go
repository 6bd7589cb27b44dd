package rocket

import (
	"encoding/csv"
	"io"
	"strconv"
)

// columns are the header of an exported trajectory table.
var columns = []string{"time", "altitude", "velocity", "thrust", "drag", "mass"}

// ExportConfig configures the tabular export of a trajectory.
type ExportConfig struct {
	Header    bool // Write the column names as first record.
	Comma     rune // Field delimiter, defaults to a comma.
	Precision int  // Digits after the decimal point, or the shortest exact representation if not positive.
}

// WriteTable writes the trajectory as a delimited table, one record per step, for an external plotter.
func WriteTable(w io.Writer, traj TrajectoryLog, conf ExportConfig) error {
	cw := csv.NewWriter(w)
	if conf.Comma != 0 {
		cw.Comma = conf.Comma
	}
	prec := conf.Precision
	if prec <= 0 {
		prec = -1
	}
	if conf.Header {
		if err := cw.Write(columns); err != nil {
			return err
		}
	}
	record := make([]string, len(columns))
	for _, s := range traj {
		for i, val := range []float64{s.Time, s.Altitude, s.Velocity, s.Thrust, s.Drag, s.Mass} {
			record[i] = strconv.FormatFloat(val, 'f', prec, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
