// Package imucsv imports raw IMU logs from CSV files: one timestamp
// column followed by six sensor columns (accelerometer X/Y/Z in m/s²,
// gyroscope X/Y/Z in deg/s). Blank or unparseable sensor cells become
// NaN so downstream estimation can gate them; structural problems fail
// fast.
package imucsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu"
)

const columns = 7 // time + 3 accel + 3 gyro

// ErrBadLayout reports a CSV whose rows do not carry the expected
// time + six sensor columns.
var ErrBadLayout = errors.New("imucsv: expected time,ax,ay,az,gx,gy,gz columns")

// ReadFile imports one trial from the CSV file at path.
func ReadFile(path string) (*imu.Trial, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imucsv: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read imports one trial from CSV data. The first row is treated as a
// header if its second cell is not numeric. The sample rate is inferred
// from the median timestamp delta, so occasional dropped samples do not
// skew it.
func Read(r io.Reader) (*imu.Trial, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row width checked here, with row numbers

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("imucsv: %w", err)
	}
	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %d data rows, need at least 2", ErrBadLayout, len(rows))
	}

	trial := &imu.Trial{
		Accel: make([][3]float64, len(rows)),
		Gyro:  make([][3]float64, len(rows)),
	}
	times := make([]float64, len(rows))

	for i, row := range rows {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrBadLayout, i+1, len(row))
		}

		times[i], err = strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("imucsv: row %d: bad timestamp %q", i+1, row[0])
		}

		for ax := 0; ax < 3; ax++ {
			trial.Accel[i][ax] = sensorCell(row[1+ax])
			trial.Gyro[i][ax] = sensorCell(row[4+ax])
		}
	}

	trial.SampleRate, err = inferRate(times)
	if err != nil {
		return nil, err
	}
	return trial, nil
}

// sensorCell parses one sensor value; anything unparseable is a missing
// sample, represented as NaN.
func sensorCell(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// isHeader reports whether the row looks like column names rather than
// data.
func isHeader(row []string) bool {
	if len(row) < 2 {
		return true
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
	return err != nil
}

// inferRate derives the sample rate in Hz from the median delta between
// consecutive timestamps (seconds).
func inferRate(times []float64) (float64, error) {
	deltas := make([]float64, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		d := times[i] - times[i-1]
		if d > 0 {
			deltas = append(deltas, d)
		}
	}
	if len(deltas) == 0 {
		return 0, fmt.Errorf("imucsv: timestamps are not increasing")
	}

	sort.Float64s(deltas)
	median := deltas[len(deltas)/2]
	return 1 / median, nil
}
