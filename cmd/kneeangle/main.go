// Command kneeangle computes knee flexion from two body-segment IMU logs.
//
// Usage:
//
//	kneeangle -thigh thigh.csv -shank shank.csv [flags]
//
// Each log is a CSV of time,ax,ay,az,gx,gy,gz rows (m/s², deg/s). The two
// segments are fused independently and concurrently, then differenced:
// knee flexion = thigh pitch − shank pitch.
//
// Examples:
//
//	kneeangle -thigh thigh.csv -shank shank.csv -csv out.csv
//	kneeangle -thigh thigh.csv -shank shank.csv -remove-offset -cutoff 6 -chart knee.html
//	kneeangle -thigh thigh.csv -shank shank.csv -type bandpass -cutoff 0.3,6 -order 4
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/gait"
	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu"
	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu/calib"
	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu/filter"
	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu/imucsv"
	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu/orient"
	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/kneeangle"
	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/report"
	"gonum.org/v1/gonum/mat"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("kneeangle: ")

	var (
		thighPath    = flag.String("thigh", "", "thigh segment CSV log (required)")
		shankPath    = flag.String("shank", "", "shank segment CSV log (required)")
		rate         = flag.Float64("rate", 0, "sample rate in Hz (default: inferred from timestamps)")
		weight       = flag.Float64("weight", orient.DefaultWeight, "gyro trust weight in [0,1)")
		removeOffset = flag.Bool("remove-offset", false, "remove whole-series gyro bias before fusion")
		cutoffArg    = flag.String("cutoff", "", "post-filter cutoff in Hz; two comma-separated values for band types")
		order        = flag.Int("order", 2, "post-filter Butterworth order")
		typeArg      = flag.String("type", "low", "post-filter type: low, high, stop, bandpass")
		staticSecs   = flag.Float64("static", 0, "length in seconds of a standing-still lead-in used to zero the gyros")
		rotateArg    = flag.String("rotate", "", "sensor-to-body rotation, nine comma-separated row-major values applied to both segments")
		csvPath      = flag.String("csv", "", "write per-sample angles to this CSV file")
		chartPath    = flag.String("chart", "", "write an HTML chart to this file")
		showCadence  = flag.Bool("cadence", false, "estimate cadence from the knee angle")
	)
	flag.Parse()

	if *thighPath == "" || *shankPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts, err := fusionOptions(*weight, *removeOffset, *cutoffArg, *order, *typeArg)
	if err != nil {
		log.Fatal(err)
	}

	thigh, err := loadTrial(*thighPath, *rate)
	if err != nil {
		log.Fatal(err)
	}
	shank, err := loadTrial(*shankPath, *rate)
	if err != nil {
		log.Fatal(err)
	}
	if thigh.SampleRate != shank.SampleRate {
		log.Fatalf("sample rates differ: thigh %.4g Hz, shank %.4g Hz (use -rate to force one)",
			thigh.SampleRate, shank.SampleRate)
	}
	if *rotateArg != "" {
		r, err := parseRotation(*rotateArg)
		if err != nil {
			log.Fatal(err)
		}
		if err := alignFrame(thigh, r); err != nil {
			log.Fatalf("thigh: %v", err)
		}
		if err := alignFrame(shank, r); err != nil {
			log.Fatalf("shank: %v", err)
		}
	}
	if *staticSecs > 0 {
		if err := zeroGyros(thigh, *staticSecs); err != nil {
			log.Fatalf("thigh: %v", err)
		}
		if err := zeroGyros(shank, *staticSecs); err != nil {
			log.Fatalf("shank: %v", err)
		}
	}

	// The two segments share nothing: fuse them concurrently.
	var (
		wg                     sync.WaitGroup
		thighPitch, shankPitch []float64
		thighRoll, shankRoll   []float64
		thighErr, shankErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		thighPitch, thighRoll, thighErr = orient.Estimate(thigh, opts...)
	}()
	go func() {
		defer wg.Done()
		shankPitch, shankRoll, shankErr = orient.Estimate(shank, opts...)
	}()
	wg.Wait()
	if thighErr != nil {
		log.Fatalf("thigh: %v", thighErr)
	}
	if shankErr != nil {
		log.Fatalf("shank: %v", shankErr)
	}

	angle, err := kneeangle.Flexion(thighPitch, shankPitch)
	if err != nil {
		log.Fatal(err)
	}

	summary := kneeangle.Summarize(angle)
	fmt.Printf("samples:        %d (%.4g s at %.4g Hz)\n",
		summary.Samples, float64(thigh.Len())/thigh.SampleRate, thigh.SampleRate)
	fmt.Printf("peak flexion:   %7.2f deg\n", summary.PeakFlexion)
	fmt.Printf("peak extension: %7.2f deg\n", summary.PeakExtension)
	fmt.Printf("range of motion:%7.2f deg\n", summary.RangeOfMotion)
	fmt.Printf("mean / stddev:  %7.2f / %.2f deg\n", summary.Mean, summary.StdDev)

	if *showCadence {
		cadence, err := gait.Cadence(angle, thigh.SampleRate)
		if err != nil {
			log.Printf("cadence: %v", err)
		} else {
			fmt.Printf("cadence:        %7.1f steps/min\n", cadence)
		}
	}

	series := []report.Series{
		{Name: "knee_flexion", Values: angle},
		{Name: "thigh_pitch", Values: thighPitch},
		{Name: "shank_pitch", Values: shankPitch},
		{Name: "thigh_roll", Values: thighRoll},
		{Name: "shank_roll", Values: shankRoll},
	}
	if *csvPath != "" {
		if err := report.WriteCSVFile(*csvPath, thigh.SampleRate, series...); err != nil {
			log.Fatal(err)
		}
	}
	if *chartPath != "" {
		if err := report.WriteChartFile(*chartPath, "Knee Flexion", thigh.SampleRate, series...); err != nil {
			log.Fatal(err)
		}
	}
}

// loadTrial imports one segment log, optionally overriding the inferred
// sample rate.
func loadTrial(path string, rateOverride float64) (*imu.Trial, error) {
	t, err := imucsv.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if rateOverride > 0 {
		t.SampleRate = rateOverride
	}
	return t, nil
}

// parseRotation reads a row-major 3x3 matrix from nine comma-separated
// values.
func parseRotation(arg string) (*mat.Dense, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 9 {
		return nil, fmt.Errorf("-rotate needs nine comma-separated values, got %d", len(parts))
	}
	data := make([]float64, 9)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad -rotate value %q", part)
		}
		data[i] = v
	}
	return mat.NewDense(3, 3, data), nil
}

// alignFrame rotates both sensor series of a trial into the body frame.
func alignFrame(t *imu.Trial, r *mat.Dense) error {
	accel, err := calib.Rotate(t.Accel, r)
	if err != nil {
		return err
	}
	gyro, err := calib.Rotate(t.Gyro, r)
	if err != nil {
		return err
	}
	t.Accel, t.Gyro = accel, gyro
	return nil
}

// zeroGyros estimates the gyro bias over the first secs seconds of the
// trial, during which the subject stood still, and subtracts it in place.
func zeroGyros(t *imu.Trial, secs float64) error {
	window := int(secs * t.SampleRate)
	if window > t.Len() {
		window = t.Len()
	}
	offset, err := calib.StaticOffset(t.Gyro, 0, window)
	if err != nil {
		return err
	}
	t.Gyro = calib.SubtractOffset(t.Gyro, offset)
	return nil
}

// fusionOptions translates the CLI flags into estimation options.
func fusionOptions(weight float64, removeOffset bool, cutoffArg string, order int, typeArg string) ([]orient.Option, error) {
	opts := []orient.Option{
		orient.WithWeight(weight),
		orient.WithOffsetRemoval(removeOffset),
		orient.WithFilterOrder(order),
	}

	if cutoffArg == "" {
		return opts, nil
	}

	typ, err := filter.ParseType(typeArg)
	if err != nil {
		return nil, err
	}
	var cutoff []float64
	for _, part := range strings.Split(cutoffArg, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("bad -cutoff value %q", part)
		}
		cutoff = append(cutoff, v)
	}
	if typ.IsBand() && len(cutoff) != 2 {
		return nil, fmt.Errorf("-type %s needs two comma-separated -cutoff values", typ)
	}
	if !typ.IsBand() && len(cutoff) != 1 {
		return nil, fmt.Errorf("-type %s takes a single -cutoff value", typ)
	}

	return append(opts, orient.WithPostFilter(typ, cutoff...)), nil
}
