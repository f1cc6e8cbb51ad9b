// Package report writes analysis results for human consumption: aligned
// per-sample CSV tables and a self-contained HTML line chart of the angle
// time series. The estimation core never imports this package.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ctcheune/BMEG490B-Knee-Angle-Analysis/imu"
)

// Series is one named angle sequence to include in an output.
type Series struct {
	Name   string
	Values []float64
}

func checkAligned(series []Series) (int, error) {
	if len(series) == 0 {
		return 0, fmt.Errorf("report: no series given")
	}
	n := len(series[0].Values)
	for _, s := range series[1:] {
		if len(s.Values) != n {
			return 0, fmt.Errorf("%w: series %q has %d samples, %q has %d",
				imu.ErrShapeMismatch, series[0].Name, n, s.Name, len(s.Values))
		}
	}
	return n, nil
}

// WriteCSV writes a time column followed by one column per series, all in
// degrees, one row per sample.
func WriteCSV(w io.Writer, sampleRate float64, series ...Series) error {
	n, err := checkAligned(series)
	if err != nil {
		return err
	}
	if sampleRate <= 0 {
		return fmt.Errorf("report: sample rate %v Hz, must be > 0", sampleRate)
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, len(series)+1)
	header = append(header, "time_s")
	for _, s := range series {
		header = append(header, s.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	row := make([]string, len(header))
	for i := 0; i < n; i++ {
		row[0] = strconv.FormatFloat(float64(i)/sampleRate, 'f', 4, 64)
		for j, s := range series {
			row[j+1] = strconv.FormatFloat(s.Values[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteChart renders an HTML line chart of the series over time.
func WriteChart(w io.Writer, title string, sampleRate float64, series ...Series) error {
	n, err := checkAligned(series)
	if err != nil {
		return err
	}
	if sampleRate <= 0 {
		return fmt.Errorf("report: sample rate %v Hz, must be > 0", sampleRate)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "angle (deg)"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	x := make([]string, n)
	for i := range x {
		x[i] = strconv.FormatFloat(float64(i)/sampleRate, 'f', 2, 64)
	}
	line.SetXAxis(x)

	for _, s := range series {
		data := make([]opts.LineData, n)
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data)
	}

	if err := line.Render(w); err != nil {
		return fmt.Errorf("report: render chart: %w", err)
	}
	return nil
}

// WriteCSVFile writes the CSV table to path.
func WriteCSVFile(path string, sampleRate float64, series ...Series) error {
	return writeFile(path, func(f io.Writer) error {
		return WriteCSV(f, sampleRate, series...)
	})
}

// WriteChartFile writes the HTML chart to path.
func WriteChartFile(path, title string, sampleRate float64, series ...Series) error {
	return writeFile(path, func(f io.Writer) error {
		return WriteChart(f, title, sampleRate, series...)
	})
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
