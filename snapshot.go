package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/vital-pulse/pkg/api"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/prefs"
	"gitlab.com/tinyland/lab/vital-pulse/pkg/series"
)

// printSnapshot fetches the current server state once and prints it as plain
// text, for cron jobs and non-interactive shells. Each section degrades
// independently: a failed fetch prints its error and the rest still renders.
func printSnapshot(ctx context.Context, client *api.Client) error {
	width := 80
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		width = w
	}

	fmt.Println(rule("vital-pulse snapshot", width))

	var failed bool

	health, err := client.Health(ctx)
	if err != nil {
		failed = true
		fmt.Printf("server:     unreachable (%v)\n", err)
	} else {
		fmt.Printf("server:     %s (%s) at %s\n", health.Status, health.Service, health.Timestamp)
	}

	if buf, err := client.BufferStatus(ctx); err == nil {
		fmt.Printf("buffer:     %d/%d (%s), %d samples in %d batches\n",
			buf.CurrentSize, buf.MaxSize, buf.Utilization,
			buf.TotalReceived, buf.TotalBatches)
	}

	status, err := client.CurrentStatus(ctx)
	if err != nil {
		failed = true
		fmt.Printf("status:     unavailable (%v)\n", err)
	} else {
		fmt.Printf("status:     heart rate %s, spo2 %s, temperature %s\n",
			status.HeartRateLevel, status.SpO2Status, status.TemperatureStatus)
		fmt.Printf("            activity %s, sleep %s\n",
			status.ActivityState, status.SleepState)
		if f := status.Features; f.HRMean != nil || f.SpO2Mean != nil || f.TempMean != nil {
			fmt.Printf("            means: %s over %d samples\n",
				featureMeans(f), f.WindowSize)
		}
		fmt.Printf("            updated %s\n", status.Timestamp)
	}

	return snapshotErr(failed)
}

// featureMeans formats the non-null windowed means in canonical units.
func featureMeans(f api.StatusFeatures) string {
	var parts []string
	if f.HRMean != nil {
		parts = append(parts, series.FormatValue(series.SensorHeartRate, *f.HRMean, prefs.UnitCelsius))
	}
	if f.SpO2Mean != nil {
		parts = append(parts, series.FormatValue(series.SensorSpO2, *f.SpO2Mean, prefs.UnitCelsius))
	}
	if f.TempMean != nil {
		parts = append(parts, series.FormatValue(series.SensorTemperature, *f.TempMean, prefs.UnitCelsius))
	}
	return strings.Join(parts, ", ")
}

func rule(title string, width int) string {
	line := "── " + title + " "
	if pad := width - len([]rune(line)); pad > 0 {
		line += strings.Repeat("─", pad)
	}
	return line
}

func snapshotErr(failed bool) error {
	if failed {
		return fmt.Errorf("snapshot incomplete")
	}
	return nil
}
