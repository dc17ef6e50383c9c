// Command fsar-report renders an HTML soil moisture time series chart from
// the measurement archive, one series per field.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/polinsar/fsarcamp/ground"
	"github.com/polinsar/fsarcamp/internal/groundstore"
	"github.com/polinsar/fsarcamp/internal/version"
)

func main() {
	dbPath := flag.String("db", "fsarcamp.db", "sqlite archive path")
	campaignID := flag.String("campaign", "", "campaign identifier")
	output := flag.String("o", "moisture.html", "output HTML path")
	showVersion := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *campaignID == "" {
		log.Fatal("usage: fsar-report -campaign <id> [-db <path>] [-o <path>]")
	}

	store, err := groundstore.Open(*dbPath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	fields, err := store.Fields(ctx, *campaignID)
	if err != nil {
		log.Fatalf("list fields: %v", err)
	}
	if len(fields) == 0 {
		log.Fatalf("no archived measurements for campaign %q", *campaignID)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Soil moisture, %s", *campaignID),
			Subtitle: "daily mean volumetric soil moisture per field",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	days, perField := dailyMeans(ctx, store, *campaignID, fields)
	line.SetXAxis(days)
	for _, field := range fields {
		series := make([]opts.LineData, len(days))
		for i, day := range days {
			v, ok := perField[field][day]
			if !ok {
				series[i] = opts.LineData{Value: nil}
				continue
			}
			series[i] = opts.LineData{Value: v}
		}
		line.AddSeries(field, series)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("create output: %v", err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		log.Fatalf("render chart: %v", err)
	}
	log.Printf("wrote %s (%d fields, %d days)", *output, len(fields), len(days))
}

// dailyMeans aggregates the archived points into day buckets per field.
func dailyMeans(ctx context.Context, store *groundstore.Store, campaign string, fields []string) ([]string, map[string]map[string]float64) {
	daySet := make(map[string]bool)
	perField := make(map[string]map[string]float64)
	for _, field := range fields {
		points, err := store.Moisture(ctx, campaign, field, time.Time{}, time.Time{})
		if err != nil {
			log.Fatalf("query field %s: %v", field, err)
		}
		byDay := make(map[string][]float64)
		for _, p := range points {
			day := p.Date.Format("2006-01-02")
			byDay[day] = append(byDay[day], p.Moisture)
			daySet[day] = true
		}
		means := make(map[string]float64, len(byDay))
		for day, vals := range byDay {
			means[day] = ground.MeanValid(vals)
		}
		perField[field] = means
	}
	days := make([]string, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Strings(days)
	return days, perField
}
