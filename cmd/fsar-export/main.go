// Command fsar-export writes archived ground measurements to Parquet or
// gzip-compressed CSV for downstream analysis.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/klauspost/pgzip"
	"github.com/parquet-go/parquet-go"

	"github.com/polinsar/fsarcamp/ground"
	"github.com/polinsar/fsarcamp/internal/groundstore"
	"github.com/polinsar/fsarcamp/internal/version"
)

type exportRow struct {
	Campaign   string  `parquet:"campaign,dict"`
	Field      string  `parquet:"field,dict"`
	PointID    string  `parquet:"point_id"`
	MeasuredAt int64   `parquet:"measured_at,timestamp(millisecond)"`
	Latitude   float64 `parquet:"latitude"`
	Longitude  float64 `parquet:"longitude"`
	Moisture   float64 `parquet:"moisture"`
}

func main() {
	dbPath := flag.String("db", "fsarcamp.db", "sqlite archive path")
	campaignID := flag.String("campaign", "", "campaign identifier")
	field := flag.String("field", "", "optional field filter")
	from := flag.String("from", "", "inclusive start date (YYYY-MM-DD)")
	to := flag.String("to", "", "inclusive end date (YYYY-MM-DD)")
	format := flag.String("format", "parquet", "output format: parquet or csv (gzip)")
	output := flag.String("o", "", "output path")
	showVersion := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *campaignID == "" || *output == "" {
		log.Fatal("usage: fsar-export -campaign <id> -o <path> [-db <path>] [-field <id>] [-from <date>] [-to <date>] [-format parquet|csv]")
	}
	fromTime, toTime := parseDate(*from), parseDate(*to)

	store, err := groundstore.Open(*dbPath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer store.Close()

	points, err := store.Moisture(context.Background(), *campaignID, *field, fromTime, toTime)
	if err != nil {
		log.Fatalf("query archive: %v", err)
	}
	if len(points) == 0 {
		log.Fatal("no archived measurements match")
	}

	switch *format {
	case "parquet":
		err = writeParquet(*output, *campaignID, points)
	case "csv":
		err = writeCSV(*output, *campaignID, points)
	default:
		log.Fatalf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	log.Printf("exported %d points to %s", len(points), *output)
}

func parseDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Fatalf("bad date %q: %v", raw, err)
	}
	return t
}

func writeParquet(path, campaign string, points []ground.MoisturePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := parquet.NewGenericWriter[exportRow](f, parquet.Compression(&parquet.Zstd))
	for _, p := range points {
		row := exportRow{
			Campaign:   campaign,
			Field:      p.Field,
			PointID:    p.PointID,
			MeasuredAt: p.Date.UnixMilli(),
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			Moisture:   p.Moisture,
		}
		if _, err := w.Write([]exportRow{row}); err != nil {
			f.Close()
			return err
		}
	}
	if err := w.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeCSV(path, campaign string, points []ground.MoisturePoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	gz := pgzip.NewWriter(f)
	w := csv.NewWriter(gz)
	if err := w.Write([]string{"campaign", "field", "point_id", "measured_at", "latitude", "longitude", "moisture"}); err != nil {
		f.Close()
		return err
	}
	for _, p := range points {
		rec := []string{
			campaign, p.Field, p.PointID,
			p.Date.UTC().Format(time.RFC3339),
			strconv.FormatFloat(p.Latitude, 'f', -1, 64),
			strconv.FormatFloat(p.Longitude, 'f', -1, 64),
			strconv.FormatFloat(p.Moisture, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	if err := gz.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
