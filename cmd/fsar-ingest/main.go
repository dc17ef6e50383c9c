// Command fsar-ingest parses ground measurements and archives them in the
// sqlite measurement store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/polinsar/fsarcamp/cropex14"
	"github.com/polinsar/fsarcamp/cropex25"
	"github.com/polinsar/fsarcamp/ground"
	"github.com/polinsar/fsarcamp/hterra22"
	"github.com/polinsar/fsarcamp/internal/groundstore"
	"github.com/polinsar/fsarcamp/internal/version"
)

func main() {
	campaignID := flag.String("campaign", "", "campaign identifier (cropex14, hterra22, cropex25)")
	dataDir := flag.String("data", "", "ground measurement folder (cropex14, cropex25) or CSV file (hterra22)")
	dbPath := flag.String("db", "fsarcamp.db", "sqlite archive path")
	region := flag.String("region", "", "region to ingest (cropex25 only)")
	period := flag.String("period", "", "period to ingest (cropex25 only)")
	showVersion := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *campaignID == "" || *dataDir == "" {
		log.Fatal("usage: fsar-ingest -campaign <id> -data <path> [-db <path>] [-region <id> -period <id>]")
	}

	var (
		points    []ground.MoisturePoint
		fileCount int
		err       error
	)
	switch *campaignID {
	case cropex14.ID:
		points, err = cropex14.NewMoisture(*dataDir).Points()
		fileCount = 15 // one spreadsheet per measurement day
	case hterra22.ID:
		points, err = hterra22.LoadMoisture(*dataDir)
		fileCount = 1
	case cropex25.ID:
		if *region == "" || *period == "" {
			log.Fatal("cropex25 ingest needs -region and -period")
		}
		points, err = cropex25.NewMoisture(*dataDir).Points(*region, *period)
		fileCount = 1
	default:
		log.Fatalf("unknown campaign %q", *campaignID)
	}
	if err != nil {
		log.Fatalf("load measurements: %v", err)
	}
	if len(points) == 0 {
		log.Fatal("no measurements parsed")
	}

	store, err := groundstore.Open(*dbPath)
	if err != nil {
		log.Fatalf("open archive: %v", err)
	}
	defer store.Close()

	run, err := store.InsertMoisture(context.Background(), *campaignID, fileCount, points)
	if err != nil {
		log.Fatalf("archive measurements: %v", err)
	}
	log.Printf("run %s: archived %d points for %s", run.ID, run.RowCount, run.Campaign)
}
