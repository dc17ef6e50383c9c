// Command fsar-passes lists the passes of a campaign data tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/polinsar/fsarcamp"
	_ "github.com/polinsar/fsarcamp/cropex14"
	_ "github.com/polinsar/fsarcamp/cropex25"
	_ "github.com/polinsar/fsarcamp/hterra22"
	"github.com/polinsar/fsarcamp/internal/version"
)

func main() {
	campaignID := flag.String("campaign", "", "campaign identifier (cropex14, hterra22, cropex25)")
	root := flag.String("root", "", "campaign root directory (defaults to the configured data root)")
	band := flag.String("band", "", "band to list (X, C, S, L, P); all bands when empty")
	showVersion := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *campaignID == "" {
		log.Fatalf("usage: fsar-passes -campaign <id> [-root <dir>] [-band <band>]\nregistered campaigns: %v", fsarcamp.Campaigns())
	}
	if *root == "" {
		dataRoot, err := fsarcamp.DataRoot()
		if err != nil {
			log.Fatalf("no -root given and no data root configured: %v", err)
		}
		*root = dataRoot
	}

	campaign, err := fsarcamp.Open(*campaignID, *root)
	if err != nil {
		log.Fatalf("open campaign: %v", err)
	}

	bands := fsarcamp.ValidBands
	if *band != "" {
		bands = []fsarcamp.Band{fsarcamp.Band(*band)}
	}
	found := 0
	for _, b := range bands {
		names, err := campaign.PassNames(b)
		if err != nil {
			log.Fatalf("list %s-band passes: %v", b, err)
		}
		for _, name := range names {
			fmt.Printf("%s\t%s\n", b, name)
			found++
		}
	}
	if found == 0 {
		fmt.Fprintln(os.Stderr, "no passes found")
		os.Exit(1)
	}
}
