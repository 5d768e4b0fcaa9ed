// Command seed writes the generated dataset to a JSON file, mainly for
// inspecting what the in-memory store boots with and for diffing two
// builds of the generator.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/caffissimo/admin-api/internal/store"
)

func main() {
	out := flag.String("out", "dataset.json", "Output file path")
	pretty := flag.Bool("pretty", true, "Indent the JSON output")
	flag.Parse()

	ds := store.NewDataset()

	var (
		data []byte
		err  error
	)
	if *pretty {
		data, err = json.MarshalIndent(ds, "", "  ")
	} else {
		data, err = json.Marshal(ds)
	}
	if err != nil {
		log.Fatalf("marshal dataset: %v", err)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("Wrote %d branches, %d products, %d orders, %d external entries to %s",
		len(ds.Branches), len(ds.Products), len(ds.Orders), len(ds.ExternalSales), *out)
}
