package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/climb/level"
	"github.com/milk9111/climb/levels"
	"github.com/milk9111/climb/prefabs"
)

func main() {
	name := flag.String("level", "cliff.json", "embedded level layout")
	file := flag.String("file", "", "layout file on disk (overrides -level)")
	merge := flag.String("merge", "", "file of painted rows to append")
	out := flag.String("out", "", "write the merged layout here")
	flag.Parse()

	layout, err := loadLayout(*name, *file)
	if err != nil {
		log.Fatal(err)
	}

	if *merge != "" {
		f, err := os.Open(*merge)
		if err != nil {
			log.Fatal(err)
		}
		rows, err := levels.ParseRows(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		layout.Platforms = append(layout.Platforms, rows...)
		log.Printf("merged %d rows", len(rows))
	}

	tuning, err := prefabs.LoadTuningSpec()
	if err != nil {
		log.Fatal(err)
	}
	store, err := level.Build(layout, tuning.World.GridUnit)
	if err != nil {
		log.Fatal(err)
	}

	issues := level.Check(store, tuning.World.Width)
	for _, is := range issues {
		fmt.Println(is)
	}
	fmt.Printf("%s: %d platforms, %d issues\n", layout.Name, store.Len(), len(issues))

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		err = layout.Encode(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	if len(issues) > 0 {
		os.Exit(1)
	}
}

func loadLayout(name, file string) (*levels.Layout, error) {
	if file == "" {
		return levels.LoadLayoutFromFS(name)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var layout levels.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &layout, nil
}
