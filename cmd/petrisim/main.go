// Command petrisim runs a Petri net definition through the simulation
// engine from the command line, without standing up the HTTP server.
// It loads a .json or .yaml net file, repeatedly calls process_step,
// and -- since there is no UI to arbitrate a deterministic conflict --
// auto-resolves any pause by picking the first enabled transition.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"go-petri-sim/internal/engine"
	"go-petri-sim/internal/mapper"
)

func main() {
	file := flag.String("file", "", "path to a .json or .yaml net definition (required)")
	steps := flag.Int("steps", 1, "number of steps to run")
	deterministic := flag.Bool("deterministic", false, "run in deterministic mode (pause on conflict)")
	flag.Parse()

	if *file == "" {
		log.Fatal("missing required -file flag")
	}

	dto, err := loadNetFile(*file)
	if err != nil {
		log.Fatalf("failed to load net file: %v", err)
	}

	net, err := mapper.ToNet(dto)
	if err != nil {
		log.Fatalf("failed to build net: %v", err)
	}

	source := engine.NewDefaultSource()

	for i := 0; i < *steps; i++ {
		result, err := engine.ProcessStep(net, *deterministic, source)
		if err != nil {
			log.Fatalf("step %d failed: %v", i+1, err)
		}

		switch {
		case result.Paused:
			enabled := engine.EnabledTransitions(net)
			choice := enabled[0]
			fmt.Printf("step %d: paused on %d enabled transitions, auto-selecting %s\n", i+1, len(enabled), choice.ID)
			result, err = engine.ResolveConflict(net, choice.ID, *deterministic, source)
			if err != nil {
				log.Fatalf("resolve at step %d failed: %v", i+1, err)
			}
			fmt.Printf("step %d: fired %s\n", i+1, result.Fired.ID)
		case result.Fired != nil:
			fmt.Printf("step %d: fired %s\n", i+1, result.Fired.ID)
		default:
			fmt.Printf("step %d: no transition enabled, net is dead\n", i+1)
		}
	}

	out, err := json.MarshalIndent(mapper.FromNet(net), "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal final net state: %v", err)
	}
	fmt.Println(string(out))
}

// loadNetFile reads a net definition from JSON or YAML, dispatching on
// the file extension.
func loadNetFile(path string) (*mapper.NetDTO, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var dto mapper.NetDTO
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &dto); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &dto); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unrecognized net file extension %q (want .json, .yaml, or .yml)", ext)
	}

	return &dto, nil
}
