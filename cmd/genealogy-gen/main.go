// genealogy-gen writes a synthetic genealogy export, for trying out renders
// and exercising large pedigrees.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
)

// Options shape the generated population.
type Options struct {
	Generations int
	PerGen      int
	Seed        uint64
}

// GenRecord is one synthetic creature.
type GenRecord struct {
	Name    string
	Moniker string
	Mother  string // "name moniker", or a genome file, or empty
	Father  string
	Status  int
	Species int
	Sex     int
	Variant int
	Warped  int
}

var names = []string{"Alba", "Bruin", "Cleo", "Dax", "Eve", "Fern", "Gus", "Hazel", "Ivo", "Juno"}

func main() {
	var (
		generations = flag.Int("generations", 5, "Number of generations")
		perGen      = flag.Int("per-gen", 8, "Creatures per generation")
		seed        = flag.Uint64("seed", 1, "Random seed")
		crlf        = flag.Bool("crlf", false, "Use Windows line endings like in-game exports")
		outputFile  = flag.String("output", "", "Output file path (prints to stdout if not specified)")
	)
	flag.Parse()

	if *generations < 1 || *perGen < 1 {
		fmt.Println("Error: generations and per-gen must be at least 1")
		os.Exit(1)
	}

	records := Generate(Options{Generations: *generations, PerGen: *perGen, Seed: *seed})

	var out io.Writer = os.Stdout
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Printf("Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	if err := WriteExport(out, records, *crlf); err != nil {
		fmt.Printf("Error writing export: %v\n", err)
		os.Exit(1)
	}
	if *outputFile != "" {
		fmt.Printf("Generated %d records: %s\n", len(records), *outputFile)
	}
}

// Generate builds a population where every creature past the first
// generation has two parents from the generation before it. The last
// generation is alive, apart from the occasional egg.
func Generate(opts Options) []GenRecord {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	var records []GenRecord
	var previous []GenRecord

	for g := 0; g < opts.Generations; g++ {
		last := g == opts.Generations-1
		current := make([]GenRecord, 0, opts.PerGen)
		for i := 0; i < opts.PerGen; i++ {
			r := GenRecord{
				Name:    names[rng.IntN(len(names))],
				Moniker: fmt.Sprintf("%03d-%04d-%04x", g, i, rng.IntN(0x10000)),
				Species: 1,
				Sex:     1 + i%2,
				Variant: rng.IntN(8),
			}
			if rng.IntN(10) == 0 {
				r.Warped = 1
			}

			switch {
			case last && rng.IntN(6) == 0:
				r.Status = 1
				r.Name = "Unknown"
			case last:
				r.Status = 3
			case rng.IntN(8) == 0:
				r.Status = 4
			default:
				r.Status = 2
			}

			if g == 0 {
				r.Mother = "norn.bengal46.gen"
			} else {
				mother := previous[rng.IntN(len(previous))]
				father := previous[rng.IntN(len(previous))]
				r.Mother = mother.Name + " " + mother.Moniker
				r.Father = father.Name + " " + father.Moniker
			}
			current = append(current, r)
		}
		records = append(records, current...)
		previous = current
	}
	return records
}

// WriteExport writes records in the game's export layout.
func WriteExport(w io.Writer, records []GenRecord, crlf bool) error {
	nl := "\n"
	if crlf {
		nl = "\r\n"
	}
	for i, r := range records {
		if i > 0 {
			if _, err := io.WriteString(w, nl); err != nil {
				return err
			}
		}
		lines := []string{
			"Name: " + r.Name + " " + r.Moniker,
			"Mother: " + r.Mother,
			"Father: " + r.Father,
			fmt.Sprintf("Status: %d", r.Status),
			fmt.Sprintf("Species: %d", r.Species),
			fmt.Sprintf("Sex: %d", r.Sex),
			fmt.Sprintf("Variant: %d", r.Variant),
			fmt.Sprintf("Has Warped: %d", r.Warped),
		}
		if _, err := io.WriteString(w, strings.Join(lines, nl)+nl); err != nil {
			return err
		}
	}
	return nil
}
