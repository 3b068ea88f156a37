package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"lurevision/internal/species"
)

func main() {
	env := flag.String("env", "", "Only list this environment (freshwater, saltwater, anadromous, deep-sea)")
	flag.Parse()

	store := species.Default()
	title := cases.Title(language.English)

	envs := species.Environments[:]
	if *env != "" {
		envs = []species.Environment{species.Environment(strings.ToLower(*env))}
	}

	listed := 0
	for _, e := range envs {
		profiles := store.ListByEnvironment(e)
		if len(profiles) == 0 {
			continue
		}
		fmt.Printf("%s (%d)\n", title.String(string(e)), len(profiles))
		for _, p := range profiles {
			def := ""
			if p.ID == species.DefaultID {
				def = "  [default]"
			}
			fmt.Printf("  %-20s %-22s %-15s cones %-28s salinity %g-%g ppt (typ %g)%s\n",
				p.ID, p.CommonName, p.Cardinality, peaks(p.ConePeaksNM),
				p.Salinity.Min, p.Salinity.Max, p.Salinity.Typical, def)
			listed++
		}
		fmt.Println()
	}

	if listed == 0 {
		fmt.Fprintf(os.Stderr, "No species for environment %q\n", *env)
		os.Exit(1)
	}
}

func peaks(nm []float64) string {
	parts := make([]string, len(nm))
	for i, v := range nm {
		parts[i] = fmt.Sprintf("%.0f", v)
	}
	return strings.Join(parts, "/") + " nm"
}
