package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"lurevision/internal/batch"
	"lurevision/internal/config"
	"lurevision/internal/imageio"
	"lurevision/internal/species"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .toml, .yaml)")
	speciesID := flag.String("species", "", "Species id (default: "+species.DefaultID+")")
	depth := flag.Float64("depth", -1, "Depth in feet (default: 0)")
	clarity := flag.String("clarity", "", "Water clarity: clear, murky, muddy or 0-2 (default: clear)")
	salinity := flag.Float64("salinity", -1, "Salinity in ppt, 0-40 (default: species typical)")
	light := flag.String("light", "", "Light: bright, overcast, dusk, night (default: bright)")
	backscatter := flag.Bool("backscatter", false, "Add haze, or bioluminescence below 100 ft")
	seed := flag.Uint64("seed", 0, "Seed for bioluminescence (default: clock)")
	engine := flag.String("engine", "", "Engine: reference or parallel (default: parallel)")
	workers := flag.Int("workers", 0, "Files processed concurrently (default: NumCPU)")
	pixelWorkers := flag.Int("pixel-workers", 0, "Row bands in flight per file (default: GOMAXPROCS/workers)")
	maxSize := flag.Int("max-size", 0, "Downscale inputs larger than this (default: 2048)")
	format := flag.String("format", "", "Output format: webp or png (default: webp)")
	outputDir := flag.String("output", "", "Output directory (default: lurevision-out)")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <image or directory>...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Species:      *speciesID,
		DepthFt:      *depth,
		Clarity:      *clarity,
		Salinity:     *salinity,
		Light:        *light,
		Backscatter:  *backscatter,
		Seed:         *seed,
		Engine:       *engine,
		Workers:      *workers,
		PixelWorkers: *pixelWorkers,
		MaxSize:      *maxSize,
		Format:       *format,
		OutputDir:    *outputDir,
	})

	store := species.Default()
	if _, ok := store.Lookup(cfg.Species); !ok {
		logger.Warn("unknown species, using dichromatic matrix", "species", cfg.Species)
	}

	req, err := cfg.Request(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	inputs, err := collectInputs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(inputs) == 0 {
		fmt.Println("No images to process.")
		os.Exit(0)
	}

	// Print summary
	fmt.Printf("Lure vision: %s at %.0f ft, salinity %.1f ppt, rod blend %.2f\n",
		req.SpeciesID, req.DepthFt, req.Water.SalinityPPT, req.Light.RodBlend)
	fmt.Printf("Images: %d, Workers: %d, Engine: %s\n", len(inputs), cfg.Workers, cfg.Engine)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		Store:        store,
		Request:      req,
		Engine:       cfg.Engine,
		Seed:         cfg.Seed,
		Workers:      cfg.Workers,
		PixelWorkers: cfg.PixelWorkers,
		MaxSize:      cfg.MaxSize,
		Format:       cfg.Format,
		Logger:       logger,
		Progress:     os.Stdout,
	}

	results := batch.Run(batchCfg, batch.Jobs(inputs, cfg.OutputDir, cfg.Format))

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
		}
	}
	fmt.Printf("Simulated: %d/%d\n", success, len(inputs))

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		logger.Warn("output dir", "err", err)
	}
	if err := batch.WriteManifest(manifestPath, batch.NewManifest(batchCfg, results)); err != nil {
		logger.Warn("manifest write failed", "path", manifestPath, "err", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// collectInputs expands directories (one level) into their image files.
func collectInputs(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		var found []string
		for _, e := range entries {
			p := filepath.Join(arg, e.Name())
			if !e.IsDir() && imageio.IsImage(p) {
				found = append(found, p)
			}
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}
