package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/GioMontefoschi/ras2tin"
	"github.com/GioMontefoschi/ras2tin/utils"
	"golang.org/x/term"
)

var (
	// Flags
	source      = flag.String("in", "", "Source DEM (grayscale PNG or TIFF)")
	destination = flag.String("out", "", "Destination mesh (.obj)")
	geojsonOut  = flag.String("geojson", "", "Optional GeoJSON destination")
	pngOut      = flag.String("png", "", "Optional preview image destination")
	genSize     = flag.Int("gen", 0, "Generate a synthetic NxN DEM instead of reading one")
	genSeed     = flag.Int64("gen-seed", 1, "Seed for the synthetic DEM")
	zmin        = flag.Float64("zmin", 0, "Elevation mapped to black")
	zmax        = flag.Float64("zmax", 1000, "Elevation mapped to white")
	maxError    = flag.Float64("error", 1.0, "Vertical error tolerance")
	maxPoints   = flag.Int("max", 0, "Maximum number of vertices (0 = unlimited)")
	strategy    = flag.String("seed", "corners", "Seed strategy: corners, grid or vip")
	gridStep    = flag.Int("step", 16, "Cell stride for the grid seed strategy")
	vipRatio    = flag.Float64("ratio", 0.05, "Cell fraction for the vip seed strategy")
	workers     = flag.Int("workers", 0, "Goroutines for the initial evaluation (0 = GOMAXPROCS)")
	wireframe   = flag.Int("wireframe", 1, "Preview wireframe mode (0, 1 or 2)")
	lineWidth   = flag.Float64("width", 1, "Preview wireframe line width")
)

func main() {
	flag.Parse()

	if (*source == "" && *genSize == 0) || *destination == "" {
		log.Fatal("Usage: ras2tin -in dem.png -out mesh.obj")
	}

	var (
		raster *ras2tin.Raster
		err    error
	)
	if *genSize > 0 {
		raster, err = ras2tin.GenerateDEM(*genSize, *genSize, *genSeed, ras2tin.DEMOptions{ZMin: *zmin, ZMax: *zmax})
	} else {
		raster, err = ras2tin.LoadRaster(*source, *zmin, *zmax)
	}
	if err != nil {
		log.Fatalf("Unable to load raster: %v", err)
	}

	p := &ras2tin.Processor{
		MaxError:  *maxError,
		MaxPoints: *maxPoints,
		GridStep:  *gridStep,
		VIPRatio:  *vipRatio,
		Workers:   *workers,
	}
	switch *strategy {
	case "corners":
		p.SeedStrategy = ras2tin.SeedCornersOnly
	case "grid":
		p.SeedStrategy = ras2tin.SeedCornersGrid
	case "vip":
		p.SeedStrategy = ras2tin.SeedVIP
	default:
		log.Fatalf("Unknown seed strategy: %s", *strategy)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := utils.NewSpinner(!term.IsTerminal(int(os.Stderr.Fd())))
	s.Start("Refining the triangulated network...")
	start := time.Now()
	tin, err := p.Run(ctx, raster)
	s.Stop()
	if err != nil {
		log.Fatalf("Refinement failed: %v", err)
	}

	out, err := os.Create(*destination)
	if err != nil {
		log.Fatalf("Unable to create destination file: %v", err)
	}
	defer out.Close()
	if err := ras2tin.WriteOBJ(out, tin); err != nil {
		log.Fatalf("Unable to write mesh: %v", err)
	}

	if *geojsonOut != "" {
		gj, err := os.Create(*geojsonOut)
		if err != nil {
			log.Fatalf("Unable to create GeoJSON file: %v", err)
		}
		defer gj.Close()
		if err := ras2tin.WriteGeoJSON(gj, tin); err != nil {
			log.Fatalf("Unable to write GeoJSON: %v", err)
		}
	}

	if *pngOut != "" {
		rd := &ras2tin.Renderer{Wireframe: *wireframe, LineWidth: *lineWidth}
		if err := rd.SavePNG(*pngOut, tin); err != nil {
			log.Fatalf("Unable to write preview image: %v", err)
		}
	}

	fmt.Printf("\nRefined in: %s%s%s\n", utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
	fmt.Printf("%sTotal number of %s%d %striangles over %s%d %svertices (%s)\n",
		utils.DefaultColor, utils.SuccessColor, len(tin.Triangles),
		utils.DefaultColor, utils.SuccessColor, len(tin.Vertices),
		utils.DefaultColor, tin.Reason)
	fmt.Printf("Worst remaining deviation: %s%.3f%s\n", utils.SuccessColor, tin.MaxError, utils.DefaultColor)
}
