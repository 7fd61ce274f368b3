/*
Package ras2tin converts a regular elevation raster (DEM) into a Triangulated
Irregular Network (TIN) by greedy error-driven refinement: starting from the
raster corners, the cell deviating most from the current mesh is repeatedly
inserted into a Delaunay triangulation until an error tolerance or a point
budget is reached.

The package provides a command line utility; check the supported commands by
typing:

	$ ras2tin --help

Example converting a raster with a half-meter tolerance:

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/GioMontefoschi/ras2tin"
	)

	func main() {
		raster, err := ras2tin.LoadRaster("dem.png", 0, 2000)
		if err != nil {
			log.Fatal(err)
		}

		p := &ras2tin.Processor{
			MaxError: 0.5,
		}
		tin, err := p.Run(context.Background(), raster)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%d vertices, %d triangles (%s)\n",
			len(tin.Vertices), len(tin.Triangles), tin.Reason)
	}

The resulting TIN exposes plain vertex and triangle lists for external
writers; WriteOBJ and WriteGeoJSON cover the common cases, and Renderer
produces an elevation-colored preview image.
*/
package ras2tin
