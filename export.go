package ras2tin

import (
	"bufio"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// WriteOBJ serializes the TIN as a Wavefront OBJ mesh: one v line per
// vertex, one f line per triangle (1-based indices).
func WriteOBJ(w io.Writer, t *TIN) error {
	bw := bufio.NewWriter(w)
	for _, v := range t.Vertices {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z); err != nil {
			return errors.Wrap(err, "writing obj vertex")
		}
	}
	for _, tri := range t.Triangles {
		if _, err := fmt.Fprintf(bw, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1); err != nil {
			return errors.Wrap(err, "writing obj face")
		}
	}
	return errors.Wrap(bw.Flush(), "flushing obj output")
}

// ToGeoJSON converts the TIN to a FeatureCollection of triangle polygons.
// Every feature carries the mean elevation of its corners as a "z" property
// and the vertex ids as "vertices".
func ToGeoJSON(t *TIN) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, tri := range t.Triangles {
		a := t.Vertices[tri[0]]
		b := t.Vertices[tri[1]]
		c := t.Vertices[tri[2]]
		ring := orb.Ring{
			{a.X, a.Y},
			{b.X, b.Y},
			{c.X, c.Y},
			{a.X, a.Y},
		}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["z"] = (a.Z + b.Z + c.Z) / 3
		f.Properties["vertices"] = []int{tri[0], tri[1], tri[2]}
		fc.Append(f)
	}
	return fc
}

// WriteGeoJSON serializes the TIN triangles as GeoJSON.
func WriteGeoJSON(w io.Writer, t *TIN) error {
	data, err := ToGeoJSON(t).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshaling geojson")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing geojson")
}
