// Package catalog reads star catalogs in the Yale Bright Star Catalog
// fixed-width layout and constellation line lists in CSV form.
package catalog

// StarRecord is one catalog star as read from disk. Records are created
// once at load time and never modified.
type StarRecord struct {
	HR     int     // Harvard Revised number, unique catalog key
	Name   string  // Designation from the catalog, may be empty
	Vmag   float64 // Apparent visual magnitude (lower = brighter)
	RAdeg  float64 // Right Ascension in degrees [0, 360)
	DecDeg float64 // Declination in degrees [-90, 90]
	DistPc float64 // Distance in parsecs, 0 when unknown
}

// ConstellationDef names an ordered list of catalog keys. Consecutive keys
// are joined by line segments when drawn.
type ConstellationDef struct {
	Name string
	Keys []int
}
