// Package dataset reads the service's input tables from disk: the
// semicolon-delimited climate CSV, the plant CSV and the GeoJSON geometry
// layers.
package dataset
