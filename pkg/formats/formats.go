// Package formats provides parsers for geometry descriptions fed to the
// modernizer.
package formats

// Note: the geometry description (GXD) format is implemented in gxd.go
