// Package grid builds the two 1D axes that describe a rectangular 2D
// coordinate grid.
//
// A grid is given by an origin (x and y reference), a span per axis and a
// step. Instead of a dense 2D mesh the package returns one sample slice per
// axis; consumers combine them by index (x[i], y[j]) when they need a grid
// node. The dense grid has len(x)*len(y) nodes and is never allocated here.
//
// Values are unit agnostic. The same spec works for degrees and
// arcseconds, metres or pixels as long as references, spans and step share
// one unit.
//
// Key types: GridSpec, Axes.
//
// Everything in this package is pure: no package state, no logging, safe
// for concurrent use.
package grid
