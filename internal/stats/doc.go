// Package stats computes aggregate statistics and premium rankings from
// rental listings.
//
// All computations are single-pass or sort-based over in-memory slices;
// the input dataset is bounded and local, so there is no streaming or
// concurrency here.
package stats
