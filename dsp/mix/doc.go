// Package mix provides stateless gain-weighted summation of sample blocks.
//
// All functions write into caller-provided buffers and allocate nothing,
// so they are safe inside latency-critical processing loops. Length
// mismatches are programming errors and reported eagerly.
package mix
