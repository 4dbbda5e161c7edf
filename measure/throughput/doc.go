// Package throughput times full rendering runs of a processing graph and
// reports samples per second, real-time factor and per-sample cost.
//
// Unlike testing benchmarks, a throughput run renders a fixed amount of
// audio once, the way a host would: block by block with a shortened final
// block. This keeps results comparable across implementations that follow
// the same protocol.
package throughput
