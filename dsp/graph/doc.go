// Package graph wires oscillators, filters, envelopes, delays and mixers
// into a directed acyclic processing graph and renders it block by block.
//
// A graph is described with a [Builder], whose node methods return indices
// that later nodes reference as inputs. [Builder.Build] validates the
// wiring, [Executor.Prepare] allocates all per-node state for a sample rate
// and maximum block size, and [Executor.ProcessBlock] then renders without
// allocating. The three reference topologies used for throughput
// measurement are available through [NewPreset].
package graph
