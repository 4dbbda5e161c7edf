// Package envelope provides a linear ADSR envelope generator.
//
// The [ADSR] state machine moves through Idle, Attack, Decay, Sustain,
// Release and Off. Segment timing is counted in whole samples at the
// configured sample rate; NoteOn and NoteOff are the only external
// triggers. Without a NoteOff the envelope dwells in Sustain indefinitely,
// which is exactly the steady-state condition the throughput benchmarks
// rely on.
package envelope
