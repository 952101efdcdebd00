// Package sensor polls the door sensor for its current state.
//
// Sampler is the capability the monitor loop depends on; HTTPSampler talks
// to a Shelly-style input status endpoint returning {"id": N, "state": bool}
// where state=true means the door is closed.
package sensor
