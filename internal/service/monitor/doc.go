// Package monitor contains the door monitoring core: the engine that turns
// polled door samples into notification events, the scheduler that spaces
// open-too-long escalations, and the loop that ties the sensor, engine and
// notification channels together on a fixed tick.
package monitor
