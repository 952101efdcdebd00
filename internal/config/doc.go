// Package config defines the door monitor settings and provides helpers to
// load, validate and save them in YAML format.
//
// The Config type holds the sensor endpoint, polling cadence, escalation
// policy and per-channel notification credentials.
package config
