// Package door contains core domain types for the door monitoring logic.
//
// It defines Sample (one poll result), State (everything the monitor knows
// about the current episode) and Event (a notification the engine decided
// to emit), plus the duration rendering shared by log lines and messages.
package door
