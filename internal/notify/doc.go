// Package notify delivers monitor messages to the configured channels.
//
// Channel is the single capability the monitor loop depends on; SMS (voip.ms)
// and Telegram are the concrete implementations. Broadcast fans a message out
// to every enabled channel without letting one failure block the others.
package notify
