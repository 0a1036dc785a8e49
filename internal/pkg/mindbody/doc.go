// Package mindbody is an outbound client for the Mindbody Public API v6.
//
// Every call acquires a fresh user token, is subject to local minute/day rate
// limiting before any network I/O, and is retried a fixed number of times
// with a constant delay. Failures surface as typed errors so callers can map
// them to transport responses without inspecting messages.
package mindbody
