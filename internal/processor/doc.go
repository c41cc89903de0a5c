// Package processor contains the core run logic. It orchestrates file
// enumeration, cache lookups, translation calls, output placement and
// run logging, and keeps going when individual files fail.
package processor
