// Package runlog sets up per-run logging. Each run writes a dated log
// file under the log directory and mirrors every record to stderr.
package runlog
