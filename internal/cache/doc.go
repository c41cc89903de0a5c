// Package cache persists translations in a SQLite database so reruns
// over unchanged files skip the model service entirely.
package cache
