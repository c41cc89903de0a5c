// Package models talks to the local model service's native management
// API: listing installed models, checking for a specific one and
// pulling models that are missing.
package models
