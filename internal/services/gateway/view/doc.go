// Package view shapes backend records into the caller-facing output types.
//
// Which output type a click transaction becomes depends on the caller role
// alone. Name maps are passed in per call and never retained.
package view
