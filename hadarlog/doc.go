// Package hadarlog builds the structured logger every other package
// logs through: a single zerolog.Logger constructed once from the
// HADAR_LOG environment variable and threaded via context.Context,
// never a package-level global.
//
// Grounded on jhkimqd-chaos-utils/pkg/reporting/logger.go's
// LoggerConfig/Logger/level-switch shape, minus its global-logger
// convenience functions: this module threads the logger through
// context instead, per the "global logging configuration at import"
// design note.
package hadarlog
