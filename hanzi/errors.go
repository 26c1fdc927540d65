// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package hanzi

import "errors"

// Config Errors
var (
	ErrConfigEmpty           = errors.New("Config file is empty")
	ErrLoggerExcludeEmpty    = errors.New("Encountered logging type '-' with no type to exclude")
	ErrLoggerFilenameMissing = errors.New("Logging configuration specifies 'file' method but 'filename' is empty")
	ErrLoggerHasNoTypes      = errors.New("Logger has no types to log")
	ErrOverrideIncomplete    = errors.New("Mapping override must give both simplified and traditional characters")
)
