// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

// Package hanzi wires the character-map engine together with configuration
// and logging.
package hanzi

import (
	"fmt"

	"github.com/hanziconv/hanziconv/hanzi/charmap"
	"github.com/hanziconv/hanziconv/hanzi/logger"
)

// Converter owns a charmap store customized by a configuration. Construct
// one per process (or per mapping customization) and share it freely:
// conversions are concurrency-safe.
type Converter struct {
	store  *charmap.Store
	logger *logger.Manager
}

// NewConverter seeds a store from the bundled dataset and applies the
// config's mapping overrides, ignores first, then extensions.
func NewConverter(config *Config, logman *logger.Manager) (*Converter, error) {
	store := charmap.NewStore()

	for _, override := range config.Mapping.Ignore {
		if err := store.IgnorePairs(override.Simplified, override.Traditional); err != nil {
			return nil, fmt.Errorf("Could not suppress pairs [%s / %s]: %s", override.Simplified, override.Traditional, err.Error())
		}
		logman.Debug("charmap", "suppressed pairs", override.Simplified, override.Traditional)
	}
	for _, override := range config.Mapping.Extend {
		if err := store.ExtendPairs(override.Simplified, override.Traditional); err != nil {
			return nil, fmt.Errorf("Could not add pairs [%s / %s]: %s", override.Simplified, override.Traditional, err.Error())
		}
		logman.Debug("charmap", "added pairs", override.Simplified, override.Traditional)
	}
	logman.Debug("charmap", fmt.Sprintf("mapping ready with %d pairs", store.Size()))

	return &Converter{
		store:  store,
		logger: logman,
	}, nil
}

// Store exposes the underlying charmap store.
func (conv *Converter) Store() *charmap.Store {
	return conv.store
}

// ToSimplified converts text to the Simplified script.
func (conv *Converter) ToSimplified(text string) string {
	return conv.store.ToSimplified(text)
}

// ToTraditional converts text to the Traditional script.
func (conv *Converter) ToTraditional(text string) string {
	return conv.store.ToTraditional(text)
}

// Same reports whether two texts are script-equivalent.
func (conv *Converter) Same(a, b string) bool {
	result := conv.store.Same(a, b)
	conv.logger.Debug("convert", "compared texts", fmt.Sprintf("%t", result))
	return result
}

// Transformer returns a streaming transformer over the converter's current
// mapping.
func (conv *Converter) Transformer(dir charmap.Direction) charmap.Transformer {
	return charmap.NewTransformer(conv.store, dir)
}
