// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package hanzi

import (
	"testing"

	"github.com/hanziconv/hanziconv/hanzi/charmap"
	"github.com/hanziconv/hanziconv/hanzi/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger(t *testing.T) *logger.Manager {
	t.Helper()
	logman, err := logger.NewManager(nil)
	require.NoError(t, err)
	return logman
}

func TestNewConverterStockMapping(t *testing.T) {
	conv, err := NewConverter(DefaultConfig(), quietLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "繁简转换器", conv.ToSimplified("繁簡轉換器"))
	assert.Equal(t, "繁簡轉換器", conv.ToTraditional("繁简转换器"))
	assert.True(t, conv.Same("繁简转换器", "繁簡轉換器"))
}

func TestNewConverterAppliesOverrides(t *testing.T) {
	config := DefaultConfig()
	config.Mapping.Ignore = []PairOverride{{Simplified: "郄", Traditional: "郤"}}
	config.Mapping.Extend = []PairOverride{{Simplified: "脩", Traditional: "修"}}

	conv, err := NewConverter(config, quietLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "郄", conv.ToTraditional("郄"), "suppressed pair must pass through")
	assert.Equal(t, "修", conv.ToTraditional("脩"), "added pair must apply")
	assert.Equal(t, "脩", conv.ToSimplified("修"), "added pair must apply in both directions")
}

func TestNewConverterBadOverride(t *testing.T) {
	config := DefaultConfig()
	// 发/發 removal counts can't balance between the two inventories
	config.Mapping.Ignore = []PairOverride{{Simplified: "发", Traditional: "發"}}

	_, err := NewConverter(config, quietLogger(t))
	assert.Error(t, err)
}

func TestConverterTransformer(t *testing.T) {
	conv, err := NewConverter(DefaultConfig(), quietLogger(t))
	require.NoError(t, err)

	tr := conv.Transformer(charmap.Simplified)
	dst := make([]byte, 64)
	nDst, nSrc, err := tr.Transform(dst, []byte("簡"), true)
	require.NoError(t, err)
	assert.Equal(t, len("簡"), nSrc)
	assert.Equal(t, "简", string(dst[:nDst]))
}
