package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptheywood/json2plot/src/chartcfg"
)

func TestSelectSeriesNoFilters(t *testing.T) {
	assert.True(t, selectSeries(chartcfg.Series{Name: "alpha"}, nil, nil))
	assert.True(t, selectSeries(chartcfg.Series{}, nil, nil))
}

func TestSelectSeriesSubstringMatch(t *testing.T) {
	names := []string{"al"}
	assert.True(t, selectSeries(chartcfg.Series{Name: "alpha"}, names, nil))
	assert.False(t, selectSeries(chartcfg.Series{Name: "beta"}, names, nil))
}

func TestSelectSeriesRegexIsPrefixAnchored(t *testing.T) {
	regexes, err := CompilePatterns([]string{"be"})
	require.NoError(t, err)
	assert.True(t, selectSeries(chartcfg.Series{Name: "beta"}, nil, regexes))

	// "eta" occurs in "beta" but not at the start; a prefix match rejects it.
	regexes, err = CompilePatterns([]string{"eta"})
	require.NoError(t, err)
	assert.False(t, selectSeries(chartcfg.Series{Name: "beta"}, nil, regexes))
}

func TestSelectSeriesEmptySuppliedListPassesNothing(t *testing.T) {
	assert.False(t, selectSeries(chartcfg.Series{Name: "alpha"}, []string{}, nil))
}

func TestSelectSeriesEitherFilterSuffices(t *testing.T) {
	regexes, err := CompilePatterns([]string{"gam"})
	require.NoError(t, err)

	// Fails the name list but passes the regex list.
	assert.True(t, selectSeries(chartcfg.Series{Name: "gamma"}, []string{"zzz"}, regexes))
}

func TestCompilePatternsRejectsInvalidRegex(t *testing.T) {
	_, err := CompilePatterns([]string{"("})
	require.Error(t, err)
}

func TestCompilePatternsNilPassthrough(t *testing.T) {
	regexes, err := CompilePatterns(nil)
	require.NoError(t, err)
	assert.Nil(t, regexes)
}
