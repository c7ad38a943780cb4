package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ptheywood/json2plot/src/chartcfg"
)

// CompilePatterns compiles series-filter regular expressions. Patterns are
// anchored at the start of the series name (a prefix match, not a full
// match), mirroring how the filters have always behaved.
func CompilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	if patterns == nil {
		return nil, nil
	}
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")")
		if err != nil {
			return nil, fmt.Errorf("series regex %q: %w", p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// selectSeries reports whether a series should be drawn. With no filters
// every series passes. A supplied-but-empty filter list passes nothing by
// itself; the series must match a name substring or a regex to be drawn.
func selectSeries(s chartcfg.Series, names []string, regexes []*regexp.Regexp) bool {
	if names == nil && regexes == nil {
		return true
	}
	for _, sub := range names {
		if strings.Contains(s.Name, sub) {
			return true
		}
	}
	for _, re := range regexes {
		if re.MatchString(s.Name) {
			return true
		}
	}
	return false
}
