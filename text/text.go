// SPDX-License-Identifier: MIT

// Package text fills "{{key}}" placeholders in short templates such as output
// file names ("out/{{name}}-{{window}}.csv").
package text

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrMissingValue is returned when a placeholder has no value.
var ErrMissingValue = errors.New("text: expected interpolated value to exist")

var placeholder = regexp.MustCompile(`\{\{(.+?)\}\}`)

// Interpolate replaces every {{key}} in template with fmt.Sprint(values[key]).
// A template without placeholders is returned unchanged.
func Interpolate(values map[string]any, template string) (string, error) {
	var missing error
	out := placeholder.ReplaceAllStringFunc(template, func(match string) string {
		key := match[2 : len(match)-2]
		v, ok := values[key]
		if !ok {
			if missing == nil {
				missing = fmt.Errorf("%w: %s", ErrMissingValue, match)
			}
			return match
		}
		return fmt.Sprint(v)
	})
	if missing != nil {
		return "", missing
	}

	return out, nil
}
