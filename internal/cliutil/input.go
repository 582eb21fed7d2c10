// Package cliutil holds small helpers shared by the lambdalift command
// line tools.
package cliutil

import "github.com/paiv/icfpc2012/internal/core"

// ProgramText returns whatever follows a parsed map's lines in text,
// matching the original format's convention of a blank line separating
// the map from its recorded program.
func ProgramText(text string, m *core.MapInfo) string {
	lines := 0
	for i, c := range text {
		if c == '\n' {
			lines++
			if lines > m.Height {
				return text[i+1:]
			}
		}
	}
	return ""
}
