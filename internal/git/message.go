// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package git

import (
	"fmt"
	"path/filepath"
	"strings"
)

const maxSubjectLength = 72

// Message builds a conventional commit message for regenerated output:
// a "build:" subject, the list of files, and the cs2ts trailer.
func Message(sourceDir string, files []string) string {
	noun := "modules"
	if len(files) == 1 {
		noun = "module"
	}
	subject := fmt.Sprintf("build: regenerate %d TypeScript %s", len(files), noun)
	if base := filepath.Base(filepath.Clean(sourceDir)); sourceDir != "" && base != "." && base != string(filepath.Separator) {
		subject += " from " + base
	}
	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength-3] + "..."
	}

	parts := []string{subject}
	if len(files) > 0 {
		var b strings.Builder
		b.WriteString("Regenerated files:")
		for _, f := range files {
			fmt.Fprintf(&b, "\n- %s", f)
		}
		parts = append(parts, b.String())
	}
	parts = append(parts, trailer)
	return strings.Join(parts, "\n\n")
}

func containsTrailer(msg string) bool {
	for _, line := range strings.Split(msg, "\n") {
		if strings.TrimSpace(line) == trailer {
			return true
		}
	}
	return false
}
