// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package compiler

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/petar-djukic/cs2ts/internal/naming"
	"github.com/petar-djukic/cs2ts/internal/translate"
	"github.com/petar-djukic/cs2ts/internal/tsast"
	"github.com/petar-djukic/cs2ts/pkg/types"
)

// resolveImports looks up where each referenced type lives and groups the
// types into one import declaration per module, ordered by module path with
// names sorted within each. Types declared in the importing file itself are
// skipped; types no table knows are reported and skipped.
func resolveImports(sourcePath, outputPath string, tables *naming.Tables, syms []types.Symbol) ([]Import, []*tsast.Import, []types.Diagnostic) {
	var imports []Import
	var diags []types.Diagnostic
	byModule := make(map[string]map[string]bool)

	for _, sym := range syms {
		info, ok := tables.Imports.TryGet(sym)
		if !ok {
			diags = append(diags, translate.UnresolvedImport(types.Location{FilePath: sourcePath}, sym.Signature()))
			continue
		}
		if info.IsInternalReference() && filepath.Clean(info.PathOrModule()) == filepath.Clean(outputPath) {
			continue
		}
		name := sym.Name()
		if sn, ok := tables.ScriptNames.TryGet(sym); ok && sn != "" {
			name = sn.String()
		}
		imports = append(imports, Import{Symbol: sym, Name: name, Info: info})

		from := info.PathOrModule()
		if info.IsInternalReference() {
			from = relativeModule(outputPath, from)
		}
		if from == "" {
			diags = append(diags, translate.UnresolvedImport(types.Location{FilePath: sourcePath}, sym.Signature()))
			continue
		}
		if byModule[from] == nil {
			byModule[from] = make(map[string]bool)
		}
		byModule[from][name] = true
	}

	modules := make([]string, 0, len(byModule))
	for m := range byModule {
		modules = append(modules, m)
	}
	sort.Strings(modules)

	decls := make([]*tsast.Import, 0, len(modules))
	for _, m := range modules {
		names := make([]string, 0, len(byModule[m]))
		for n := range byModule[m] {
			names = append(names, n)
		}
		sort.Strings(names)
		decls = append(decls, &tsast.Import{Names: names, From: m})
	}
	return imports, decls, diags
}

// relativeModule returns the module specifier that imports the output file
// target from the output file from: a "./" or "../" relative path with
// forward slashes and without the .ts extension.
func relativeModule(from, target string) string {
	rel, err := filepath.Rel(filepath.Dir(from), target)
	if err != nil {
		rel = target
	}
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, ".ts")
	if !strings.HasPrefix(rel, "../") && !strings.HasPrefix(rel, "/") {
		rel = "./" + rel
	}
	return rel
}
