// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders pipeline results for the terminal and for one-shot
// file saves.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/search-agent/pkg/types"
)

var rule = strings.Repeat("-", 80)

// FormatText writes the human-readable layout to w.
func FormatText(r types.Result, w io.Writer) {
	if r.QueryType == types.IntentSimple {
		fmt.Fprintln(w, "Query Type: Simple")
		fmt.Fprintln(w, rule)
		fmt.Fprintln(w, r.Response)
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "Tokens used: %d\n", r.TokensUsed)
		return
	}

	fmt.Fprintf(w, "Query Type: Research on %s\n", r.CompanyName)
	fmt.Fprintf(w, "Official Website: %s\n", r.OfficialWebsite)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, r.ResearchReport)
	fmt.Fprintln(w, rule)
}

// FormatJSON writes the result as indented JSON to w.
func FormatJSON(r types.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Save writes the result to path once. JSON when asJSON is set, YAML when
// the path has a .yaml/.yml extension, otherwise the text layout prefixed
// with the original query.
func Save(r types.Result, path string, asJSON bool) error {
	var buf strings.Builder

	switch {
	case asJSON:
		if err := FormatJSON(r, &buf); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	case isYAMLPath(path):
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		buf.Write(data)
	default:
		fmt.Fprintf(&buf, "Query: %s\n", r.OriginalQuery)
		FormatText(r, &buf)
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	return nil
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
