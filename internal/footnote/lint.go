// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package footnote expands {{footnote: ...}} markers into numbered
// footnotes. lint.go implements the standalone advisory scan behind the
// lint subcommand: it never rewrites anything, it only reports.
package footnote

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// openToken is the literal that starts a marker. A body position holding
// this token outside any complete match is an unterminated marker.
const openToken = "{{footnote:"

// Finding is one advisory result from scanning a file.
type Finding struct {
	// File is the path as it was given to the scan.
	File string `json:"file" yaml:"file"`

	// Line and Column locate the opening token, 1-based.
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`

	// Message describes the problem.
	Message string `json:"message" yaml:"message"`
}

// FileReport summarizes one scanned file.
type FileReport struct {
	File     string    `json:"file" yaml:"file"`
	Markers  int       `json:"markers" yaml:"markers"`
	Findings []Finding `json:"findings,omitempty" yaml:"findings,omitempty"`
}

// Report is the outcome of a lint run over one or more paths.
type Report struct {
	Files    []FileReport `json:"files" yaml:"files"`
	Markers  int          `json:"markers" yaml:"markers"`
	Findings int          `json:"findings" yaml:"findings"`
}

// HasFindings reports whether any scanned file produced a finding.
func (r Report) HasFindings() bool {
	return r.Findings > 0
}

// ScanBody counts complete markers in body and returns the byte offsets
// of opening tokens that never find their closing }}. Openings inside a
// complete marker's content are not flagged; they are consumed as content
// and the processing pass leaves them alone too.
func ScanBody(body string) (markers int, unterminated []int) {
	matches := markerRe.FindAllStringIndex(body, -1)

	covered := func(pos int) bool {
		for _, m := range matches {
			if pos >= m[0] && pos < m[1] {
				return true
			}
		}
		return false
	}

	for off := 0; ; {
		i := strings.Index(body[off:], openToken)
		if i < 0 {
			break
		}
		pos := off + i
		if !covered(pos) {
			unterminated = append(unterminated, pos)
		}
		off = pos + len(openToken)
	}
	return len(matches), unterminated
}

// ScanFile lints a single file.
func ScanFile(path string) (FileReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileReport{}, fmt.Errorf("reading %s: %w", path, err)
	}
	body := string(data)

	report := FileReport{File: path}
	var unterminated []int
	report.Markers, unterminated = ScanBody(body)
	for _, off := range unterminated {
		line, col := lineCol(body, off)
		report.Findings = append(report.Findings, Finding{
			File:    path,
			Line:    line,
			Column:  col,
			Message: `unterminated footnote marker: missing closing "}}"`,
		})
	}
	return report, nil
}

// ScanPaths lints every given path in order. A directory is walked for
// .md files; a file is scanned as-is regardless of extension.
func ScanPaths(paths []string) (Report, error) {
	var report Report
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return Report{}, fmt.Errorf("stat %s: %w", path, err)
		}

		files := []string{path}
		if info.IsDir() {
			files, err = markdownFiles(path)
			if err != nil {
				return Report{}, err
			}
		}

		for _, file := range files {
			fr, err := ScanFile(file)
			if err != nil {
				return Report{}, err
			}
			report.Files = append(report.Files, fr)
			report.Markers += fr.Markers
			report.Findings += len(fr.Findings)
		}
	}
	return report, nil
}

// markdownFiles returns the .md files under dir in walk order.
func markdownFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}
	return files, nil
}

// lineCol converts a byte offset into a 1-based line and column pair.
func lineCol(body string, off int) (line, col int) {
	line = 1 + strings.Count(body[:off], "\n")
	last := strings.LastIndexByte(body[:off], '\n')
	return line, off - last
}

// WriteText prints the report in the per-file batch format: one line per
// file, finding lines indented beneath it, and a trailing summary.
func (r Report) WriteText(w io.Writer) {
	for _, fr := range r.Files {
		fmt.Fprintf(w, "%s: %d footnote(s)\n", fr.File, fr.Markers)
		for _, f := range fr.Findings {
			fmt.Fprintf(w, "  %s:%d:%d: %s\n", f.File, f.Line, f.Column, f.Message)
		}
	}
	fmt.Fprintf(w, "\nScanned %d file(s): %d footnote(s), %d finding(s)\n",
		len(r.Files), r.Markers, r.Findings)
}

// EncodeJSON writes the report as indented JSON.
func (r Report) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// EncodeYAML writes the report as YAML.
func (r Report) EncodeYAML(w io.Writer) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
