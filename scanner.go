package cssextract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/cssextract/internal/extract"
	"github.com/yacobolo/cssextract/internal/jsx"
)

// StyledElement is an element carrying style={{ ... }} found by the scanner
type StyledElement struct {
	Element   string // "div", "motion.div", "" for fragments
	Location  FileLocation
	Partition extract.Partition
}

// FileLocation tracks where a style attribute was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the style attribute
	Offset int    // 0-based byte offset of the style attribute
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Files skipped by filtering
}

var sourceExtensions = map[string]bool{
	".jsx": true,
	".tsx": true,
	".js":  true,
	".mjs": true,
	".cjs": true,
	".ts":  true,
	".mts": true,
	".cts": true,
}

// fileFilter decides which discovered files are scanned
type fileFilter struct {
	gitignore *ignore.GitIgnore
}

// newFileFilter loads the .gitignore at path. A missing file is fine.
func newFileFilter(gitignorePath string) *fileFilter {
	gi, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		gi = nil
	}
	return &fileFilter{gitignore: gi}
}

// skip reports whether path should be excluded from scanning.
//
// Three layers:
//  1. Extension: only JavaScript/TypeScript sources
//  2. Vendored and declaration files: node_modules, *.d.ts
//  3. .gitignore, applied to relative paths only
func (f *fileFilter) skip(path string) bool {
	if !sourceExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}

	slashed := filepath.ToSlash(path)
	if strings.Contains("/"+slashed+"/", "/node_modules/") || strings.HasSuffix(slashed, ".d.ts") {
		return true
	}

	if !filepath.IsAbs(path) && f.gitignore != nil && f.gitignore.MatchesPath(path) {
		return true
	}

	return false
}

// expandGlobPatterns expands globs to the files that pass the filter
func expandGlobPatterns(patterns []string, filter *fileFilter) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if filter.skip(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile parses one source file and returns its styled elements
func scanFile(filePath string) ([]StyledElement, error) {
	// #nosec G304 - path comes from the user's glob patterns
	src, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return scanSource(filePath, src)
}

// scanSource finds every element with an inline style object in src
func scanSource(filePath string, src []byte) ([]StyledElement, error) {
	file, err := jsx.Parse(src, jsx.DialectForPath(filePath))
	if err != nil {
		return nil, err
	}

	var found []StyledElement
	for _, el := range jsx.Elements(file) {
		attr, obj := el.StyleObject()
		if obj == nil {
			continue
		}

		offset := attr.Span().Start
		line, col := jsx.LineColumn(src, offset)
		found = append(found, StyledElement{
			Element: el.Name,
			Location: FileLocation{
				File:   filePath,
				Line:   line,
				Column: col,
				Offset: offset,
				Text:   lineText(src, offset),
			},
			Partition: extract.PartitionStyles(obj, src),
		})
	}
	return found, nil
}

// lineText returns the line containing offset, without its newline
func lineText(src []byte, offset int) string {
	start := bytes.LastIndexByte(src[:offset], '\n') + 1
	end := bytes.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}
	return strings.TrimRight(string(src[start:end]), "\r")
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
