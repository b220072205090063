package fsutil

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// IterFiles returns the full paths of all regular files under the given
// directories, in walk order.
func IterFiles(dirs []string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// IterFilesMatch returns the files under dirs whose base name matches the
// glob pattern.
func IterFilesMatch(dirs []string, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("bad file pattern %q: %w", pattern, err)
	}
	all, err := IterFiles(dirs)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, path := range all {
		if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
			files = append(files, path)
		}
	}
	return files, nil
}

// FileContainsPatterns scans the file once, line by line, and returns the
// patterns that matched no line. Every pattern is a regular expression.
func FileContainsPatterns(path string, patterns []string) ([]string, error) {
	pending := make(map[string]*regexp.Regexp, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		pending[p] = re
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(pending) > 0 {
		line := scanner.Text()
		for p, re := range pending {
			if re.MatchString(line) {
				delete(pending, p)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	missing := make([]string, 0, len(pending))
	for _, p := range patterns {
		if _, ok := pending[p]; ok {
			missing = append(missing, p)
		}
	}
	return missing, nil
}
