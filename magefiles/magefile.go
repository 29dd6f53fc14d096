//go:build mage

// Package main contains Mage build targets for bookshelf developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "bookshelf"
	cmdPkg  = "./cmd/bookshelf"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Site builds the CLI and regenerates index.html from README.md.
func Site() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "build")
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Stats prints project metrics: Go production/test LOC, client asset lines
// and documentation word count.
func Stats() error {
	prodLines, err := countGoLines(".", false)
	if err != nil {
		return err
	}
	testLines, err := countGoLines(".", true)
	if err != nil {
		return err
	}
	assetLines, err := countAssetLines(filepath.Join("internal", "site", "assets"))
	if err != nil {
		return err
	}
	docWords, err := countDocWords(".")
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prodLines)
	fmt.Printf("Lines of code (Go, tests):      %d\n", testLines)
	fmt.Printf("Lines of code (JS/CSS assets):  %d\n", assetLines)
	fmt.Printf("Words (documentation):           %d\n", docWords)
	return nil
}

// countGoLines counts non-blank lines in Go files. If testOnly is true, only
// _test.go files are counted; otherwise only non-test files.
func countGoLines(root string, testOnly bool) (int, error) {
	return walkFiles(root, func(path string) (int, error) {
		if filepath.Ext(path) != ".go" || strings.HasSuffix(path, "_test.go") != testOnly {
			return 0, nil
		}
		return countNonBlank(path)
	})
}

// countAssetLines counts non-blank lines in the embedded page script and
// stylesheet.
func countAssetLines(root string) (int, error) {
	return walkFiles(root, func(path string) (int, error) {
		switch filepath.Ext(path) {
		case ".js", ".css":
			return countNonBlank(path)
		}
		return 0, nil
	})
}

// countDocWords counts words in .md and .yaml files.
func countDocWords(root string) (int, error) {
	return walkFiles(root, func(path string) (int, error) {
		switch filepath.Ext(path) {
		case ".md", ".yaml", ".yml":
		default:
			return 0, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", path, err)
		}
		return len(bytes.Fields(data)), nil
	})
}

// walkFiles sums count over every regular file under root, skipping
// directories the go tool ignores (leading "." or "_") and bin/.
func walkFiles(root string, count func(path string) (int, error)) (int, error) {
	total := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == binDir) {
				return filepath.SkipDir
			}
			return nil
		}
		n, err := count(path)
		total += n
		return err
	})
	return total, err
}

// countNonBlank counts lines in path that contain more than whitespace.
func countNonBlank(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n, nil
}
