package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/yaklabco/javalint/pkg/langdetect"
)

// generatedProbeSize bounds how much of a file is read to look for
// generated-code markers.
const generatedProbeSize = 4096

// excludeSet is a compiled set of exclusion globs. Patterns match against
// slash-separated paths relative to the working directory, and against
// bare file names.
type excludeSet struct {
	globs []glob.Glob
}

func compileExcludes(patterns []string) (*excludeSet, error) {
	set := &excludeSet{}
	for _, p := range patterns {
		g, err := glob.Compile(filepath.ToSlash(p), '/')
		if err != nil {
			return nil, fmt.Errorf("compile exclude pattern %q: %w", p, err)
		}
		set.globs = append(set.globs, g)
	}
	return set, nil
}

func (s *excludeSet) match(relPath string) bool {
	slashPath := filepath.ToSlash(relPath)
	base := filepath.Base(slashPath)
	for _, g := range s.globs {
		if g.Match(slashPath) || g.Match(base) {
			return true
		}
	}
	return false
}

// Discover finds Java source files matching opts under the given working
// directory. It returns a deterministically sorted list of absolute file
// paths.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	excludes, err := compileExcludes(opts.ExcludeGlobs)
	if err != nil {
		return nil, err
	}

	extensions := opts.effectiveExtensions()
	paths := opts.effectivePaths()

	seen := make(map[string]struct{})
	var files []string

	for _, inputPath := range paths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := walkDirectory(ctx, absPath, workDir, extensions, excludes, opts)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				if _, ok := seen[f]; !ok {
					seen[f] = struct{}{}
					files = append(files, f)
				}
			}
		} else if matchesFile(absPath, workDir, extensions, excludes, opts) {
			// An explicitly named file only needs to pass the filters.
			if _, ok := seen[absPath]; !ok {
				seen[absPath] = struct{}{}
				files = append(files, absPath)
			}
		}
	}

	sort.Strings(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory recursively walks a directory and returns matching Java
// files.
func walkDirectory(
	ctx context.Context,
	root string,
	workDir string,
	extensions []string,
	excludes *excludeSet,
	opts Options,
) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			// Handle permission errors gracefully.
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			// Skip hidden directories (except root).
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if excludes.match(relPath) {
				return filepath.SkipDir
			}
			if !opts.IncludeVendored && langdetect.IsVendored(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(path)
			if evalErr != nil {
				// Broken symlink, skip silently.
				return nil //nolint:nilerr // Intentionally skip broken symlinks
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Intentionally skip inaccessible symlink targets
			}
			if info.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				// Walk the symlink TARGET (realPath), not the symlink
				// itself. This avoids infinite recursion since WalkDir
				// uses Lstat on root.
				subFiles, err := walkDirectory(ctx, realPath, workDir, extensions, excludes, opts)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
			// File symlink: continue to check as regular file.
		}

		// Skip hidden files.
		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if matchesFile(path, workDir, extensions, excludes, opts) {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// matchesFile checks if a file path passes the inclusion filters.
func matchesFile(path, workDir string, extensions []string, excludes *excludeSet, opts Options) bool {
	relPath, err := filepath.Rel(workDir, path)
	if err != nil {
		relPath = path
	}

	if !hasMatchingExtension(path, extensions) {
		return false
	}
	if excludes.match(relPath) {
		return false
	}
	vendored := langdetect.IsVendored(relPath)
	if !opts.IncludeVendored && vendored {
		return false
	}
	// enry's generated heuristics also fire on vendored-style paths; a file
	// admitted through IncludeVendored must not be re-dropped by them.
	if !opts.IncludeGenerated && !vendored && isGeneratedFile(path, relPath) {
		return false
	}

	return true
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// isGeneratedFile probes the head of a file for generated-code markers.
// Unreadable files are left in; the pipeline will surface the real error.
func isGeneratedFile(path, relPath string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, generatedProbeSize)
	n, _ := f.Read(buf)
	return langdetect.IsGenerated(relPath, buf[:n])
}
