package merge

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"vmm/internal/domain"
)

// copyConcurrency bounds parallel file copies; merged output is many small
// files and a handful of writers saturates the disk.
const copyConcurrency = 4

// CopyOutput copies every file under srcDir into destDir, preserving the
// relative layout and file modes. srcDir is expected to be the merged
// "data" tree produced by ViolaCLI.
func (r *Runner) CopyOutput(srcDir, destDir string) error {
	if info, err := os.Stat(srcDir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: merged output missing at %s", domain.ErrCopyFailed, srcDir)
	}

	var g errgroup.Group
	g.SetLimit(copyConcurrency)

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(destDir, rel)

		if d.IsDir() {
			return os.MkdirAll(dst, 0755)
		}

		g.Go(func() error {
			return copyFile(path, dst)
		})
		return nil
	})
	if err != nil {
		g.Wait()
		return fmt.Errorf("%w: %v", domain.ErrCopyFailed, err)
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCopyFailed, err)
	}
	return nil
}

// copyFile copies src to dst, creating parent directories as needed.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("creating destination dir: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}

// RestoreBaseline copies the pristine cfg.bin straight into the game's data
// directory, used when an apply runs with zero enabled mods.
func (r *Runner) RestoreBaseline(cfgBin, gamePath string) error {
	dst := filepath.Join(gamePath, "data", "cpk_list.cfg.bin")
	if err := copyFile(cfgBin, dst); err != nil {
		return fmt.Errorf("restoring baseline: %w", err)
	}
	return nil
}
