package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsbox-cli/fsbox/internal/core/walker"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

// Summary reports what an archive operation touched
type Summary struct {
	Files       int
	Bytes       int64
	ArchivePath string
	Issues      []domain.Issue
}

// CreateZip archives the file or tree at source into a deflate zip at
// output. Entries are stored under the source's base name so the
// archive unpacks into a single folder.
func CreateZip(ctx context.Context, source, output string) (Summary, error) {
	summary := Summary{ArchivePath: output}

	absSource, err := filepath.Abs(source)
	if err != nil {
		return summary, err
	}
	info, err := os.Stat(absSource)
	if err != nil {
		return summary, domain.MapOSError(err)
	}

	out, err := os.Create(output)
	if err != nil {
		return summary, domain.MapOSError(err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	base := filepath.Base(absSource)

	if !info.IsDir() {
		n, err := addZipFile(zw, absSource, base)
		if err != nil {
			return summary, err
		}
		summary.Files = 1
		summary.Bytes = n
		return summary, closeZip(zw, out)
	}

	issues, err := walker.Walk(ctx, absSource, walker.Unbounded(), func(e domain.Entry) error {
		name := base + "/" + e.RelPath
		switch e.Kind {
		case domain.KindDirectory:
			// Explicit directory entry keeps empty dirs in the archive
			if _, err := zw.Create(name + "/"); err != nil {
				return err
			}
		case domain.KindFile:
			n, err := addZipFile(zw, e.AbsPath, name)
			if err != nil {
				summary.Issues = append(summary.Issues, domain.Issue{Path: e.RelPath, Err: err})
				return nil
			}
			summary.Files++
			summary.Bytes += n
		}
		// Symlinks are not archived
		return nil
	})
	summary.Issues = append(summary.Issues, issues...)
	if err != nil {
		return summary, err
	}

	return summary, closeZip(zw, out)
}

// closeZip flushes the central directory, then the file itself, so a
// write failure at close surfaces instead of leaving a corrupt archive
func closeZip(zw *zip.Writer, out *os.File) error {
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	return nil
}

// addZipFile streams one file into the archive under name
func addZipFile(zw *zip.Writer, path, name string) (int64, error) {
	w, err := zw.Create(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, domain.MapOSError(err)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return n, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	return n, nil
}

// ExtractZip unpacks an archive under destination. Entries that would
// escape the destination (zip-slip) are skipped and reported.
func ExtractZip(ctx context.Context, archivePath, destination string) (Summary, error) {
	summary := Summary{ArchivePath: archivePath}

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return summary, domain.MapOSError(err)
	}
	defer reader.Close()

	absDest, err := filepath.Abs(destination)
	if err != nil {
		return summary, err
	}
	if err := os.MkdirAll(absDest, 0755); err != nil {
		return summary, fmt.Errorf("cannot create destination root: %w", domain.MapOSError(err))
	}

	for _, file := range reader.File {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		destPath := filepath.Join(absDest, filepath.FromSlash(file.Name))
		if !strings.HasPrefix(destPath, absDest+string(os.PathSeparator)) {
			summary.Issues = append(summary.Issues, domain.Issue{
				Path: file.Name,
				Err:  fmt.Errorf("%w: entry escapes destination", domain.ErrPermissionDenied),
			})
			continue
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0755); err != nil {
				summary.Issues = append(summary.Issues, domain.Issue{Path: file.Name, Err: domain.MapOSError(err)})
			}
			continue
		}

		if err := extractZipFile(file, destPath); err != nil {
			summary.Issues = append(summary.Issues, domain.Issue{Path: file.Name, Err: err})
			continue
		}
		summary.Files++
		summary.Bytes += int64(file.UncompressedSize64)
	}
	return summary, nil
}

// extractZipFile writes one archive entry with scoped handles
func extractZipFile(file *zip.File, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return domain.MapOSError(err)
	}

	src, err := file.Open()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	defer src.Close()

	mode := file.FileInfo().Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return domain.MapOSError(err)
	}

	_, copyErr := io.Copy(dst, src)
	closeErr := dst.Close()
	if copyErr != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, copyErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, closeErr)
	}
	return nil
}
