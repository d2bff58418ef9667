package archive

import (
	"archive/tar"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/fsbox-cli/fsbox/internal/core/walker"
	"github.com/fsbox-cli/fsbox/internal/domain"
)

// Format selects the container written by backups
type Format string

const (
	FormatZip     Format = "zip"
	FormatTarGz   Format = "tgz"
	FormatTarZstd Format = "tzst"
)

// ParseFormat validates a format name from flags
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatZip, FormatTarGz, FormatTarZstd:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown archive format %q (zip, tgz, tzst)", s)
	}
}

// Ext returns the file extension for the format
func (f Format) Ext() string {
	switch f {
	case FormatTarGz:
		return ".tar.gz"
	case FormatTarZstd:
		return ".tar.zst"
	default:
		return ".zip"
	}
}

// Create archives source into output using the given format
func Create(ctx context.Context, source, output string, format Format) (Summary, error) {
	switch format {
	case FormatTarGz, FormatTarZstd:
		return createTar(ctx, source, output, format)
	default:
		return CreateZip(ctx, source, output)
	}
}

// createTar writes a compressed tarball of the file or tree at source
func createTar(ctx context.Context, source, output string, format Format) (Summary, error) {
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

	var compressed io.WriteCloser
	switch format {
	case FormatTarZstd:
		compressed, err = zstd.NewWriter(out)
		if err != nil {
			return summary, fmt.Errorf("%w: %v", domain.ErrIO, err)
		}
	default:
		compressed = gzip.NewWriter(out)
	}

	tw := tar.NewWriter(compressed)

	base := filepath.Base(absSource)
	if !info.IsDir() {
		n, err := addTarFile(tw, absSource, base, info)
		if err != nil {
			return summary, err
		}
		summary.Files = 1
		summary.Bytes = n
		return summary, closeAll(tw, compressed, out)
	}

	issues, err := walker.Walk(ctx, absSource, walker.Unbounded(), func(e domain.Entry) error {
		name := base + "/" + e.RelPath
		switch e.Kind {
		case domain.KindDirectory:
			hdr := &tar.Header{
				Name:     name + "/",
				Mode:     int64(e.Mode),
				Typeflag: tar.TypeDir,
			}
			if err := tw.WriteHeader(hdr); err != nil {
				return err
			}
		case domain.KindFile:
			fi, statErr := os.Stat(e.AbsPath)
			if statErr != nil {
				summary.Issues = append(summary.Issues, domain.Issue{Path: e.RelPath, Err: domain.MapOSError(statErr)})
				return nil
			}
			n, err := addTarFile(tw, e.AbsPath, name, fi)
			if err != nil {
				summary.Issues = append(summary.Issues, domain.Issue{Path: e.RelPath, Err: err})
				return nil
			}
			summary.Files++
			summary.Bytes += n
		}
		return nil
	})
	summary.Issues = append(summary.Issues, issues...)
	if err != nil {
		return summary, err
	}
	return summary, closeAll(tw, compressed, out)
}

// addTarFile writes one file header and body
func addTarFile(tw *tar.Writer, path, name string, info os.FileInfo) (int64, error) {
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	hdr.Name = name

	if err := tw.WriteHeader(hdr); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, domain.MapOSError(err)
	}
	defer f.Close()

	n, err := io.Copy(tw, f)
	if err != nil {
		return n, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	return n, nil
}

// closeAll flushes the tar stream, then the compressor, then the file
func closeAll(tw *tar.Writer, compressed io.WriteCloser, out *os.File) error {
	if err := tw.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	if err := compressed.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	return nil
}
