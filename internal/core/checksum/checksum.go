package checksum

import (
	"context"
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/fsbox-cli/fsbox/internal/domain"
)

// Algorithm represents the hashing algorithm to use
type Algorithm string

const (
	// MD5 algorithm (fast, fine for content comparison)
	MD5 Algorithm = "md5"
	// SHA256 algorithm (recommended default)
	SHA256 Algorithm = "sha256"
	// XXH64 algorithm (non-cryptographic, fastest; used by dedup scans)
	XXH64 Algorithm = "xxh64"
)

// ParseAlgorithm validates an algorithm name from config or flags
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case MD5, SHA256, XXH64:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedAlgorithm, s)
	}
}

// Options configures the checksum calculator
type Options struct {
	// MaxSize: files larger than this will not be checksummed (0 = unlimited)
	MaxSize int64

	// BufferSize: size of buffer for streaming reads
	BufferSize int
}

// DefaultOptions returns the recommended default options
func DefaultOptions() Options {
	return Options{
		MaxSize:    0,         // unlimited; dedup needs every file hashed
		BufferSize: 32 * 1024, // 32KB
	}
}

// Calculator computes content digests
type Calculator interface {
	// Calculate computes a digest from an io.Reader
	Calculate(ctx context.Context, reader io.Reader, algo Algorithm) (string, error)

	// File computes a digest of a file with scoped open/close
	File(ctx context.Context, path string, algo Algorithm) (string, error)
}

// DefaultCalculator implements Calculator with streaming support
type DefaultCalculator struct {
	opts Options
}

// NewCalculator creates a new calculator with the given options
func NewCalculator(opts Options) *DefaultCalculator {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultOptions().BufferSize
	}
	return &DefaultCalculator{opts: opts}
}

// NewDefaultCalculator creates a calculator with default options
func NewDefaultCalculator() *DefaultCalculator {
	return NewCalculator(DefaultOptions())
}

// Calculate implements the Calculator interface
func (c *DefaultCalculator) Calculate(ctx context.Context, reader io.Reader, algo Algorithm) (string, error) {
	var h hash.Hash
	switch algo {
	case MD5:
		h = md5.New()
	case SHA256:
		h = sha256.New()
	case XXH64:
		h = xxhash.New()
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedAlgorithm, algo)
	}

	var limitedReader io.Reader = reader
	if c.opts.MaxSize > 0 {
		limitedReader = io.LimitReader(reader, c.opts.MaxSize+1)
	}

	buffer := make([]byte, c.opts.BufferSize)
	totalBytes := int64(0)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		n, err := limitedReader.Read(buffer)
		if n > 0 {
			totalBytes += int64(n)
			if c.opts.MaxSize > 0 && totalBytes > c.opts.MaxSize {
				return "", fmt.Errorf("file size exceeds maximum (%d bytes)", c.opts.MaxSize)
			}
			if _, hashErr := h.Write(buffer[:n]); hashErr != nil {
				return "", fmt.Errorf("%w: hash write: %v", domain.ErrIO, hashErr)
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: read: %v", domain.ErrIO, err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// File implements the Calculator interface
func (c *DefaultCalculator) File(ctx context.Context, path string, algo Algorithm) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", domain.MapOSError(err)
	}
	defer f.Close()

	return c.Calculate(ctx, f, algo)
}

// IsSupported checks if the given algorithm is supported
func IsSupported(algo Algorithm) bool {
	_, err := ParseAlgorithm(string(algo))
	return err == nil
}
