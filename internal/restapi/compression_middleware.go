package restapi

import (
	"mime"
	"net/http"

	"energymap.ch/internal/export"
	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress
	MinSize int
	// Level is the compression level 1-9
	Level int
	// Except lists content types that are sent uncompressed
	Except []string
}

// DefaultCompressionConfig returns the settings used by the server
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize: 1024,
		Level:   6,
		Except:  []string{export.ContentType},
	}
}

// NewCompressionMiddleware creates a compression middleware with the given configuration
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapper, err := gzhttp.NewWrapper(
			gzhttp.MinSize(config.MinSize),
			gzhttp.CompressionLevel(config.Level),
			gzhttp.ContentTypeFilter(compressibleExcept(config.Except)),
		)
		if err != nil {
			return gzhttp.GzipHandler(next)
		}
		return wrapper(next)
	}
}

// CompressionMiddleware applies gzip compression with default settings
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}

// compressibleExcept keeps gzhttp's default filter and also skips the
// given media types.
func compressibleExcept(except []string) func(ct string) bool {
	return func(ct string) bool {
		if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
			for _, skip := range except {
				if mediaType == skip {
					return false
				}
			}
		}
		return gzhttp.DefaultContentTypeFilter(ct)
	}
}
