package middleware

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// CompressionConfig holds configuration for response compression
type CompressionConfig struct {
	MinSize          int      // smallest body worth compressing, in bytes
	CompressionLevel int      // gzip level, 1 to 9
	ContentTypes     []string // content type prefixes that may be compressed
}

// DefaultCompressionConfig returns the default compression configuration
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:          1024,
		CompressionLevel: gzip.DefaultCompression,
		ContentTypes: []string{
			"application/json",
			"text/plain",
			"text/html",
			"text/css",
			"application/javascript",
		},
	}
}

// CompressionMiddleware gzips responses for clients that accept it
type CompressionMiddleware struct {
	config CompressionConfig
	pool   sync.Pool

	totalResponses      int64
	compressedResponses int64
	totalBytes          int64
	compressedBytes     int64
}

// NewCompressionMiddleware creates a new compression middleware
func NewCompressionMiddleware(config CompressionConfig) *CompressionMiddleware {
	if config.MinSize <= 0 {
		config.MinSize = DefaultCompressionConfig().MinSize
	}
	if config.CompressionLevel < gzip.HuffmanOnly || config.CompressionLevel > gzip.BestCompression {
		config.CompressionLevel = gzip.DefaultCompression
	}
	if len(config.ContentTypes) == 0 {
		config.ContentTypes = DefaultCompressionConfig().ContentTypes
	}

	cm := &CompressionMiddleware{config: config}
	cm.pool.New = func() interface{} {
		gz, _ := gzip.NewWriterLevel(nil, cm.config.CompressionLevel)
		return gz
	}
	return cm
}

// Handler buffers the response and gzips it on the way out when the client
// accepts gzip and the body is large enough
func (cm *CompressionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		original := c.Writer
		bw := &bufferedWriter{ResponseWriter: original}
		c.Writer = bw
		defer func() { c.Writer = original }()

		c.Next()

		cm.flush(original, bw)
	}
}

func (cm *CompressionMiddleware) flush(w gin.ResponseWriter, bw *bufferedWriter) {
	body := bw.buf.Bytes()
	atomic.AddInt64(&cm.totalResponses, 1)
	atomic.AddInt64(&cm.totalBytes, int64(len(body)))

	header := w.Header()
	if len(body) < cm.config.MinSize || header.Get("Content-Encoding") != "" || !cm.shouldCompress(header.Get("Content-Type")) {
		w.WriteHeaderNow()
		if len(body) > 0 {
			_, _ = w.Write(body)
		}
		return
	}

	header.Set("Content-Encoding", "gzip")
	header.Add("Vary", "Accept-Encoding")
	header.Del("Content-Length")
	w.WriteHeaderNow()

	gz := cm.pool.Get().(*gzip.Writer)
	defer cm.pool.Put(gz)
	cw := &countingWriter{w: w}
	gz.Reset(cw)
	_, _ = gz.Write(body)
	_ = gz.Close()

	atomic.AddInt64(&cm.compressedResponses, 1)
	atomic.AddInt64(&cm.compressedBytes, cw.n)
}

// shouldCompress checks if the content type should be compressed
func (cm *CompressionMiddleware) shouldCompress(contentType string) bool {
	for _, ct := range cm.config.ContentTypes {
		if strings.HasPrefix(contentType, ct) {
			return true
		}
	}
	return false
}

// GetStats returns compression statistics
func (cm *CompressionMiddleware) GetStats() map[string]interface{} {
	total := atomic.LoadInt64(&cm.totalBytes)
	compressed := atomic.LoadInt64(&cm.compressedBytes)
	ratio := float64(0)
	if total > 0 {
		ratio = float64(compressed) / float64(total)
	}
	return map[string]interface{}{
		"total_responses":      atomic.LoadInt64(&cm.totalResponses),
		"compressed_responses": atomic.LoadInt64(&cm.compressedResponses),
		"total_bytes":          total,
		"compressed_bytes":     compressed,
		"compression_ratio":    ratio,
	}
}

// bufferedWriter holds the body until the middleware decides how to send it.
// The status is still recorded by the wrapped writer, which does not commit
// it before WriteHeaderNow.
type bufferedWriter struct {
	gin.ResponseWriter
	buf     bytes.Buffer
	written bool
}

func (w *bufferedWriter) WriteHeaderNow() { w.written = true }

func (w *bufferedWriter) Write(data []byte) (int, error) {
	w.written = true
	return w.buf.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.written = true
	return w.buf.WriteString(s)
}

func (w *bufferedWriter) Written() bool { return w.written }

func (w *bufferedWriter) Size() int {
	if !w.written {
		return -1
	}
	return w.buf.Len()
}

// Flush is a no-op; streaming responses are not compressed
func (w *bufferedWriter) Flush() {}

type countingWriter struct {
	w http.ResponseWriter
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
