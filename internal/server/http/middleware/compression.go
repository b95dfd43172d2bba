package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodyBytes bounds decompressed request bodies.
const DefaultMaxBodyBytes = 1 << 20

type gzipBody struct {
	*gzip.Reader
	src interface{ Close() error }
}

func (b gzipBody) Close() error {
	_ = b.Reader.Close()
	return b.src.Close()
}

// DecompressRequest inflates gzip encoded request bodies and caps them at maxBytes.
func DecompressRequest(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(c *gin.Context) {
		if !strings.Contains(c.GetHeader("Content-Encoding"), "gzip") {
			c.Next()
			return
		}

		reader, err := gzip.NewReader(c.Request.Body)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, gzipBody{Reader: reader, src: c.Request.Body}, maxBytes)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
