package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/ecopoints/internal/metrics"
	testhelpers "github.com/polkiloo/ecopoints/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func gzipped(t *testing.T, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write(payload); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestRequestIDAssignsNewIdentifier(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = CurrentRequestID(c)
		c.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	header := resp.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(header); err != nil {
		t.Fatalf("expected uuid request id, got %q", header)
	}
	if seen != header {
		t.Fatalf("context id %q differs from header %q", seen, header)
	}
}

func TestRequestIDPropagatesIncomingIdentifier(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get(RequestIDHeader); got != incoming {
		t.Fatalf("expected %q, got %q", incoming, got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if got := resp.Header().Get(RequestIDHeader); got == "<script>" {
		t.Fatal("expected malformed request id to be replaced")
	}
}

func TestDecompressRequest(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest(0))
	var body string
	router.POST("/", func(c *gin.Context) {
		data, _ := io.ReadAll(c.Request.Body)
		body = string(data)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipped(t, []byte("payload"))))
	req.Header.Set("Content-Encoding", "gzip")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if body != "payload" {
		t.Fatalf("expected decompressed payload, got %q", body)
	}

	body = ""
	req = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("plain")))
	router.ServeHTTP(httptest.NewRecorder(), req)
	if body != "plain" {
		t.Fatalf("expected plain body, got %q", body)
	}
}

func TestDecompressRequestRejectsInvalidGzip(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest(0))
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestDecompressRequestLimitsBody(t *testing.T) {
	router := gin.New()
	router.Use(DecompressRequest(8))
	var readErr error
	router.POST("/", func(c *gin.Context) {
		_, readErr = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipped(t, bytes.Repeat([]byte("a"), 64))))
	req.Header.Set("Content-Encoding", "gzip")
	router.ServeHTTP(httptest.NewRecorder(), req)
	if readErr == nil {
		t.Fatal("expected oversized body to fail")
	}
}

type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func attrValue(r slog.Record, key string) (string, bool) {
	var (
		value string
		found bool
	)
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value, found = a.Value.String(), true
			return false
		}
		return true
	})
	return value, found
}

func TestRequestLogger(t *testing.T) {
	handler := &recordingHandler{}
	router := gin.New()
	router.Use(RequestID())
	router.Use(RequestLogger(slog.New(handler)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(io.ErrUnexpectedEOF)
		c.Status(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	if len(handler.records) != 2 {
		t.Fatalf("expected two log records, got %d", len(handler.records))
	}
	ok := handler.records[0]
	if ok.Level != slog.LevelInfo {
		t.Fatalf("expected info level, got %s", ok.Level)
	}
	if id, found := attrValue(ok, "request_id"); !found || id == "" {
		t.Fatal("expected request id to be logged")
	}

	failed := handler.records[1]
	if failed.Level != slog.LevelError {
		t.Fatalf("expected error level, got %s", failed.Level)
	}
	if msg, found := attrValue(failed, "error"); !found || !strings.Contains(msg, "unexpected EOF") {
		t.Fatalf("expected error attribute, got %q", msg)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.New()
	router := gin.New()
	router.Use(Metrics(m))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/1", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/2", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	if got := testhelpers.CounterValue(m.Registry(), "ecopoints_http_requests_total", "path", "/items/:id"); got != 2 {
		t.Fatalf("expected 2 requests for route template, got %v", got)
	}
	if got := testhelpers.CounterValue(m.Registry(), "ecopoints_http_requests_total", "path", "unmatched"); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
}
