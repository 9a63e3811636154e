package http

import (
	"compress/gzip"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		w := gzip.NewWriter(nil)
		return w
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip compresses responses for clients that accept gzip once the body
// reaches the configured threshold. Smaller bodies are sent as is.
func (h *Handler) withGZip(next http.Handler) http.Handler {
	threshold := h.server.CompressionThreshold

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if !acceptsGzip(req.Header.Get("Accept-Encoding")) || req.Method == http.MethodHead {
			next.ServeHTTP(w, req)
			return
		}

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			threshold:      threshold,
		}

		next.ServeHTTP(gzipRW, req)

		if err := gzipRW.Close(); err != nil {
			h.logger.Err(err).Msg("error finishing compressed response")
		}
	})
}

func acceptsGzip(acceptEncoding string) bool {
	for _, part := range strings.Split(acceptEncoding, ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if !strings.EqualFold(strings.TrimSpace(coding), "gzip") {
			continue
		}
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if v, err := strconv.ParseFloat(q, 64); err == nil && v == 0 {
				return false
			}
		}
		return true
	}
	return false
}

// gzipResponseWriter holds back the status line and the first bytes of the
// body until it knows whether the response reaches the threshold.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	threshold int
	status    int
	buf       []byte
	decided   bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	if w.decided {
		if w.gzipWriter != nil {
			return w.gzipWriter.Write(data)
		}
		return w.ResponseWriter.Write(data)
	}

	w.buf = append(w.buf, data...)
	if len(w.buf) >= w.threshold {
		if err := w.flushBuffer(true); err != nil {
			return 0, err
		}
	}
	return len(data), nil
}

// flushBuffer sends the held back status and body, compressed when
// compress is set and nothing upstream already encoded the body.
func (w *gzipResponseWriter) flushBuffer(compress bool) error {
	w.decided = true
	header := w.Header()

	if compress && header.Get("Content-Encoding") == "" && bodyAllowed(w.status) {
		header.Set("Content-Encoding", "gzip")
		header.Del("Content-Length")

		w.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
		w.gzipWriter.Reset(w.ResponseWriter)
		w.ResponseWriter.WriteHeader(w.status)

		_, err := w.gzipWriter.Write(w.buf)
		w.buf = nil
		return err
	}

	w.ResponseWriter.WriteHeader(w.status)
	if len(w.buf) == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(w.buf)
	w.buf = nil
	return err
}

// Close flushes whatever the handler produced. It must be called once the
// handler has returned.
func (w *gzipResponseWriter) Close() error {
	if !w.decided {
		if w.status == 0 {
			w.status = http.StatusOK
		}
		return w.flushBuffer(false)
	}
	if w.gzipWriter == nil {
		return nil
	}

	err := w.gzipWriter.Close()
	gzipWriterPool.Put(w.gzipWriter)
	w.gzipWriter = nil
	return err
}

func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func bodyAllowed(status int) bool {
	return status >= 200 && status != http.StatusNoContent && status != http.StatusNotModified
}
