package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/utils"
)

type contextKey string

const jsonBodyCtxKey = contextKey("jsonBody")

// withJSONBody reads JSON request bodies up to the configured limit and
// stores them in the context as json.RawMessage. Bodies of other content
// types pass through untouched. Gzip-encoded bodies are inflated first.
func (h *Handler) withJSONBody(next http.Handler) http.Handler {
	limit := h.server.BodyLimit

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody || !isJSONContentType(r.Header.Get("Content-Type")) {
			next.ServeHTTP(w, r)
			return
		}

		body, err := readBody(r, limit)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		if len(bytes.TrimSpace(body)) > 0 {
			if !json.Valid(body) {
				h.writeError(w, r, ErrMalformedJSON)
				return
			}
			r = r.WithContext(context.WithValue(r.Context(), jsonBodyCtxKey, json.RawMessage(body)))
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func readBody(r *http.Request, limit int64) ([]byte, error) {
	defer r.Body.Close()

	var src io.Reader = r.Body
	if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
		gz := gzipReaderPool.Get().(*gzip.Reader)
		defer gzipReaderPool.Put(gz)

		if err := gz.Reset(r.Body); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidGzip, err)
		}
		defer gz.Close()

		src = gz
		r.Header.Del("Content-Encoding")
	}

	body, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		if errors.Is(err, gzip.ErrChecksum) || errors.Is(err, gzip.ErrHeader) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidGzip, err)
		}
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

// isJSONContentType accepts application/json and any +json subtype.
func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// decodeBody decodes the parsed JSON body into dst. A request without a
// JSON body leaves dst untouched so validation reports the missing fields.
func decodeBody(r *http.Request, dst any) error {
	raw, ok := r.Context().Value(jsonBodyCtxKey).(json.RawMessage)
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := utils.DecodeJSON(raw, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return nil
}
