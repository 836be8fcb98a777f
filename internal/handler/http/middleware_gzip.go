package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// withGZip compresses JSON responses for clients that accept gzip. Model
// listings carry every geometry list of the catalog and compress well.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)
		defer gzipWriterPool.Put(gzipWriter)

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}
		next.ServeHTTP(gzipRW, r)

		if gzipRW.wroteBody {
			gzipWriter.Close()
			return
		}
		// bodiless responses go out unencoded
		if gzipRW.statusCode != 0 {
			w.WriteHeader(gzipRW.statusCode)
		}
	})
}

// gzipResponseWriter holds the status back until the first body byte so that
// Content-Encoding is only announced for responses that have a body.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	statusCode int
	wroteBody  bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.statusCode != 0 || w.wroteBody {
		return
	}
	w.statusCode = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if !w.wroteBody {
		w.wroteBody = true
		if w.statusCode == 0 {
			w.statusCode = http.StatusOK
		}
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.ResponseWriter.WriteHeader(w.statusCode)
	}
	return w.gzipWriter.Write(data)
}
