// internal/respond/http.go
//
// HTTP adapter: negotiated resource handlers.
//
// Context
// -------
// Resource() turns a composed chain plus a loader into a plain
// http.HandlerFunc: negotiate against the chain's advertised types, build
// the rendering context, let the loader stage data and links, run the
// chain, finalize, write.  This is the seam between the host framework
// (chi, plain net/http, anything) and the pipeline, and the only place
// that picks concrete HTTP status codes for the pipeline's error
// taxonomy: unmatched format → 406, missing data → 404, encoder failure
// → 500.
//
// Instrumentation
// ---------------
// • renders_total{media_type} on every successful write.
// • not_acceptable_total on negotiation misses.
// • render_errors_total + an ERROR log on encoder failures.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package respond

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/yanizio/halyard/internal/media"
	"github.com/yanizio/halyard/internal/metrics"
	"github.com/yanizio/halyard/internal/middleware"
	"github.com/yanizio/halyard/internal/pipeline"
	"github.com/yanizio/halyard/internal/resource"
)

// ErrNotFound is returned by loaders when the addressed record does not
// exist; the adapter maps it to 404.
var ErrNotFound = errors.New("respond: record not found")

// LoadFunc stages the request's data and discovered links on the context.
type LoadFunc func(r *http.Request, rc *pipeline.Context) error

// Resource builds the negotiated handler for one resource.
func Resource(chain *pipeline.Chain, res *resource.Resource, load LoadFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mt, ok := media.Negotiate(r.Header.Get("Accept"), chain.MediaTypes())
		if !ok {
			metrics.NotAcceptableTotal.Inc()
			http.Error(w, http.StatusText(http.StatusNotAcceptable), http.StatusNotAcceptable)
			return
		}

		rc := pipeline.NewContext(mt, res)
		rc.RequestURI = r.URL.RequestURI()

		if load != nil {
			if err := load(r, rc); err != nil {
				if errors.Is(err, ErrNotFound) {
					http.NotFound(w, r)
					return
				}
				zap.S().Errorw("resource load failed",
					"resource", resourceName(res), "path", r.URL.Path,
					"request_id", middleware.GetRequestID(r.Context()), "err", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		result, err := chain.Serve(rc)
		if err == nil {
			var (
				ct   string
				body []byte
			)
			ct, body, err = Finalize(rc, result)
			if err == nil {
				observe(ct)
				w.Header().Set("Content-Type", ct)
				w.Header().Set("Content-Length", strconv.Itoa(len(body)))
				_, _ = w.Write(body)
				return
			}
			if errors.Is(err, ErrNotAcceptable) {
				metrics.NotAcceptableTotal.Inc()
				http.Error(w, http.StatusText(http.StatusNotAcceptable), http.StatusNotAcceptable)
				return
			}
		}

		metrics.RenderErrorsTotal.Inc()
		zap.S().Errorw("render failed",
			"resource", resourceName(res), "media_type", mt,
			"request_id", middleware.GetRequestID(r.Context()), "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// observe bumps the per-format counters.
func observe(contentType string) {
	metrics.RendersTotal.WithLabelValues(contentType).Inc()
	switch contentType {
	case media.HAL:
		metrics.HypermediaTotal.WithLabelValues("hal").Inc()
	case media.CJ:
		metrics.HypermediaTotal.WithLabelValues("collection+json").Inc()
	}
}

func resourceName(res *resource.Resource) string {
	if res == nil {
		return ""
	}
	return res.Name
}
