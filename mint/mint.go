// Package mint exposes the ULID generator over HTTP.
package mint

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aatuh/ulid-toolkit/httpx"
	metricsmw "github.com/aatuh/ulid-toolkit/middleware/metrics"
	"github.com/aatuh/ulid-toolkit/ports"
	"github.com/aatuh/ulid-toolkit/specs"
)

// Handler serves identifier minting requests.
type Handler struct {
	gen      ports.IDGen
	rec      *metricsmw.Recorder
	maxCount int
}

// NewHandler creates a minting handler. maxCount caps the batch size of a
// single request; rec may be nil to disable metrics.
func NewHandler(gen ports.IDGen, rec *metricsmw.Recorder, maxCount int) *Handler {
	if maxCount <= 0 {
		maxCount = 1000
	}
	return &Handler{gen: gen, rec: rec, maxCount: maxCount}
}

// RegisterRoutes mounts the minting endpoint on the router.
func (h *Handler) RegisterRoutes(r ports.HTTPRouter) {
	r.Get(specs.ULID, h.MintHandler)
}

// MintHandler returns one ULID per line. The optional count query parameter
// requests a batch, capped at the configured maximum.
func (h *Handler) MintHandler(w http.ResponseWriter, r *http.Request) {
	count := 1
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpx.WriteSimpleProblem(w, http.StatusBadRequest,
				"invalid count", "count must be an integer")
			return
		}
		if n < 1 || n > h.maxCount {
			httpx.WriteSimpleProblem(w, http.StatusBadRequest,
				"invalid count", "count must be between 1 and "+strconv.Itoa(h.maxCount))
			return
		}
		count = n
	}

	var sb strings.Builder
	sb.Grow(count * 27)
	for i := 0; i < count; i++ {
		sb.WriteString(h.gen.New())
		sb.WriteByte('\n')
	}
	h.rec.AddMinted(count)
	httpx.WriteText(w, http.StatusOK, sb.String())
}
