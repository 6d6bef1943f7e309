package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	quaycheck "github.com/portmatic/quaycheck"
	"github.com/portmatic/quaycheck/match"
	"github.com/portmatic/quaycheck/observer"
)

// tableExtractor is what the handler needs from the extract package.
type tableExtractor interface {
	Extract(content []byte) ([]quaycheck.Table, error)
}

// server holds the handler dependencies for the reconciliation endpoint.
type server struct {
	extractor tableExtractor
	observed  *observer.ObservedExtractor // nil when the observer is disabled
	inst      *observer.Instruments       // nil when the observer is disabled
	maxUpload int64
	logger    *slog.Logger
}

func newServer(extractor tableExtractor, inst *observer.Instruments, maxUpload int64, logger *slog.Logger) *server {
	s := &server{
		extractor: extractor,
		inst:      inst,
		maxUpload: maxUpload,
		logger:    logger,
	}
	if inst != nil {
		s.observed = observer.WrapExtractor(extractor, inst)
	}
	return s
}

// routes wires the server's endpoints behind the CORS middleware.
func routes(s *server) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/process-pdfs", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		s.handleProcess(w, r)
	})
	mux.HandleFunc("/health", handleHealth)
	return withCORS(mux)
}

// handleProcess implements POST /process-pdfs: two PDF uploads plus a
// sections mapping in, per-section match counts out. The two documents
// are processed sequentially; any extraction or matching fault aborts the
// whole request.
func (s *server) handleProcess(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := quaycheck.NewID()
	logger := s.logger.With("request_id", requestID)
	w.Header().Set("X-Request-ID", requestID)

	status := "ok"
	defer func() {
		if s.inst != nil {
			s.inst.Requests.Add(r.Context(), 1, metric.WithAttributes(
				observer.AttrStatus.String(status),
			))
			s.inst.RequestDuration.Record(r.Context(), float64(time.Since(start).Milliseconds()), metric.WithAttributes(
				attribute.String("status", status),
			))
		}
	}()

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil {
		status = "error"
		logger.Warn("invalid multipart request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}
	defer r.MultipartForm.RemoveAll()

	sectionsJSON := r.FormValue("sections")
	if sectionsJSON == "" {
		status = "error"
		writeError(w, http.StatusBadRequest, "sections is required")
		return
	}
	var sections map[string]quaycheck.Section
	if err := json.Unmarshal([]byte(sectionsJSON), &sections); err != nil {
		status = "error"
		writeError(w, http.StatusBadRequest, "invalid sections JSON: "+err.Error())
		return
	}

	pdf1, err := readFilePart(r, "pdf1")
	if err != nil {
		status = "error"
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pdf2, err := readFilePart(r, "pdf2")
	if err != nil {
		status = "error"
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tables1, err := s.extractDocument(r.Context(), "pdf1", pdf1)
	if err != nil {
		status = "error"
		logger.Error("extraction failed", "document", "pdf1", "error", err)
		writeError(w, http.StatusInternalServerError, "error processing PDF: "+err.Error())
		return
	}
	tables2, err := s.extractDocument(r.Context(), "pdf2", pdf2)
	if err != nil {
		status = "error"
		logger.Error("extraction failed", "document", "pdf2", "error", err)
		writeError(w, http.StatusInternalServerError, "error processing PDF: "+err.Error())
		return
	}

	results, err := match.Sections(tables1, tables2, sections)
	if err != nil {
		status = "error"
		var missing *quaycheck.ErrMissingColumn
		if errors.As(err, &missing) {
			logger.Error("matching failed: required column absent", "column", missing.Column)
		} else {
			logger.Error("matching failed", "error", err)
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if s.inst != nil {
		s.inst.SectionsMatched.Add(r.Context(), int64(len(sections)))
	}
	logger.Info("reconciliation complete",
		"tables_pdf1", len(tables1),
		"tables_pdf2", len(tables2),
		"sections", len(sections),
		"duration", time.Since(start),
	)
	writeJSON(w, http.StatusOK, results)
}

func (s *server) extractDocument(ctx context.Context, document string, content []byte) ([]quaycheck.Table, error) {
	if s.observed != nil {
		return s.observed.Extract(ctx, document, content)
	}
	return s.extractor.Extract(content)
}

// readFilePart reads the named multipart file fully into memory.
func readFilePart(r *http.Request, name string) ([]byte, error) {
	file, _, err := r.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, fmt.Errorf("%s is required", name)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// withCORS allows browser upload forms from any origin, including the
// OPTIONS preflight.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "marshal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
