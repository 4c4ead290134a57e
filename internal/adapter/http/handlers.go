package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/couchcryptid/plant-survivability-service/internal/dataset"
	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/couchcryptid/plant-survivability-service/internal/export"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// errBadParam marks a query parameter that could not be parsed.
var errBadParam = errors.New("invalid query parameter")

type plantView struct {
	ID string `json:"id"`
	domain.Plant
}

func (s *Server) handlePlants(w http.ResponseWriter, _ *http.Request) {
	plants := s.svc.Plants()
	out := make([]plantView, len(plants))
	for i, p := range plants {
		out[i] = plantView{ID: p.ID(), Plant: p}
	}
	sharedobs.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	years, err := s.svc.Years()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, years)
}

func (s *Server) handleGeometries(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, s.svc.Geometries())
}

func (s *Server) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, s.svc.Defaults())
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	req := s.svc.Defaults()
	q := r.URL.Query()
	if v := q.Get("plant"); v != "" {
		req.PlantID = v
	}
	var err error
	if req.Year, err = intParam(q.Get("year"), "year", req.Year); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.TemperatureWeight, err = intParam(q.Get("temp_weight"), "temp_weight", req.TemperatureWeight); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.svc.Map(r.Context(), req, q.Get("geometry"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, res)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := intParam(q.Get("year"), "year", s.svc.Defaults().Year)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	format := q.Get("format")
	if format == "" {
		format = export.FormatCSV
	}
	if format != export.FormatCSV && format != export.FormatXLSX {
		s.writeError(w, r, fmt.Errorf("%w: format %q", errBadParam, format))
		return
	}

	rows, err := s.svc.Export(year)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Render fully before writing headers so a failure still yields a JSON error.
	var buf bytes.Buffer
	if err := export.Write(&buf, format, year, rows); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", export.ContentType(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="climate_%d.%s"`, year, format))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}

func (s *Server) handleLegend(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, s.svc.Legend())
}

func (s *Server) handleLegendPNG(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteLegendPNG(&buf, s.svc.Mapper(), export.LegendWidth, export.LegendHeight); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck // client went away
}

func (s *Server) handleMarkers(w http.ResponseWriter, r *http.Request) {
	plant := r.URL.Query().Get("plant")
	if plant == "" {
		s.writeError(w, r, fmt.Errorf("%w: plant is required", errBadParam))
		return
	}
	set, err := s.svc.Markers(r.Context(), plant)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, set)
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	year, err := intParam(r.URL.Query().Get("year"), "year", s.svc.Defaults().Year)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	report, err := s.svc.Check(year)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sharedobs.WriteJSON(w, http.StatusOK, report)
}

func intParam(v, name string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", errBadParam, name, v)
	}
	return n, nil
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadParam),
		errors.Is(err, domain.ErrInvalidWeightVector),
		errors.Is(err, domain.ErrYearOutOfBounds),
		errors.Is(err, domain.ErrInvalidRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownPlant), errors.Is(err, dataset.ErrUnknownLayer):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDegenerateRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "error", err)
		sharedobs.WriteJSON(w, status, map[string]string{"error": "internal error"})
		return
	}
	sharedobs.WriteJSON(w, status, map[string]string{"error": err.Error()})
}
