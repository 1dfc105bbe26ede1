package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/jebreimo/HexPic/pkg/buildinfo"
	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/hexdump"
	hexio "github.com/jebreimo/HexPic/pkg/io"
	"github.com/jebreimo/HexPic/pkg/pipeline"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

type geometryResponse struct {
	Geometry hexdump.Geometry `json:"geometry"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
}

func (s *Server) handleGeometry(w http.ResponseWriter, r *http.Request) {
	opts, err := optionsFromQuery(s.defaults, r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if opts.Address < 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "address must not be negative"))
		return
	}
	g, width, height, err := s.runner.Geometry(r.Context(), opts, opts.Count, opts.Address)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, geometryResponse{Geometry: g, Width: width, Height: height})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := optionsFromQuery(s.defaults, q)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	in, err := s.readInput(w, r, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if q.Has("count") {
		in.Count = opts.Count
	}

	result, err := s.runner.RenderInput(r.Context(), in, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "image/png")
	h.Set("Content-Length", strconv.Itoa(len(result.PNG)))
	h.Set("X-Hexpic-Rows", strconv.Itoa(result.Geometry.Rows))
	h.Set("X-Hexpic-Address", strconv.FormatInt(result.Address, 16))
	if result.CacheInfo.RenderHit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PNG)
}

// readInput builds the pipeline input from the request body. JSON bodies
// carry their own address; raw bodies start at the address query parameter.
func (s *Server) readInput(w http.ResponseWriter, r *http.Request, opts pipeline.Options) (pipeline.Input, error) {
	body := http.MaxBytesReader(w, r.Body, s.maxBody)
	defer body.Close()

	if isJSON(r.Header.Get("Content-Type")) {
		doc, err := hexio.ReadJSON(body)
		if err != nil {
			return pipeline.Input{}, bodyError(err)
		}
		return pipeline.ValuesInput("request body", doc.Address, doc.Data), nil
	}

	if opts.Address < 0 {
		return pipeline.Input{}, errors.New(errors.ErrCodeInvalidInput, "address must not be negative for request bodies")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return pipeline.Input{}, bodyError(err)
	}
	return pipeline.BytesInput("request body", opts.Address, data), nil
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "request body exceeds %d bytes", tooLarge.Limit)
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
