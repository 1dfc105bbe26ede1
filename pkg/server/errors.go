package server

import (
	"net/http"

	"github.com/jebreimo/HexPic/pkg/errors"
	"github.com/jebreimo/HexPic/pkg/hexdump"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Offset    *int   `json:"offset,omitempty"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeConfiguration, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeDataIntegrity, errors.ErrCodeFontUnavailable:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= 500 {
		s.logger.Error("request failed", "id", RequestIDFrom(r.Context()), "err", err)
	}

	detail := errorDetail{
		Code:      string(code),
		Message:   errors.UserMessage(err),
		RequestID: RequestIDFrom(r.Context()),
	}
	var pe *hexdump.PositionError
	if errors.As(err, &pe) {
		offset := pe.Offset
		detail.Offset = &offset
	}
	writeJSON(w, status, errorBody{Error: detail})
}
