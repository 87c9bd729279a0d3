package api

import (
	"encoding/json"
	"net/http"

	oerrors "github.com/ontouml/ontokit/pkg/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    oerrors.Code `json:"code"`
	Message string       `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeRaw(w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := oerrors.GetCode(err)
	if code == "" {
		code = oerrors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "request_id", requestID(r.Context()), "error", err)
	} else {
		s.logger.Debug("request rejected", "method", r.Method, "path", r.URL.Path, "code", code, "error", err)
	}
	writeJSON(w, status, ErrorResponse{Code: code, Message: oerrors.UserMessage(err)})
}

func statusFor(code oerrors.Code) int {
	switch code {
	case oerrors.ErrCodeInvalidInput, oerrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case oerrors.ErrCodeMalformedTaggedValue, oerrors.ErrCodeBadRequest:
		return http.StatusUnprocessableEntity
	case oerrors.ErrCodeUnknownElement, oerrors.ErrCodeNotFound, oerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case oerrors.ErrCodeServerNotFound, oerrors.ErrCodeServerError, oerrors.ErrCodeUnknownStatus, oerrors.ErrCodeNetwork:
		return http.StatusBadGateway
	case oerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case oerrors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
