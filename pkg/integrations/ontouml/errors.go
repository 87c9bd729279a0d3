package ontouml

import (
	"errors"
	"net/http"

	oerrors "github.com/ontouml/ontokit/pkg/errors"
	"github.com/ontouml/ontokit/pkg/httputil"
	"github.com/ontouml/ontokit/pkg/integrations"
)

// Messages shown to the user for each failure category.
const (
	MsgNotFound        = "Unable to reach the server."
	MsgInternal        = "Internal server error."
	MsgBadRequest      = "There was a internal plugin error and the verification could not be completed."
	MsgTransformFailed = "Unable to transform the model due to an unexpected error. Please check the model for any syntactical errors."
	MsgUnknownResponse = "Error receiving model verification response."
	MsgUnknownRequest  = "Error sending model verification to the server."
)

// classify maps a failed post to a coded error. Not-found and server errors
// are wrapped as retryable. badRequest is the message used for a 400.
func classify(err error, badRequest string) error {
	if errors.Is(err, integrations.ErrNetwork) {
		return httputil.Retryable(oerrors.Wrap(oerrors.ErrCodeServerNotFound, err, MsgNotFound))
	}

	var se *integrations.StatusError
	if !errors.As(err, &se) {
		return oerrors.Wrap(oerrors.ErrCodeInternal, err, MsgUnknownRequest)
	}

	switch {
	case se.StatusCode == http.StatusOK && se.HTML():
		return httputil.Retryable(oerrors.Wrap(oerrors.ErrCodeServerNotFound, err, MsgNotFound))
	case se.StatusCode == http.StatusBadRequest:
		return oerrors.Wrap(oerrors.ErrCodeBadRequest, err, badRequest)
	case se.StatusCode == http.StatusNotFound:
		return httputil.Retryable(oerrors.Wrap(oerrors.ErrCodeServerNotFound, err, MsgNotFound))
	case se.StatusCode == http.StatusInternalServerError:
		return httputil.Retryable(oerrors.Wrap(oerrors.ErrCodeServerError, err, MsgInternal))
	default:
		return oerrors.Wrap(oerrors.ErrCodeUnknownStatus, err, MsgUnknownResponse)
	}
}
