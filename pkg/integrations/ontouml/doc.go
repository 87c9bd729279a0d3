// Package ontouml is a client for the OntoUML server.
//
// The server verifies models and transforms them to gUFO (OWL), relational
// schemas and OBDA mappings. Every operation posts a schema document
// produced by [schema.Serializer]:
//
//	POST /v1/verify            the bare document
//	POST /v1/transform/gufo    {"options": GUFOOptions, "model": document}
//	POST /v1/transform/db      {"options": DBOptions, "model": document}
//	POST /v1/transform/obda    {"options": OBDAOptions, "model": document}
//
// # Failures
//
// Responses are classified into coded errors from pkg/errors, each carrying
// a message that can be shown to the user as is ([errors.UserMessage]):
//
//   - 400: [errors.ErrCodeBadRequest], never retried
//   - 404, a 200 HTML page, or a transport failure: [errors.ErrCodeServerNotFound]
//   - 500: [errors.ErrCodeServerError]
//   - any other status: [errors.ErrCodeUnknownStatus], never retried
//
// Not-found and server errors may be retried. The client asks a
// [httputil.ConfirmFunc] (set with [Client.WithConfirm]) and resends the
// identical request while it answers yes.
//
// Transform responses are deterministic for a given server, endpoint and
// request body, so they are cached when the client has a cache backend.
// Verification results are never cached.
//
// [schema.Serializer]: github.com/ontouml/ontokit/pkg/schema.Serializer
// [errors.UserMessage]: github.com/ontouml/ontokit/pkg/errors.UserMessage
// [errors.ErrCodeBadRequest]: github.com/ontouml/ontokit/pkg/errors.ErrCodeBadRequest
// [errors.ErrCodeServerNotFound]: github.com/ontouml/ontokit/pkg/errors.ErrCodeServerNotFound
// [errors.ErrCodeServerError]: github.com/ontouml/ontokit/pkg/errors.ErrCodeServerError
// [errors.ErrCodeUnknownStatus]: github.com/ontouml/ontokit/pkg/errors.ErrCodeUnknownStatus
// [httputil.ConfirmFunc]: github.com/ontouml/ontokit/pkg/httputil.ConfirmFunc
package ontouml
