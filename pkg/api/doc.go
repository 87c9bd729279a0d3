// Package api serves ontokit over HTTP.
//
// Routes:
//
//	POST /v1/export          snapshot -> schema document (?root=, ?sets=true)
//	POST /v1/paint           snapshot -> repainted snapshot (?class=)
//	POST /v1/verify          snapshot -> OntoUML server verification (?root=)
//	GET  /v1/exports         archived exports, newest first (?limit=)
//	GET  /v1/exports/{id}    one archived export
//	GET  /healthz            liveness
//	GET  /metrics            Prometheus metrics, when configured
//
// Snapshots are read as JSON unless the request's Content-Type is YAML
// (application/yaml, application/x-yaml, text/yaml) or ?format=yaml is set;
// /v1/paint answers in the format it was sent. Every response carries an
// X-Request-ID header, taken from the request when present.
//
// Errors are JSON objects built from pkg/errors codes:
//
//	{"code": "UNKNOWN_ELEMENT", "message": "root element \"x\" not found"}
package api
