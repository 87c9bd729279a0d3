// Package integrations provides the shared HTTP client used by ontokit's
// remote service clients.
//
// [Client] posts JSON bodies, reports every request to the registered
// [observability.HTTPHooks], optionally caches successful responses, and
// turns non-200 responses into [*StatusError] so that each service client
// can classify them. The OntoUML server client lives in the [ontouml]
// subpackage.
//
// [observability.HTTPHooks]: github.com/ontouml/ontokit/pkg/observability.HTTPHooks
// [ontouml]: github.com/ontouml/ontokit/pkg/integrations/ontouml
package integrations
