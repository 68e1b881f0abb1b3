package handler

import (
	"net/http"

	"github.com/tripledger/tripledger/spec"
)

// OpenAPISpec handles GET /openapi.yaml, serving the embedded API spec.
func (s *Server) OpenAPISpec(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	//nolint:errcheck — nothing useful to do with a failed response write.
	w.Write(spec.OpenAPI)
}
