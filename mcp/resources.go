package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jetspec/dossier"
	"github.com/jetspec/dossier/render"
)

// RegisterDefaultResources adds the dossier resources to the server.
// Resources use the dossier:// scheme; parameters go in the query string.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "dossier://pages",
		Name:        "Dossier Pages",
		Description: "Page count and plain text of every page of a generated dossier: dossier://pages?path=/path/to/dossier.pdf",
		MIMEType:    "application/json",
		Handler:     handlePagesResource,
	})

	s.AddResource(Resource{
		URI:         "dossier://sections",
		Name:        "Dossier Sections",
		Description: "The fixed order in which dossier sections are laid out",
		MIMEType:    "application/json",
		Handler:     handleSectionsResource,
	})
}

// resourceKey returns uri without its query string.
func resourceKey(uri string) string {
	key, _, _ := strings.Cut(uri, "?")
	return key
}

func pathParam(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parsing URI: %w", err)
	}
	path := u.Query().Get("path")
	if path == "" {
		return "", fmt.Errorf("missing 'path' parameter in URI")
	}
	return path, nil
}

func jsonContent(uri string, v any) ([]ResourceContent, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []ResourceContent{{URI: uri, MIMEType: "application/json", Text: string(data)}}, nil
}

func handlePagesResource(_ context.Context, uri string) ([]ResourceContent, error) {
	path, err := pathParam(uri)
	if err != nil {
		return nil, err
	}
	rep, err := render.InspectFile(path)
	if err != nil {
		return nil, err
	}
	return jsonContent(uri, rep)
}

func handleSectionsResource(_ context.Context, uri string) ([]ResourceContent, error) {
	return jsonContent(uri, map[string]any{
		"full":  dossier.SectionOrder(dossier.Full),
		"clean": dossier.SectionOrder(dossier.Clean),
	})
}
