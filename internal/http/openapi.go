package http

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/schedule-api/internal/logging"
)

const (
	apiTitle   = "Schedule API"
	apiVersion = "v1"

	schemaGame        = "Game"
	schemaTeam        = "Team"
	schemaScoreUpdate = "ScoreUpdate"
	schemaError       = "Error"
	schemaProblem     = "ProblemDetails"
)

// Document is the subset of OpenAPI 3 the API describes itself with.
type Document struct {
	OpenAPI    string               `yaml:"openapi"`
	Info       Info                 `yaml:"info"`
	Paths      map[string]PathItem  `yaml:"paths"`
	Components map[string]SchemaSet `yaml:"components"`
}

type Info struct {
	Title   string `yaml:"title"`
	Version string `yaml:"version"`
}

// PathItem maps a lower-case HTTP method to its operation.
type PathItem map[string]Operation

type Operation struct {
	OperationID string              `yaml:"operationId"`
	Summary     string              `yaml:"summary"`
	Tags        []string            `yaml:"tags,omitempty"`
	Parameters  []Parameter         `yaml:"parameters,omitempty"`
	RequestBody *Body               `yaml:"requestBody,omitempty"`
	Responses   map[string]Response `yaml:"responses"`
}

type Parameter struct {
	Name     string `yaml:"name"`
	In       string `yaml:"in"`
	Required bool   `yaml:"required"`
	Schema   Schema `yaml:"schema"`
}

type Body struct {
	Required bool                 `yaml:"required,omitempty"`
	Content  map[string]MediaType `yaml:"content"`
}

type MediaType struct {
	Schema Schema `yaml:"schema"`
}

type Response struct {
	Description string               `yaml:"description"`
	Content     map[string]MediaType `yaml:"content,omitempty"`
}

type Schema struct {
	Ref        string            `yaml:"$ref,omitempty"`
	Type       string            `yaml:"type,omitempty"`
	Format     string            `yaml:"format,omitempty"`
	Items      *Schema           `yaml:"items,omitempty"`
	Properties map[string]Schema `yaml:"properties,omitempty"`
}

// SchemaSet holds named component schemas.
type SchemaSet map[string]Schema

// OpenAPIDocument describes routes as an OpenAPI 3 document.
func OpenAPIDocument(routes []Route) Document {
	doc := Document{
		OpenAPI:    "3.0.3",
		Info:       Info{Title: apiTitle, Version: apiVersion},
		Paths:      make(map[string]PathItem),
		Components: map[string]SchemaSet{"schemas": componentSchemas()},
	}
	for _, route := range routes {
		item, ok := doc.Paths[route.Pattern]
		if !ok {
			item = PathItem{}
			doc.Paths[route.Pattern] = item
		}
		item[strings.ToLower(route.Method)] = operationFor(route)
	}
	return doc
}

// RenderOpenAPI renders the document for routes as YAML.
func RenderOpenAPI(routes []Route) ([]byte, error) {
	return yaml.Marshal(OpenAPIDocument(routes))
}

func operationFor(route Route) Operation {
	op := Operation{
		OperationID: route.Name,
		Summary:     route.Summary,
		Responses:   make(map[string]Response, len(route.Responses)),
	}
	if route.Tag != "" {
		op.Tags = []string{route.Tag}
	}
	if strings.Contains(route.Pattern, "{id}") {
		op.Parameters = []Parameter{{
			Name: "id", In: "path", Required: true,
			Schema: Schema{Type: "integer", Format: "int32"},
		}}
	}
	if route.Body != "" {
		op.RequestBody = &Body{
			Required: true,
			Content:  jsonContent(ref(route.Body)),
		}
	}
	for _, status := range route.Responses {
		op.Responses[strconv.Itoa(status)] = responseFor(route, status)
	}
	return op
}

func responseFor(route Route, status int) Response {
	resp := Response{Description: nethttp.StatusText(status)}
	switch {
	case status == nethttp.StatusNoContent:
	case status >= nethttp.StatusBadRequest:
		if route.Body == schemaScoreUpdate && status == nethttp.StatusBadRequest {
			resp.Content = map[string]MediaType{"application/problem+json": {Schema: ref(schemaProblem)}}
			return resp
		}
		resp.Content = jsonContent(ref(schemaError))
	case !strings.Contains(route.Pattern, "{id}") && route.Method == nethttp.MethodGet:
		item := ref(entitySchema(route.Tag))
		resp.Content = jsonContent(Schema{Type: "array", Items: &item})
	default:
		resp.Content = jsonContent(ref(entitySchema(route.Tag)))
	}
	return resp
}

func entitySchema(tag string) string {
	if tag == tagTeams {
		return schemaTeam
	}
	return schemaGame
}

func ref(name string) Schema {
	return Schema{Ref: "#/components/schemas/" + name}
}

func jsonContent(s Schema) map[string]MediaType {
	return map[string]MediaType{"application/json": {Schema: s}}
}

func componentSchemas() SchemaSet {
	integer := Schema{Type: "integer", Format: "int32"}
	str := Schema{Type: "string"}
	boolean := Schema{Type: "boolean"}
	return SchemaSet{
		schemaGame: {Type: "object", Properties: map[string]Schema{
			"id":            integer,
			"gameDateTime":  {Type: "string", Format: "date-time"},
			"homeTeamId":    integer,
			"awayTeamId":    integer,
			"homeTeamScore": integer,
			"awayTeamScore": integer,
			"isFinal":       boolean,
		}},
		schemaTeam: {Type: "object", Properties: map[string]Schema{
			"id":           integer,
			"teamName":     str,
			"abbreviation": str,
		}},
		schemaScoreUpdate: {Type: "object", Properties: map[string]Schema{
			"homeTeamScore": integer,
			"awayTeamScore": integer,
			"isFinal":       boolean,
		}},
		schemaError: {Type: "object", Properties: map[string]Schema{
			"error":     str,
			"requestId": str,
		}},
		schemaProblem: {Type: "object", Properties: map[string]Schema{
			"type":      str,
			"title":     str,
			"status":    integer,
			"detail":    str,
			"requestId": str,
		}},
	}
}

func openAPIHandler(routes []Route) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		body, err := RenderOpenAPI(routes)
		if err != nil {
			logging.Error(logging.FromContext(r.Context(), nil), "failed to render openapi document", err)
			nethttp.Error(w, "openapi unavailable", nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		if _, err := w.Write(body); err != nil {
			logging.Warn(logging.FromContext(r.Context(), nil), "failed to write openapi document", slog.Any("err", err))
		}
	}
}
