// Package docs holds the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/news": {
            "get": {
                "description": "Searches the configured news provider and returns normalized articles.\nWithout the query parameter the default search phrase is used.",
                "produces": ["application/json"],
                "tags": ["news"],
                "summary": "Search news",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search term (must not be blank when present)",
                        "name": "query",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/entity.Article"}
                        }
                    },
                    "400": {"description": "Blank query", "schema": {"$ref": "#/definitions/news.ErrorResponse"}},
                    "401": {"description": "Provider rejected the API key", "schema": {"$ref": "#/definitions/news.ErrorResponse"}},
                    "403": {"description": "Provider denied access", "schema": {"$ref": "#/definitions/news.ErrorResponse"}},
                    "404": {"description": "No articles found", "schema": {"$ref": "#/definitions/news.MessageResponse"}},
                    "429": {"description": "Provider rate limit reached", "schema": {"$ref": "#/definitions/news.ErrorResponse"}},
                    "500": {"description": "Configuration, upstream or connection error", "schema": {"$ref": "#/definitions/news.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.HealthResponse"}}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "alive", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "entity.Article": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2026-10-18"},
                "link": {"type": "string", "example": "https://example.com/noticia"},
                "snippet": {"type": "string", "example": "Resumo da notícia..."},
                "source": {"type": "string", "example": "Folha"},
                "thumbnail": {"type": "string", "example": "https://example.com/img.jpg", "x-nullable": true},
                "title": {"type": "string", "example": "Eleições municipais: resultados"}
            }
        },
        "news.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Query parameter 'query' is required"}
            }
        },
        "news.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "No news found for this search, or the news provider returned no articles. Check the query or your plan limits."}
            }
        },
        "http.CheckStatus": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {}}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "string"},
                "version": {"type": "string"},
                "checks": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/http.CheckStatus"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "news-proxy API",
	Description:      "Proxy that searches an external news provider and returns normalized articles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
