// Package docs holds the swagger template registered with swaggo and
// served through the /swagger UI route.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/profile": {
            "get": {
                "tags": ["profile"],
                "summary": "Get profile",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "profile document"},
                    "404": {"description": "profile not found"}
                }
            },
            "put": {
                "tags": ["profile"],
                "summary": "Update profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "profile", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "success envelope"},
                    "400": {"description": "validation failed"},
                    "500": {"description": "store failure"}
                }
            }
        },
        "/api/projects": {
            "get": {
                "tags": ["projects"],
                "summary": "List projects",
                "produces": ["application/json"],
                "parameters": [{"name": "project_type", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "projects ascending by display order"}}
            },
            "post": {
                "tags": ["projects"],
                "summary": "Create project",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "project", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "success envelope with project_id"},
                    "400": {"description": "validation failed"},
                    "500": {"description": "store failure"}
                }
            }
        },
        "/api/projects/{id}": {
            "put": {
                "tags": ["projects"],
                "summary": "Update project",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "project", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "success envelope"},
                    "404": {"description": "project not found"}
                }
            },
            "delete": {
                "tags": ["projects"],
                "summary": "Delete project",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "success envelope"},
                    "404": {"description": "project not found"}
                }
            }
        },
        "/api/contact": {
            "get": {
                "tags": ["contact"],
                "summary": "List contact messages",
                "produces": ["application/json"],
                "responses": {"200": {"description": "messages, newest first"}}
            },
            "post": {
                "tags": ["contact"],
                "summary": "Submit contact form",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "message", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "success envelope with message_id"},
                    "400": {"description": "validation failed"},
                    "500": {"description": "store failure"}
                }
            }
        },
        "/api/contact/{id}/read": {
            "put": {
                "tags": ["contact"],
                "summary": "Mark message as read",
                "produces": ["application/json"],
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "success envelope"},
                    "404": {"description": "message not found"}
                }
            }
        },
        "/api/analytics/visit": {
            "post": {
                "tags": ["analytics"],
                "summary": "Log a page visit",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "event", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "success envelope"},
                    "500": {"description": "store failure"}
                }
            }
        },
        "/api/analytics/download": {
            "post": {
                "tags": ["analytics"],
                "summary": "Log a resume download",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "success envelope"},
                    "500": {"description": "store failure"}
                }
            }
        },
        "/api/analytics/stats": {
            "get": {
                "tags": ["analytics"],
                "summary": "Get analytics statistics",
                "produces": ["application/json"],
                "responses": {"200": {"description": "stats aggregate (zeroed on store failure)"}}
            }
        },
        "/api/resume/download": {
            "get": {
                "tags": ["resume"],
                "summary": "Download resume metadata",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "success envelope with filename and optional presigned url"},
                    "500": {"description": "store failure"}
                }
            }
        },
        "/api/visualizations": {
            "get": {
                "tags": ["visualizations"],
                "summary": "List active visualizations",
                "produces": ["application/json"],
                "responses": {"200": {"description": "active visualizations ascending by display order"}}
            },
            "post": {
                "tags": ["visualizations"],
                "summary": "Create visualization",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "visualization", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "success envelope with visualization_id"},
                    "500": {"description": "store failure"}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Dependency health check",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "healthy"},
                    "503": {"description": "store unreachable"}
                }
            }
        },
        "/healthz": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "alive"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portfolio API",
	Description:      "Personal portfolio content API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
