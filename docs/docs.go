// Package docs holds the swagger document served at /swagger/doc.json.
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
        "/": {
            "get": {
                "description": "Returns a fixed message while the process is serving",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness message",
                "responses": {
                    "200": {
                        "description": "Calendar Agent is live.",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/add-task": {
            "post": {
                "description": "Validates the task, localizes day/start_time/end_time in the configured timezone and inserts one Google Calendar event. Not idempotent.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Task"],
                "summary": "Create a calendar event from a task",
                "parameters": [
                    {
                        "description": "Task",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.addTaskReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.addTaskResp"}},
                    "422": {"description": "Validation or parse error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "502": {"description": "Calendar API failure", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object"}}}
            }
        },
        "/ready": {
            "get": {
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object"}}}
            }
        },
        "/live": {
            "get": {
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object"}}}
            }
        }
    },
    "definitions": {
        "errors.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "http.addTaskReq": {
            "type": "object",
            "required": ["day", "end_time", "start_time", "summary"],
            "properties": {
                "day": {"type": "string", "example": "2025-08-08"},
                "description": {"type": "string"},
                "end_time": {"type": "string", "example": "16:00"},
                "start_time": {"type": "string", "example": "14:00"},
                "summary": {"type": "string", "example": "Standup"}
            }
        },
        "http.addTaskResp": {
            "type": "object",
            "properties": {
                "eventId": {"type": "string"},
                "status": {"type": "string", "example": "created"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/errors.FieldError"}},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Calendar Agent API",
	Description:      "Receives tasks over HTTP and creates matching Google Calendar events.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
