// Package api holds the OpenAPI document served at /swagger/.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Authenticate and obtain an access token",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/capsdk.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "access_token, token_type, email, role", "schema": {"$ref": "#/definitions/capsdk.TokenResponse"}},
                    "401": {"description": "Incorrect email or password", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Get current user",
                "responses": {
                    "200": {"description": "email, role", "schema": {"$ref": "#/definitions/capsdk.UserInfoResponse"}},
                    "401": {"description": "Invalid or missing access token", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new user (Admin only)",
                "parameters": [
                    {
                        "description": "New user",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/capsdk.CreateUserRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Confirmation message", "schema": {"$ref": "#/definitions/capsdk.MessageResponse"}},
                    "400": {"description": "Invalid body, unknown role, or duplicate email", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}},
                    "403": {"description": "Caller is not an Admin", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}}
                }
            }
        },
        "/capabilities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Capabilities"],
                "summary": "List capabilities",
                "responses": {
                    "200": {
                        "description": "Capability name to entry",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"$ref": "#/definitions/capsdk.Capability"}
                        }
                    }
                }
            }
        },
        "/capabilities/{name}/register": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Capabilities"],
                "summary": "Register a consultant for a capability",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true, "description": "Capability name"},
                    {"type": "string", "name": "email", "in": "query", "required": true, "description": "Consultant email"}
                ],
                "responses": {
                    "200": {"description": "Confirmation message", "schema": {"$ref": "#/definitions/capsdk.MessageResponse"}},
                    "400": {"description": "Missing email or consultant already registered", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}},
                    "403": {"description": "Consultant registering someone else", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}},
                    "404": {"description": "Capability not found", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}}
                }
            }
        },
        "/capabilities/{name}/unregister": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Capabilities"],
                "summary": "Unregister a consultant from a capability",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true, "description": "Capability name"},
                    {"type": "string", "name": "email", "in": "query", "required": true, "description": "Consultant email"}
                ],
                "responses": {
                    "200": {"description": "Confirmation message", "schema": {"$ref": "#/definitions/capsdk.MessageResponse"}},
                    "400": {"description": "Missing email or consultant not registered", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}},
                    "403": {"description": "Caller is not an Admin or Approver", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}},
                    "404": {"description": "Capability not found", "schema": {"$ref": "#/definitions/capsdk.ErrorResponse"}}
                }
            }
        },
        "/livez": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/capsdk.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "responses": {
                    "200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/capsdk.HealthResponse"}},
                    "503": {"description": "service not ready", "schema": {"$ref": "#/definitions/capsdk.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "capsdk.Capability": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "practice_area": {"type": "string"},
                "skill_levels": {"type": "array", "items": {"type": "string"}},
                "certifications": {"type": "array", "items": {"type": "string"}},
                "industry_verticals": {"type": "array", "items": {"type": "string"}},
                "capacity": {"type": "integer"},
                "consultants": {"type": "array", "items": {"type": "string"}}
            }
        },
        "capsdk.CreateUserRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["Admin", "Approver", "Consultant"]}
            }
        },
        "capsdk.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "capsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "capsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "capsdk.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "capsdk.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "capsdk.UserInfoResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT access token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Capability Catalog Service API",
	Description:      "API for managing consulting capabilities and consultant expertise.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
