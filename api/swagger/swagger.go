package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EduGest API",
        "description": "School administration API: schools, branches, teachers, students, classes and weekly schedules.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Bearer <token>"
        }
    },
    "tags": [
        {"name": "Authentication", "description": "Administrator registration and login"},
        {"name": "Resources", "description": "Schools, branches, teachers, students, classes and schedules"},
        {"name": "Operations", "description": "Health, readiness and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Operations"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "tags": ["Operations"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Operations"],
                "summary": "Prometheus metrics",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register administrator",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Created", "schema": {"$ref": "#/definitions/OKBody"}},
                    "400": {"description": "Missing fields or email in use", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CredentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenBody"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current identity",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/UserInfo"}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/{resource}": {
            "get": {
                "tags": ["Resources"],
                "summary": "List rows, newest first",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/resource"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "401": {"description": "Missing or invalid token", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Resources"],
                "summary": "Create row",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Created row", "schema": {"type": "object"}},
                    "400": {"description": "Invalid payload, dangling reference or storage failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/{resource}/export": {
            "get": {
                "tags": ["Resources"],
                "summary": "Export the listing as CSV or PDF",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Attachment"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/api/{resource}/{id}": {
            "put": {
                "tags": ["Resources"],
                "summary": "Replace row",
                "description": "Every column is replaced; omitted fields become null. Responds null when the id does not exist.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Updated row or null", "schema": {"type": "object"}},
                    "400": {"description": "Invalid payload, dangling reference or storage failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Resources"],
                "summary": "Delete row",
                "description": "Dependants are cascaded or nullified by the database.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"$ref": "#/parameters/resource"},
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/OKBody"}},
                    "400": {"description": "Storage failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "parameters": {
        "resource": {
            "name": "resource",
            "in": "path",
            "required": true,
            "type": "string",
            "enum": ["schools", "branches", "teachers", "students", "classes", "schedules"]
        }
    },
    "definitions": {
        "CredentialsRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "UserInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "TokenBody": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "OKBody": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "School": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "Branch": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "school_id": {"type": "integer"},
                "name": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "Teacher": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "school_id": {"type": "integer"},
                "branch_id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "school_id": {"type": "integer"},
                "branch_id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "Class": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "school_id": {"type": "integer"},
                "branch_id": {"type": "integer"},
                "name": {"type": "string"},
                "teacher_id": {"type": "integer"}
            }
        },
        "Schedule": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "class_id": {"type": "integer"},
                "weekday": {"type": "integer", "minimum": 0, "maximum": 6},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
