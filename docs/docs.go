// Package docs registers the OpenAPI document served at /swagger. It follows
// the layout swag emits; keep it in step with the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "PlaylistUploader API Support"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/channels": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Active channels",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/domain.Channel"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/api/v1/navigation": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Navigation state",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.NavigationState"}
                    }
                }
            }
        },
        "/api/v1/playlists": {
            "get": {
                "description": "Returns every stored playlist whose name contains \".m3u\", keyed by name.",
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "List saved playlists",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"$ref": "#/definitions/domain.Playlist"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/api/v1/playlists/{name}/activate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Activate saved playlist",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Playlist name, e.g. channels.m3u",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.Activation"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/api/v1/uploads": {
            "get": {
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload queue",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/domain.QueueSnapshot"}
                    }
                }
            },
            "post": {
                "description": "Uploads an M3U playlist, saves it under its file name and activates it for the session.\nOnly the first accepted file is activated.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload playlist",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Playlist file (.m3u, .m3u8)",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.UploadResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "415": {
                        "description": "Unsupported Media Type",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/api/v1/uploads/events": {
            "post": {
                "description": "Types: addedToQueue, allAddedToQueue, uploading, cancelled, removed, dragOver, dragOut, drop, rejected.\nUnknown types are ignored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Dispatch upload event",
                "parameters": [
                    {
                        "description": "Lifecycle event",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.EventRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.EventResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns the health status of the API",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"type": "string"}
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.Activation": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "source": {"type": "string", "enum": ["upload", "stored"]},
                "segment_count": {"type": "integer"},
                "channels_added": {"type": "integer"},
                "navigation_requests": {"type": "integer"},
                "navigate_to": {"type": "string"},
                "ignored_files": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.Channel": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "url": {"type": "string"},
                "group": {"type": "string"},
                "logo": {"type": "string"},
                "epg_id": {"type": "string"},
                "user_agent": {"type": "string"},
                "referrer": {"type": "string"},
                "source_playlist": {"type": "string"}
            }
        },
        "domain.NavigationState": {
            "type": "object",
            "properties": {
                "last_route": {"type": "string"},
                "requests": {"type": "integer"}
            }
        },
        "domain.Playlist": {
            "type": "object",
            "properties": {
                "header": {"type": "object", "additionalProperties": {"type": "string"}},
                "segments": {"type": "array", "items": {"$ref": "#/definitions/domain.Segment"}}
            }
        },
        "domain.QueueSnapshot": {
            "type": "object",
            "properties": {
                "files": {"type": "array", "items": {"$ref": "#/definitions/domain.UploadFile"}},
                "drag_active": {"type": "boolean"}
            }
        },
        "domain.Segment": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "url": {"type": "string"},
                "duration": {"type": "number"},
                "tvg_id": {"type": "string"},
                "tvg_name": {"type": "string"},
                "tvg_logo": {"type": "string"},
                "group": {"type": "string"},
                "attributes": {"type": "object", "additionalProperties": {"type": "string"}},
                "options": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "domain.UploadFile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "size": {"type": "integer"},
                "progress": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "line": {"type": "integer"}
            }
        },
        "http.EventFile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "size": {"type": "integer"},
                "progress": {"type": "integer"},
                "status": {"type": "string"},
                "content": {"type": "string"}
            }
        },
        "http.EventRequest": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "type": {"type": "string"},
                "file": {"$ref": "#/definitions/http.EventFile"}
            }
        },
        "http.EventResponse": {
            "type": "object",
            "properties": {
                "activation": {"$ref": "#/definitions/domain.Activation"},
                "queue": {"$ref": "#/definitions/domain.QueueSnapshot"}
            }
        },
        "http.UploadResponse": {
            "type": "object",
            "properties": {
                "activation": {"$ref": "#/definitions/domain.Activation"},
                "rejected": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PlaylistUploader API",
	Description:      "API for uploading M3U playlists, saving them by file name and activating them as the session's channel set.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
