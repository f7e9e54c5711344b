// Package docs holds the OpenAPI document for the tidy-date API. It is kept
// in step with the @Router annotations on the handlers and registered with
// swag under the "api" instance
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/v1/format/date": {
            "post": {
                "tags": ["Format"],
                "summary": "Format one instant",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/DateInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Formatted"}}}}}
            }
        },
        "/v1/format/range": {
            "post": {
                "tags": ["Format"],
                "summary": "Format a range",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/RangeInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Formatted"}}}}}
            }
        },
        "/v1/format/range-today": {
            "post": {
                "tags": ["Format"],
                "summary": "Format a range relative to today",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/RangeInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Formatted"}}}}}
            }
        },
        "/v1/format/type": {
            "post": {
                "tags": ["Format"],
                "summary": "Classify a range",
                "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/RangeInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Classified"}}}}}
            }
        },
        "/v1/meta/ready": {"get": {"tags": ["Meta"], "summary": "Readiness", "responses": {"200": {"description": "ok"}}}},
        "/v1/meta/version": {"get": {"tags": ["Meta"], "summary": "Build version", "responses": {"200": {"description": "ok"}}}},
        "/v1/meta/service": {"get": {"tags": ["Meta"], "summary": "Service info", "responses": {"200": {"description": "ok"}}}},
        "/v1/meta/locales": {"get": {"tags": ["Meta"], "summary": "Supported locales", "responses": {"200": {"description": "ok"}}}}
    },
    "components": {
        "schemas": {
            "Settings": {
                "type": "object",
                "properties": {
                    "date_resolution": {"type": "string", "enum": ["year", "month", "day", "hour", "minute", "second"], "example": "second"},
                    "display_resolution": {"type": "string", "enum": ["year", "month", "day", "hour", "minute", "second"], "example": "minute"},
                    "boundary": {"type": "string", "enum": ["inclusive", "exclusive"], "example": "inclusive"},
                    "only_intl": {"type": "boolean", "example": false},
                    "locale": {"type": "string", "example": "en-GB"},
                    "time_zone": {"type": "string", "example": "Europe/Stockholm"},
                    "show_time_zone": {"type": "boolean"}
                }
            },
            "DateInput": {
                "allOf": [
                    {"$ref": "#/components/schemas/Settings"},
                    {"type": "object", "required": ["date"], "properties": {"date": {"type": "string", "format": "date-time", "example": "2022-02-03T01:02:03Z"}}}
                ]
            },
            "RangeInput": {
                "allOf": [
                    {"$ref": "#/components/schemas/Settings"},
                    {
                        "type": "object",
                        "required": ["from", "to"],
                        "properties": {
                            "from": {"type": "string", "format": "date-time", "example": "2023-08-01T00:00:00Z"},
                            "to": {"type": "string", "format": "date-time", "example": "2023-08-12T23:59:59.999Z"},
                            "today": {"type": "string", "format": "date-time"}
                        }
                    }
                ]
            },
            "Config": {
                "type": "object",
                "properties": {
                    "date_resolution": {"type": "string"},
                    "display_resolution": {"type": "string"},
                    "boundary": {"type": "string"},
                    "only_intl": {"type": "boolean"}
                }
            },
            "Formatted": {
                "type": "object",
                "properties": {
                    "text": {"type": "string", "example": "Aug 1 – 12"},
                    "locale": {"type": "string", "example": "en"},
                    "config": {"$ref": "#/components/schemas/Config"}
                }
            },
            "Classified": {
                "type": "object",
                "properties": {
                    "range_type": {"type": "string", "example": "sameMonth"},
                    "config": {"$ref": "#/components/schemas/Config"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "tidy-date API",
	Description:      "Formats dates and date ranges as short human readable text",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
