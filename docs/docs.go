// Package docs registra la descripción OpenAPI de la API en swag.
// Se regenera con: swag init -g cmd/api/main.go -o docs
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
        "/api/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Estadísticas del panel",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/api/sales": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Registros de venta vigentes",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/api/inventory": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Estado del inventario",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/api/inventory/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Productos del inventario filtrados y paginados",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "string", "default": "low-stock", "name": "sort", "in": "query",
                     "enum": ["low-stock", "high-stock", "price-asc", "price-desc", "name"]},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 5, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/alerts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Alertas de inventario",
                "parameters": [
                    {"type": "string", "name": "type", "in": "query", "enum": ["critical", "low-stock", "dead-stock"]},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"type": "integer", "default": 5, "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/forecast": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Pronóstico del próximo mes",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/api/analytics/sales": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Ventas por categoría y por producto",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            }
        },
        "/api/upload-csv": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["upload"],
                "summary": "Cargar archivo de ventas",
                "parameters": [{"type": "file", "name": "csvFile", "in": "formData", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Productos agregados manualmente",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Agregar producto",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateProductRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/business": {
            "get": {
                "produces": ["application/json"],
                "tags": ["business"],
                "summary": "Perfil del negocio",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["business"],
                "summary": "Guardar perfil del negocio",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BusinessRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Ajustes de la tienda",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Actualizar ajustes de la tienda",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/api/reports/inventory": {
            "get": {
                "produces": ["application/pdf"],
                "tags": ["reports"],
                "summary": "Reporte de inventario en PDF",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "code": {"type": "string"},
                "message": {"type": "string"},
                "error": {"type": "string"}
            }
        },
        "dto.CreateProductRequest": {
            "type": "object",
            "properties": {
                "productName": {"type": "string"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "price": {"type": "number"},
                "stock": {"type": "integer"},
                "quantity": {"type": "integer"},
                "date": {"type": "string"}
            }
        },
        "dto.BusinessRequest": {
            "type": "object",
            "properties": {
                "businessName": {"type": "string"},
                "businessType": {"type": "string"},
                "currency": {"type": "string"},
                "timeZone": {"type": "string"},
                "location": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo datos exportados de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Retail Dashboard API",
	Description:      "Panel de ventas e inventario: carga de archivos, estadísticas, pronóstico y canal en tiempo real (/ws).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
