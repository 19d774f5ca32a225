// Package docs holds the swagger document served at /swagger. Keep it in step
// with the controller annotations when routes change.
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
        "/auth/login": {
            "post": {
                "description": "Returns a bearer token for a PDV operator",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Authentication"],
                "summary": "Staff login",
                "parameters": [
                    {
                        "description": "Login Request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "description": "Get paginated list of PDV products",
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Get all products",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PaginationResponse"}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Get product by ID",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/processar_venda": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Records a sale from a PDV cart, decrements stock and credits loyalty points",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sales"],
                "summary": "Process PDV sale",
                "parameters": [
                    {
                        "description": "Sale",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.SaleRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/vendas": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Sales report, newest first",
                "produces": ["application/json"],
                "tags": ["Sales"],
                "summary": "List sales",
                "parameters": [
                    {"type": "integer", "default": 1, "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "default": 20, "description": "Items per page", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PaginationResponse"}}
                }
            }
        },
        "/pontos/{cpf}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Points balance for a customer CPF, masked or digits only",
                "produces": ["application/json"],
                "tags": ["Sales"],
                "summary": "Loyalty points",
                "parameters": [
                    {"type": "string", "description": "CPF", "name": "cpf", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}}
                }
            }
        },
        "/verificar_estoque": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Whether the requested units of a product are on hand",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Stock"],
                "summary": "Check stock",
                "parameters": [
                    {"description": "Stock check", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.StockCheckRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StockCheck"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.StockCheck"}}
                }
            }
        },
        "/aumentar_estoque": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Adds units to a product and records an entrada movement",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Stock"],
                "summary": "Restock product",
                "parameters": [
                    {"description": "Restock", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RestockRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/cadastro_produto": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a product and records its opening stock",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Stock"],
                "summary": "Register product",
                "parameters": [
                    {"description": "Product", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/excluir_produto/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Removes a product and records the units it held as an exclusao movement",
                "produces": ["application/json"],
                "tags": ["Stock"],
                "summary": "Delete product",
                "parameters": [
                    {"type": "integer", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/adicionar_usuario": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Creates a user with the permissions of its role (admin, rh, pdv, estoquista, cadastrador)",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Add staff user",
                "parameters": [
                    {"description": "User", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/excluir_usuario/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "description": "Removes a user. Operators cannot remove themselves or the main admins",
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "Delete staff user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.CartLine": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "preco": {"type": "number"},
                "quantidade": {"type": "integer"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.PaginationMeta": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "page": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"}
            }
        },
        "models.PaginationResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "meta": {"$ref": "#/definitions/models.PaginationMeta"},
                "success": {"type": "boolean"}
            }
        },
        "models.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "models.SaleRequest": {
            "type": "object",
            "required": ["produtos"],
            "properties": {
                "cpfCliente": {"type": "string"},
                "data": {"type": "string"},
                "produtos": {"type": "array", "items": {"$ref": "#/definitions/models.CartLine"}},
                "total": {"type": "number"}
            }
        },
        "models.RestockRequest": {
            "type": "object",
            "required": ["produto_id", "quantidade"],
            "properties": {
                "data": {"type": "string"},
                "produto_id": {"type": "integer"},
                "quantidade": {"type": "integer"}
            }
        },
        "models.CreateProductRequest": {
            "type": "object",
            "required": ["nome", "categoria"],
            "properties": {
                "categoria": {"type": "string"},
                "estoque_minimo": {"type": "integer"},
                "nome": {"type": "string"},
                "preco": {"type": "number"},
                "quantidade": {"type": "integer"}
            }
        },
        "models.StockCheckRequest": {
            "type": "object",
            "required": ["produto_id"],
            "properties": {
                "produto_id": {"type": "integer"},
                "quantidade": {"type": "integer"}
            }
        },
        "models.StockCheck": {
            "type": "object",
            "properties": {
                "disponivel": {"type": "boolean"},
                "estoque_atual": {"type": "integer"},
                "quantidade_solicitada": {"type": "integer"}
            }
        },
        "models.CreateUserRequest": {
            "type": "object",
            "required": ["nome", "email", "senha", "tipo"],
            "properties": {
                "email": {"type": "string"},
                "nome": {"type": "string"},
                "senha": {"type": "string"},
                "tipo": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5001",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Turma do Forno PDV API",
	Description:      "Sale processing API for the Turma do Forno point of sale.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
