// Package docs holds the Swagger document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/currencies": {
            "get": {
                "description": "Supported currencies with their display names and symbols",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List currencies",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/currency.Entry"}}}
                }
            }
        },
        "/currencies/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Get currency",
                "parameters": [
                    {"type": "string", "example": "EUR", "description": "ISO code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/currency.Entry"}},
                    "404": {"description": "Unsupported currency", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "description": "Summary statistics, trend chart and breakdown in the user's currency",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Get dashboard",
                "parameters": [
                    {"enum": ["monthly", "quarterly", "yearly"], "type": "string", "description": "Chart range", "name": "range", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Overview"}},
                    "400": {"description": "Invalid range", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "401": {"description": "Not onboarded", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/dashboard/chart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Get chart data",
                "parameters": [
                    {"enum": ["monthly", "quarterly", "yearly"], "type": "string", "description": "Chart range", "name": "range", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ChartData"}},
                    "400": {"description": "Invalid range", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "401": {"description": "Not onboarded", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/dashboard/items": {
            "get": {
                "description": "Assets and liabilities grouped by category with totals",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List items",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Breakdown"}},
                    "401": {"description": "Not onboarded", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Add item",
                "parameters": [
                    {"description": "Item", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ItemInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Item"}},
                    "400": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "401": {"description": "Not onboarded", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/dashboard/items/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Update item",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true},
                    {"description": "Item", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ItemInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Item"}},
                    "400": {"description": "Invalid fields", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["dashboard"],
                "summary": "Delete item",
                "parameters": [
                    {"type": "string", "description": "Item ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/dashboard/reset": {
            "post": {
                "description": "Drops all items and history and starts over from the demo portfolio",
                "tags": ["dashboard"],
                "summary": "Reset dashboard",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/dashboard/snapshot": {
            "post": {
                "description": "Stores the current net worth as this month's history point",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Record net worth snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.History"}}
                }
            }
        },
        "/onboarding": {
            "get": {
                "description": "Current step, the identity carried from the credential step, the profile form and its field errors",
                "produces": ["application/json"],
                "tags": ["onboarding"],
                "summary": "Get onboarding status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Status"}}
                }
            }
        },
        "/onboarding/credentials/email": {
            "post": {
                "description": "Sign up (password confirmation required) or sign in with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["onboarding"],
                "summary": "Submit email credentials",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.EmailCredentials"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Status"}},
                    "400": {"description": "Missing fields, invalid email or password mismatch", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "409": {"description": "Wrong step or already onboarded", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/onboarding/credentials/federated": {
            "post": {
                "description": "Stub of a third-party sign-in; no credentials are exchanged",
                "produces": ["application/json"],
                "tags": ["onboarding"],
                "summary": "Continue with federated sign-in",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Status"}},
                    "409": {"description": "Wrong step or already onboarded", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/onboarding/profile": {
            "post": {
                "description": "Applies the optional body, validates every field and completes onboarding",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["onboarding"],
                "summary": "Complete profile",
                "parameters": [
                    {"description": "Fields to change before submitting", "name": "request", "in": "body", "schema": {"$ref": "#/definitions/models.ProfilePatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.UserRecord"}},
                    "400": {"description": "One error per invalid field", "schema": {"$ref": "#/definitions/middleware.ValidationErrorResponse"}},
                    "409": {"description": "Wrong step", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Updates the given fields and clears their errors without submitting",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["onboarding"],
                "summary": "Edit profile fields",
                "parameters": [
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ProfilePatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Status"}},
                    "400": {"description": "Invalid request body", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}},
                    "409": {"description": "Wrong step", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        },
        "/session": {
            "get": {
                "description": "Whether a user is signed in and onboarded, the user record and the currency symbol to display amounts with",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Get session state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.State"}}
                }
            }
        },
        "/session/logout": {
            "post": {
                "description": "Forgets the current user, clears the persisted session and restarts onboarding",
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.State"}},
                    "503": {"description": "Persisted session could not be cleared", "schema": {"$ref": "#/definitions/middleware.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "currency.Entry": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "EUR"},
                "name": {"type": "string", "example": "Euro"},
                "symbol": {"type": "string", "example": "€"}
            }
        },
        "errors.AppError": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": true},
                "context": {"type": "object", "additionalProperties": {"type": "string"}},
                "timestamp": {"type": "string"},
                "request_id": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "middleware.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/errors.AppError"},
                "timestamp": {"type": "string"},
                "request_id": {"type": "string"},
                "path": {"type": "string"},
                "method": {"type": "string"}
            }
        },
        "middleware.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/errors.AppError"}},
                "timestamp": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "models.Breakdown": {
            "description": "Assets and liabilities grouped by category",
            "type": "object",
            "properties": {
                "assets": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryGroup"}},
                "liabilities": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryGroup"}},
                "totalAssets": {"type": "string", "example": "415000"},
                "totalLiabilities": {"type": "string", "example": "313000"}
            }
        },
        "models.CategoryGroup": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "Cash"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.Item"}},
                "total": {"type": "string", "example": "20000"}
            }
        },
        "models.ChartData": {
            "description": "Trend chart data",
            "type": "object",
            "properties": {
                "range": {"type": "string", "enum": ["monthly", "quarterly", "yearly"], "example": "monthly"},
                "labels": {"type": "array", "items": {"type": "string"}},
                "series": {"type": "array", "items": {"$ref": "#/definitions/models.Series"}},
                "symbol": {"type": "string", "example": "$"}
            }
        },
        "models.EmailCredentials": {
            "description": "Email sign-up or sign-in form",
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "a@b.com"},
                "password": {"type": "string", "example": "secret"},
                "confirmPassword": {"type": "string", "example": "secret"},
                "mode": {"type": "string", "enum": ["signup", "signin"], "example": "signup"}
            }
        },
        "models.Growth": {
            "type": "object",
            "properties": {
                "amount": {"type": "string", "example": "7000"},
                "percentage": {"type": "string", "example": "6.1"},
                "isPositive": {"type": "boolean", "example": true}
            }
        },
        "models.Highlight": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Home Value"},
                "value": {"type": "string", "example": "350000"}
            }
        },
        "models.History": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Net Worth"},
                "points": {"type": "array", "items": {"$ref": "#/definitions/models.Point"}}
            }
        },
        "models.Identity": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "user_1718000000000"},
                "email": {"type": "string", "example": "a@b.com"}
            }
        },
        "models.Item": {
            "description": "Asset or liability line",
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "6f1c2a9e-2f0b-4a53-9a57-0a4c8e1f6a10"},
                "name": {"type": "string", "example": "Checking Account"},
                "value": {"type": "string", "example": "5000"},
                "category": {"type": "string", "example": "Cash"},
                "kind": {"type": "string", "enum": ["asset", "liability"], "example": "asset"}
            }
        },
        "models.ItemInput": {
            "description": "Asset or liability input",
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Checking Account"},
                "value": {"type": "string", "example": "5000"},
                "category": {"type": "string", "example": "Cash"},
                "kind": {"type": "string", "enum": ["asset", "liability"], "example": "asset"}
            }
        },
        "models.Overview": {
            "description": "Dashboard overview",
            "type": "object",
            "properties": {
                "currency": {"type": "string", "example": "CAD"},
                "symbol": {"type": "string", "example": "$"},
                "statistics": {"$ref": "#/definitions/models.Statistics"},
                "chart": {"$ref": "#/definitions/models.ChartData"},
                "breakdown": {"$ref": "#/definitions/models.Breakdown"},
                "formatted": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "models.Point": {
            "type": "object",
            "properties": {
                "period": {"type": "string", "example": "2024-12"},
                "label": {"type": "string", "example": "Dec"},
                "value": {"type": "string", "example": "98000"}
            }
        },
        "models.ProfileForm": {
            "description": "Profile form state",
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Jane"},
                "gender": {"type": "string", "enum": ["male", "female", "other"], "example": "female"},
                "age": {"type": "integer", "example": 30},
                "country": {"type": "string", "example": "Canada"},
                "currency": {"type": "string", "example": "CAD"}
            }
        },
        "models.ProfilePatch": {
            "description": "Partial profile form update",
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Jane"},
                "gender": {"type": "string", "example": "female"},
                "age": {"type": "integer", "example": 30},
                "country": {"type": "string", "example": "Canada"},
                "currency": {"type": "string", "example": "CAD"}
            }
        },
        "models.Series": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Net Worth"},
                "values": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.State": {
            "type": "object",
            "properties": {
                "isAuthenticated": {"type": "boolean"},
                "isOnboarded": {"type": "boolean"},
                "user": {"$ref": "#/definitions/models.UserRecord"},
                "currencySymbol": {"type": "string", "example": "$"}
            }
        },
        "models.Statistics": {
            "description": "Summary statistics",
            "type": "object",
            "properties": {
                "netWorth": {"type": "string", "example": "102000"},
                "previousNetWorth": {"type": "string", "example": "98000"},
                "growth": {"$ref": "#/definitions/models.Growth"},
                "largestAsset": {"$ref": "#/definitions/models.Highlight"},
                "largestLiability": {"$ref": "#/definitions/models.Highlight"}
            }
        },
        "models.Status": {
            "description": "Onboarding attempt snapshot",
            "type": "object",
            "properties": {
                "step": {"type": "string", "enum": ["credential", "profile", "complete"], "example": "profile"},
                "pending": {"$ref": "#/definitions/models.Identity"},
                "form": {"$ref": "#/definitions/models.ProfileForm"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "models.UserRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "user_1718000000000"},
                "email": {"type": "string", "example": "a@b.com"},
                "name": {"type": "string", "example": "Jane"},
                "gender": {"type": "string", "enum": ["male", "female", "other"], "example": "female"},
                "age": {"type": "integer", "example": 30},
                "country": {"type": "string", "example": "Canada"},
                "currency": {"type": "string", "example": "CAD"},
                "isOnboarded": {"type": "boolean", "example": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Net Worth Tracker API",
	Description:      "Session, onboarding and dashboard API of the single-user net worth tracker.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
