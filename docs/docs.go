// Package docs registers the Swagger document served under /swagger/.
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
        "/wallet/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Get wallet session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SessionResponse"}}
                }
            }
        },
        "/wallet/connect": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Connect wallet",
                "parameters": [
                    {"name": "request", "in": "body", "schema": {"$ref": "#/definitions/model.ConnectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/wallet/disconnect": {
            "post": {
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Disconnect wallet",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SessionResponse"}}
                }
            }
        },
        "/wallet/sync": {
            "post": {
                "produces": ["application/json"],
                "tags": ["wallet"],
                "summary": "Sync with wallet provider",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.SessionResponse"}}
                }
            }
        },
        "/wallet/qr": {
            "get": {
                "produces": ["image/png"],
                "tags": ["wallet"],
                "summary": "QR code of the connected address",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List projects",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ProjectView"}}}
                }
            }
        },
        "/projects/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Get project",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ProjectView"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/care-packages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List care packages",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.CarePackage"}}}
                }
            }
        },
        "/donors/top": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Donor leaderboard",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.TopDonor"}}}
                }
            }
        },
        "/donations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Donation history",
                "parameters": [{"type": "string", "name": "address", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.DonationsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/admin/check": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Check admin status",
                "parameters": [{"type": "string", "name": "address", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.AdminCheckResponse"}}
                }
            }
        },
        "/admin/publishers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List publishers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Publisher"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Add publisher",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.AddPublisherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Publisher"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/admin/publishers/{address}": {
            "delete": {
                "tags": ["admin"],
                "summary": "Remove publisher",
                "parameters": [{"type": "string", "name": "address", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/admin/projects": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create project",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.ProjectInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Project"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/model.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/admin/projects/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update project",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.ProjectInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Project"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["admin"],
                "summary": "Delete project",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/model.ErrorResponse"}}
                }
            }
        },
        "/admin/care-packages": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create care package",
                "parameters": [
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CarePackageInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.CarePackage"}}
                }
            }
        },
        "/admin/care-packages/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Update care package",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.CarePackageInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.CarePackage"}}
                }
            },
            "delete": {
                "tags": ["admin"],
                "summary": "Delete care package",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        }
    },
    "definitions": {
        "model.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "model.SessionResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "connected": {"type": "boolean"},
                "display": {"type": "string"},
                "providerAvailable": {"type": "boolean"},
                "isAdmin": {"type": "boolean"}
            }
        },
        "model.ConnectRequest": {
            "type": "object",
            "properties": {
                "address": {"type": "string"}
            }
        },
        "model.AdminCheckResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "isAdmin": {"type": "boolean"}
            }
        },
        "model.AddPublisherRequest": {
            "type": "object",
            "properties": {
                "walletAddress": {"type": "string"}
            }
        },
        "model.Publisher": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "walletAddress": {"type": "string"},
                "addedBy": {"type": "string"},
                "createdAt": {"type": "string"},
                "primary": {"type": "boolean"}
            }
        },
        "model.ProjectInput": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "fundingGoal": {"type": "string"}
            }
        },
        "model.Project": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "fundingGoal": {"type": "string"},
                "currentAmount": {"type": "string"},
                "supportersCount": {"type": "integer"},
                "topDonor": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.ProjectView": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "fundingGoal": {"type": "string"},
                "currentAmount": {"type": "string"},
                "supportersCount": {"type": "integer"},
                "topDonor": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "fundedPercent": {"type": "number"},
                "goalDisplay": {"type": "string"},
                "raisedDisplay": {"type": "string"},
                "topDonorDisplay": {"type": "string"},
                "donationOptions": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "model.CarePackageInput": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"},
                "threshold": {"type": "string"},
                "eligibility": {"type": "string"},
                "image": {"type": "string"}
            }
        },
        "model.CarePackage": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "threshold": {"type": "string"},
                "eligibility": {"type": "string"},
                "image": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "model.TopDonor": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "display": {"type": "string"},
                "totalDonated": {"type": "string"},
                "projectsSupported": {"type": "array", "items": {"type": "string"}}
            }
        },
        "model.Donation": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "projectId": {"type": "string"},
                "donorAddress": {"type": "string"},
                "amount": {"type": "string"},
                "createdAt": {"type": "string"},
                "dateDisplay": {"type": "string"}
            }
        },
        "model.DonationsResponse": {
            "type": "object",
            "properties": {
                "address": {"type": "string"},
                "total": {"type": "string"},
                "donations": {"type": "array", "items": {"$ref": "#/definitions/model.Donation"}}
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
	Title:            "Share-a-Care API",
	Description:      "Wallet session, admin panel and donation dashboard for Share-a-Care.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
