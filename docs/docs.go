// Package docs registers the OpenAPI description served at /api/v1/docs.
// The template is maintained by hand in swag's output format; keep it in
// step with the handler annotations when routes change.
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
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}],
                "responses": {"200": {"description": "Access token"}, "401": {"description": "Invalid credentials"}, "429": {"description": "Too many attempts"}}
            }
        },
        "/auth/protected": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Auth"],
                "summary": "Check a token",
                "responses": {"200": {"description": "Token identity"}, "401": {"description": "Missing or invalid token"}}
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "List users",
                "responses": {"200": {"description": "Users"}, "401": {"description": "Missing token"}, "403": {"description": "Not an admin"}}
            },
            "post": {
                "tags": ["Users"],
                "summary": "Register a user",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/user.CreateUserRequest"}}],
                "responses": {"201": {"description": "Created user"}, "400": {"description": "Invalid field"}, "403": {"description": "Admin flag without admin rights"}, "409": {"description": "Email already registered"}}
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Get a user",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "User"}, "403": {"description": "Neither self nor admin"}, "404": {"description": "User not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Update a user",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/user.UpdateUserRequest"}}
                ],
                "responses": {"200": {"description": "Updated user"}, "400": {"description": "Invalid field"}, "403": {"description": "Not allowed"}, "404": {"description": "User not found"}, "409": {"description": "Email already registered"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Users"],
                "summary": "Delete a user",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "Deleted"}, "403": {"description": "Not an admin, or own account"}, "404": {"description": "User not found"}}
            }
        },
        "/places": {
            "get": {
                "tags": ["Places"],
                "summary": "List places",
                "responses": {"200": {"description": "Places"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Places"],
                "summary": "Create a place",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/place.CreatePlaceRequest"}}],
                "responses": {"201": {"description": "Created place"}, "400": {"description": "Invalid field"}, "403": {"description": "Foreign owner_id"}, "404": {"description": "Owner or amenity not found"}}
            }
        },
        "/places/{id}": {
            "get": {
                "tags": ["Places"],
                "summary": "Get a place",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "Place"}, "404": {"description": "Place not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Places"],
                "summary": "Update a place",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/place.UpdatePlaceRequest"}}
                ],
                "responses": {"200": {"description": "Updated place"}, "400": {"description": "Invalid field"}, "403": {"description": "Not the owner"}, "404": {"description": "Place or amenity not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Places"],
                "summary": "Delete a place",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "Deleted"}, "403": {"description": "Not the owner"}, "404": {"description": "Place not found"}}
            }
        },
        "/places/{id}/amenities": {
            "get": {
                "tags": ["Places"],
                "summary": "List place amenities",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "Amenities"}, "404": {"description": "Place not found"}}
            }
        },
        "/places/{id}/reviews": {
            "get": {
                "tags": ["Reviews"],
                "summary": "List place reviews",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "Reviews"}, "404": {"description": "Place not found"}}
            }
        },
        "/reviews": {
            "get": {
                "tags": ["Reviews"],
                "summary": "List reviews",
                "responses": {"200": {"description": "Reviews"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Reviews"],
                "summary": "Write a review",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/review.CreateReviewRequest"}}],
                "responses": {"201": {"description": "Created review"}, "400": {"description": "Invalid field"}, "403": {"description": "Own place, or foreign user_id"}, "404": {"description": "Place or user not found"}, "409": {"description": "Place already reviewed"}}
            }
        },
        "/reviews/{id}": {
            "get": {
                "tags": ["Reviews"],
                "summary": "Get a review",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "Review"}, "404": {"description": "Review not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Reviews"],
                "summary": "Update a review",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/review.UpdateReviewRequest"}}
                ],
                "responses": {"200": {"description": "Updated review"}, "400": {"description": "Invalid field"}, "403": {"description": "Not the author"}, "404": {"description": "Review not found"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Reviews"],
                "summary": "Delete a review",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "Deleted"}, "403": {"description": "Not the author"}, "404": {"description": "Review not found"}}
            }
        },
        "/amenities": {
            "get": {
                "tags": ["Amenities"],
                "summary": "List amenities",
                "responses": {"200": {"description": "Amenities"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Amenities"],
                "summary": "Create an amenity",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/amenity.CreateAmenityRequest"}}],
                "responses": {"201": {"description": "Created amenity"}, "400": {"description": "Invalid name"}, "403": {"description": "Not an admin"}, "409": {"description": "Name already used"}}
            }
        },
        "/amenities/{id}": {
            "get": {
                "tags": ["Amenities"],
                "summary": "Get an amenity",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"200": {"description": "Amenity"}, "404": {"description": "Amenity not found"}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["Amenities"],
                "summary": "Update an amenity",
                "parameters": [
                    {"type": "string", "in": "path", "name": "id", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/amenity.UpdateAmenityRequest"}}
                ],
                "responses": {"200": {"description": "Updated amenity"}, "400": {"description": "Invalid name"}, "403": {"description": "Not an admin"}, "404": {"description": "Amenity not found"}, "409": {"description": "Name already used"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Amenities"],
                "summary": "Delete an amenity",
                "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}],
                "responses": {"204": {"description": "Deleted"}, "403": {"description": "Not an admin"}, "404": {"description": "Amenity not found"}}
            }
        }
    },
    "definitions": {
        "auth.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "user.CreateUserRequest": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "is_admin": {"type": "boolean"}
            }
        },
        "user.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "is_admin": {"type": "boolean"}
            }
        },
        "place.CreatePlaceRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "owner_id": {"type": "string"},
                "amenities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "place.UpdatePlaceRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"},
                "owner_id": {"type": "string"},
                "amenities": {"type": "array", "items": {"type": "string"}}
            }
        },
        "review.CreateReviewRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "rating": {"type": "integer"},
                "place_id": {"type": "string"},
                "user_id": {"type": "string"}
            }
        },
        "review.UpdateReviewRequest": {
            "type": "object",
            "properties": {"text": {"type": "string"}, "rating": {"type": "integer"}}
        },
        "amenity.CreateAmenityRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
        },
        "amenity.UpdateAmenityRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}}
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
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "HBnB API",
	Description:      "Places, reviews and amenities for short-term rentals.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
