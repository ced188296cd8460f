// Package docs registers the OpenAPI description of the workout API with
// swaggo/swag so gin-swagger can serve it under /doc.
//
//	@title			Workout API
//	@version		1.0.0
//	@description	Users, exercises, tags and sets, with exercise tagging.
//	@BasePath		/
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "get": {"tags": ["Users"], "summary": "List users", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}}}},
            "post": {"tags": ["Users"], "summary": "Create a user", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/UserInput"}}], "responses": {"200": {"description": "Created", "schema": {"$ref": "#/definitions/User"}}, "409": {"description": "Email already registered", "schema": {"$ref": "#/definitions/Error"}}, "422": {"description": "Invalid body", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/users/{id}": {
            "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
            "get": {"tags": ["Users"], "summary": "Get a user", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "404": {"description": "User not found", "schema": {"$ref": "#/definitions/Error"}}}},
            "patch": {"tags": ["Users"], "summary": "Update a user", "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/UserInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/User"}}, "404": {"description": "User not found", "schema": {"$ref": "#/definitions/Error"}}}},
            "delete": {"tags": ["Users"], "summary": "Delete a user with everything they own", "responses": {"204": {"description": "Deleted"}, "404": {"description": "User not found", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/exercises": {
            "get": {"tags": ["Exercises"], "summary": "List exercises with their tags", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ExerciseWithTags"}}}}},
            "post": {"tags": ["Exercises"], "summary": "Create an exercise", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/NamedInput"}}], "responses": {"200": {"description": "Created", "schema": {"$ref": "#/definitions/ExerciseWithTags"}}}}
        },
        "/exercises/{id}": {
            "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
            "get": {"tags": ["Exercises"], "summary": "Get an exercise", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ExerciseWithTags"}}, "404": {"description": "Exercise not found", "schema": {"$ref": "#/definitions/Error"}}}},
            "patch": {"tags": ["Exercises"], "summary": "Update an exercise", "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/NamedInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ExerciseWithTags"}}}},
            "delete": {"tags": ["Exercises"], "summary": "Delete an exercise, its sets and tag links", "responses": {"204": {"description": "Deleted"}}}
        },
        "/exercises/{id}/tags/{tagId}": {
            "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}, {"in": "path", "name": "tagId", "type": "integer", "required": true}],
            "post": {"tags": ["Exercises"], "summary": "Tag an exercise", "responses": {"201": {"description": "Tagged", "schema": {"$ref": "#/definitions/ExerciseWithTags"}}, "404": {"description": "Exercise or tag not found", "schema": {"$ref": "#/definitions/Error"}}, "409": {"description": "Tag already added to exercise", "schema": {"$ref": "#/definitions/Error"}}, "422": {"description": "Path id is not a positive integer", "schema": {"$ref": "#/definitions/Error"}}, "500": {"description": "Exercise not found after update", "schema": {"$ref": "#/definitions/Error"}}}},
            "delete": {"tags": ["Exercises"], "summary": "Untag an exercise", "responses": {"204": {"description": "Untagged"}, "404": {"description": "Exercise, tag, or association not found", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/tags": {
            "get": {"tags": ["Tags"], "summary": "List tags with their exercises", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TagWithExercises"}}}}},
            "post": {"tags": ["Tags"], "summary": "Create a tag", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/NamedInput"}}], "responses": {"200": {"description": "Created", "schema": {"$ref": "#/definitions/TagWithExercises"}}}}
        },
        "/tags/{id}": {
            "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
            "get": {"tags": ["Tags"], "summary": "Get a tag", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/TagWithExercises"}}, "404": {"description": "Tag not found", "schema": {"$ref": "#/definitions/Error"}}}},
            "patch": {"tags": ["Tags"], "summary": "Update a tag", "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/NamedInput"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/TagWithExercises"}}}},
            "delete": {"tags": ["Tags"], "summary": "Delete a tag and its exercise links", "responses": {"204": {"description": "Deleted"}}}
        },
        "/sets": {
            "get": {"tags": ["Sets"], "summary": "List sets", "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Set"}}}}},
            "post": {"tags": ["Sets"], "summary": "Record a set", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Set"}}], "responses": {"200": {"description": "Created", "schema": {"$ref": "#/definitions/Set"}}, "404": {"description": "Exercise not found", "schema": {"$ref": "#/definitions/Error"}}}}
        },
        "/sets/{id}": {
            "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}],
            "get": {"tags": ["Sets"], "summary": "Get a set", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Set"}}}},
            "patch": {"tags": ["Sets"], "summary": "Update a set", "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/Set"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Set"}}}},
            "delete": {"tags": ["Sets"], "summary": "Delete a set", "responses": {"204": {"description": "Deleted"}}}
        },
        "/audit/events": {
            "get": {"tags": ["Audit"], "summary": "Recent audit events of the acting user", "parameters": [{"in": "query", "name": "type", "type": "string", "enum": ["association", "delete", "maintenance"]}], "responses": {"200": {"description": "OK"}}}
        },
        "/audit/cleanup": {
            "post": {"tags": ["Audit"], "summary": "Queue removal of expired audit events", "responses": {"202": {"description": "Queued"}, "503": {"description": "Task queue is disabled"}}}
        },
        "/health": {
            "get": {"tags": ["System"], "summary": "Service and database health", "responses": {"200": {"description": "Healthy"}, "503": {"description": "Unhealthy"}}}
        }
    },
    "definitions": {
        "Error": {"type": "object", "properties": {"message": {"type": "string"}, "issues": {"type": "array", "items": {"type": "object", "properties": {"field": {"type": "string"}, "rule": {"type": "string"}, "message": {"type": "string"}}}}}},
        "UserInput": {"type": "object", "properties": {"firstName": {"type": "string"}, "lastName": {"type": "string"}, "email": {"type": "string", "format": "email"}}},
        "User": {"type": "object", "properties": {"id": {"type": "integer"}, "firstName": {"type": "string"}, "lastName": {"type": "string"}, "email": {"type": "string"}, "createdAt": {"type": "string", "format": "date-time"}, "updatedAt": {"type": "string", "format": "date-time"}}},
        "NamedInput": {"type": "object", "properties": {"name": {"type": "string"}, "description": {"type": "string", "x-nullable": true, "description": "null clears the description on PATCH"}}},
        "ExerciseWithTags": {"type": "object", "properties": {"id": {"type": "integer"}, "userId": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"}, "tags": {"type": "array", "items": {"type": "object"}}}},
        "TagWithExercises": {"type": "object", "properties": {"id": {"type": "integer"}, "userId": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"}, "exercises": {"type": "array", "items": {"type": "object"}}}},
        "Set": {"type": "object", "properties": {"id": {"type": "integer"}, "exerciseId": {"type": "integer"}, "weight": {"type": "integer", "x-nullable": true, "description": "null clears the weight on PATCH"}, "reps": {"type": "integer"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Workout API",
	Description:      "Users, exercises, tags and sets, with exercise tagging.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
