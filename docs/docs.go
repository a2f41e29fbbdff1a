// Package docs registers the Swagger document for the SubSage JSON API.
// The document is maintained by hand next to the godoc annotations in
// internal/handler; TestSwaggerDocMatchesRoutes fails when the two disagree.
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
        "/api/ai-insights": {
            "get": {
                "description": "Spending level, subscription count, crowded categories, expensive services and two random tips.",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Rule-based spending insights",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.insightsResponse"}}
                }
            }
        },
        "/api/analytics": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Spending analytics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.analyticsResponse"}}
                }
            }
        },
        "/api/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Suggested subscription categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.categoriesResponse"}}
                }
            }
        },
        "/api/coupons": {
            "get": {
                "produces": ["application/json"],
                "tags": ["coupons"],
                "summary": "Available coupon offers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.couponsResponse"}}
                }
            }
        },
        "/api/subscriptions": {
            "get": {
                "description": "All subscriptions in insertion order.",
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "List subscriptions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.subscriptionsResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Add a subscription",
                "parameters": [
                    {
                        "description": "New subscription",
                        "name": "subscription",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handler.createSubscriptionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.subscriptionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/api/subscriptions/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Delete a subscription",
                "parameters": [
                    {"type": "integer", "description": "Subscription ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.subscriptionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.analyticsResponse": {
            "type": "object",
            "properties": {
                "analytics": {"$ref": "#/definitions/model.Analytics"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.categoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.couponsResponse": {
            "type": "object",
            "properties": {
                "coupons": {"type": "array", "items": {"$ref": "#/definitions/model.Coupon"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.createSubscriptionRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "Streaming"},
                "cost": {"type": "number", "example": 15.49},
                "name": {"type": "string", "example": "Netflix"},
                "renewalDate": {"type": "string", "example": "2025-12-01"}
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Subscription not found"},
                "success": {"type": "boolean", "example": false}
            }
        },
        "handler.insightsResponse": {
            "type": "object",
            "properties": {
                "insights": {"type": "array", "items": {"$ref": "#/definitions/model.Insight"}},
                "success": {"type": "boolean", "example": true},
                "summary": {"$ref": "#/definitions/model.InsightSummary"}
            }
        },
        "handler.subscriptionResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Subscription added successfully"},
                "subscription": {"$ref": "#/definitions/model.Subscription"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "handler.subscriptionsResponse": {
            "type": "object",
            "properties": {
                "subscriptions": {"type": "array", "items": {"$ref": "#/definitions/model.Subscription"}},
                "success": {"type": "boolean", "example": true}
            }
        },
        "model.Analytics": {
            "type": "object",
            "properties": {
                "averageCost": {"type": "number"},
                "categorySpending": {"type": "object", "additionalProperties": {"type": "number"}},
                "mostExpensive": {"$ref": "#/definitions/model.Subscription"},
                "subscriptionCount": {"type": "integer"},
                "totalMonthlyCost": {"type": "number"}
            }
        },
        "model.Coupon": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "code": {"type": "string"},
                "description": {"type": "string"},
                "discount": {"type": "string"},
                "expiryDate": {"type": "string"},
                "id": {"type": "integer"},
                "service": {"type": "string"}
            }
        },
        "model.Insight": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "type": {"$ref": "#/definitions/model.InsightType"}
            }
        },
        "model.InsightSummary": {
            "type": "object",
            "properties": {
                "potentialSavings": {"type": "number"},
                "subscriptionCount": {"type": "integer"},
                "totalCost": {"type": "number"}
            }
        },
        "model.InsightType": {
            "type": "string",
            "enum": ["info", "warning", "success", "tip", "alert", "cost"]
        },
        "model.Subscription": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "cost": {"type": "number"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "renewalDate": {"type": "string"}
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
	Title:            "SubSage API",
	Description:      "Subscription tracking with spending analytics, rule-based insights and coupon offers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
