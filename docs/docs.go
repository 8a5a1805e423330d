// Package docs holds the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/app/main.go -o docs
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
        "/healthz": {
            "get": {
                "summary": "Liveness check",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "summary": "Readiness check",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.HealthResponse"
                        }
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "summary": "Build information",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.VersionInfo"
                        }
                    }
                }
            }
        },
        "/api/v1/loot/generate": {
            "post": {
                "summary": "Generate rewards",
                "tags": [
                    "loot"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GenerateLootResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "Reward policy",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/loot.RewardPolicy"
                        }
                    }
                ]
            }
        },
        "/api/v1/profiles": {
            "post": {
                "summary": "Create profile",
                "tags": [
                    "profiles"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.View"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "description": "Opening balance",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.CreateProfileRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/profiles/{id}": {
            "get": {
                "summary": "Get profile",
                "tags": [
                    "profiles"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.View"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/profiles/{id}/rewards": {
            "post": {
                "summary": "Claim rewards",
                "tags": [
                    "profiles"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.ClaimResult"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Policy and bonus currency",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.ClaimRewardsRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/profiles/{id}/slots/{slot}/preview": {
            "get": {
                "summary": "Preview improvement",
                "tags": [
                    "forge"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.ImprovePreview"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Slot index",
                        "name": "slot",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/profiles/{id}/slots/{slot}/improve": {
            "post": {
                "summary": "Improve item",
                "tags": [
                    "forge"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.ImproveOutcome"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Slot index",
                        "name": "slot",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/profiles/{id}/slots/{slot}/sell": {
            "post": {
                "summary": "Sell item",
                "tags": [
                    "forge"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.SaleResult"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Slot index",
                        "name": "slot",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/profiles/{id}/energy/sleep": {
            "post": {
                "summary": "Start sleeping",
                "tags": [
                    "energy"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.View"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/profiles/{id}/energy/wake": {
            "post": {
                "summary": "Wake up",
                "tags": [
                    "energy"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.View"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/v1/profiles/{id}/energy/spend": {
            "post": {
                "summary": "Spend energy",
                "tags": [
                    "energy"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.View"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Amount",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.SpendEnergyRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/profiles/{id}/energy/tick": {
            "post": {
                "summary": "Tick energy",
                "tags": [
                    "energy"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.TickOutcome"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Elapsed time, e.g. 10s",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.TickEnergyRequest"
                        }
                    }
                ]
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.VersionInfo": {
            "type": "object",
            "properties": {
                "service": {
                    "type": "string"
                },
                "version": {
                    "type": "string"
                },
                "go_version": {
                    "type": "string"
                },
                "git_commit": {
                    "type": "string"
                }
            }
        },
        "handler.CreateProfileRequest": {
            "type": "object",
            "properties": {
                "opening_balance": {
                    "type": "integer"
                }
            }
        },
        "handler.ClaimRewardsRequest": {
            "type": "object",
            "properties": {
                "policy": {
                    "$ref": "#/definitions/loot.RewardPolicy"
                },
                "bonus_currency": {
                    "type": "integer"
                }
            }
        },
        "handler.SpendEnergyRequest": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "integer"
                }
            }
        },
        "handler.TickEnergyRequest": {
            "type": "object",
            "properties": {
                "elapsed": {
                    "type": "string"
                }
            }
        },
        "handler.GenerateLootResponse": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "rewards": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.ItemArchetype"
                    }
                }
            }
        },
        "loot.RewardPolicy": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "tiers": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "mode": {
                    "type": "string",
                    "enum": [
                        "even",
                        "random"
                    ]
                },
                "forced_rewards": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.Stats": {
            "type": "object",
            "properties": {
                "hp": {
                    "type": "integer"
                },
                "mana": {
                    "type": "integer"
                },
                "attack": {
                    "type": "integer"
                },
                "defense": {
                    "type": "integer"
                },
                "attack_speed": {
                    "type": "integer"
                },
                "crit_chance": {
                    "type": "integer"
                },
                "crit_damage": {
                    "type": "integer"
                },
                "luck": {
                    "type": "integer"
                },
                "dexterity": {
                    "type": "integer"
                }
            }
        },
        "domain.ItemArchetype": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "display_text": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "slot": {
                    "type": "string"
                },
                "rarity": {
                    "type": "string"
                },
                "price": {
                    "type": "integer"
                },
                "base_stats": {
                    "$ref": "#/definitions/domain.Stats"
                }
            }
        },
        "profile.ItemView": {
            "type": "object",
            "properties": {
                "instance_id": {
                    "type": "string"
                },
                "archetype": {
                    "type": "string"
                },
                "display_text": {
                    "type": "string"
                },
                "slot": {
                    "type": "string"
                },
                "rarity": {
                    "type": "string"
                },
                "level": {
                    "type": "integer"
                },
                "stats": {
                    "$ref": "#/definitions/domain.Stats"
                }
            }
        },
        "profile.SlotView": {
            "type": "object",
            "properties": {
                "index": {
                    "type": "integer"
                },
                "empty": {
                    "type": "boolean"
                },
                "invalid": {
                    "type": "boolean"
                },
                "encoding": {
                    "type": "string"
                },
                "item": {
                    "$ref": "#/definitions/profile.ItemView"
                }
            }
        },
        "profile.View": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "balance": {
                    "type": "integer"
                },
                "energy": {
                    "type": "object",
                    "properties": {
                        "current": {
                            "type": "integer"
                        },
                        "mode": {
                            "type": "string"
                        },
                        "sleep_started_at": {
                            "type": "string"
                        }
                    }
                },
                "slots": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/profile.SlotView"
                    }
                },
                "free_slots": {
                    "type": "integer"
                }
            }
        },
        "profile.ClaimResult": {
            "type": "object",
            "properties": {
                "stored": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/profile.SlotView"
                    }
                },
                "overflow": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "balance": {
                    "type": "integer"
                }
            }
        },
        "profile.ImprovePreview": {
            "type": "object",
            "properties": {
                "item": {
                    "$ref": "#/definitions/profile.ItemView"
                },
                "cost": {
                    "type": "integer"
                },
                "at_max_level": {
                    "type": "boolean"
                },
                "can_afford": {
                    "type": "boolean"
                },
                "balance": {
                    "type": "integer"
                },
                "projected_stats": {
                    "$ref": "#/definitions/domain.Stats"
                }
            }
        },
        "profile.ImproveOutcome": {
            "type": "object",
            "properties": {
                "cost": {
                    "type": "integer"
                },
                "old_level": {
                    "type": "integer"
                },
                "new_level": {
                    "type": "integer"
                },
                "new_balance": {
                    "type": "integer"
                },
                "item": {
                    "$ref": "#/definitions/profile.ItemView"
                }
            }
        },
        "profile.SaleResult": {
            "type": "object",
            "properties": {
                "item": {
                    "$ref": "#/definitions/profile.ItemView"
                },
                "price": {
                    "type": "integer"
                },
                "new_balance": {
                    "type": "integer"
                }
            }
        },
        "profile.TickOutcome": {
            "type": "object",
            "properties": {
                "gained": {
                    "type": "integer"
                },
                "woke": {
                    "type": "boolean"
                },
                "profile": {
                    "$ref": "#/definitions/profile.View"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "security": [
        {
            "ApiKeyAuth": []
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "EmberForge API",
	Description:      "Loot generation, item forging and energy for player profiles.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
