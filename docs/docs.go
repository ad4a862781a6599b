// Package docs holds the OpenAPI description served under the docs path.
// Regenerate with swag init after changing handler annotations.
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
        "/ping": {
            "get": {
                "summary": "Liveness probe",
                "tags": [
                    "health"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "models.MessageResponse"
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "summary": "Sign in",
                "description": "Any non-empty password is accepted. The email selects the persona: addresses containing \"admin\" are administrators, \"business\" are business users.",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Credentials",
                        "name": "login",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.LoginResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/auth/me": {
            "get": {
                "summary": "Current user",
                "tags": [
                    "auth"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "models.User"
                    },
                    "401": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "summary": "Sign out",
                "tags": [
                    "auth"
                ],
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                }
            }
        },
        "/navigation": {
            "get": {
                "summary": "Sidebar navigation for the caller",
                "tags": [
                    "navigation"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "models.ItemsResponse[guard.NavItem]"
                    }
                }
            }
        },
        "/routes": {
            "get": {
                "summary": "Dashboard page table",
                "tags": [
                    "navigation"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "models.ItemsResponse[guard.Route]"
                    }
                }
            }
        },
        "/routes/check": {
            "get": {
                "summary": "Guard decision for a page",
                "description": "Reports whether the caller may open the page and where they would be redirected otherwise.",
                "tags": [
                    "navigation"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Page path",
                        "name": "path",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "guard.Result"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/balance/transfer": {
            "post": {
                "summary": "Transfer airtime between subscribers",
                "tags": [
                    "balance"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Transfer",
                        "name": "transfer",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.MessageResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/balance/adjust": {
            "post": {
                "summary": "Credit or debit a balance",
                "description": "Simulated; fails with 500 for about 15% of calls.",
                "tags": [
                    "balance"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Adjustment",
                        "name": "adjustment",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.AdjustBalanceResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    },
                    "500": {
                        "description": "models.AdjustBalanceResponse"
                    }
                }
            }
        },
        "/balance/recharge/pin": {
            "post": {
                "summary": "Recharge with a voucher PIN",
                "tags": [
                    "balance"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Recharge",
                        "name": "recharge",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.PinRechargeResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    },
                    "422": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/balance/recharge/pinless": {
            "post": {
                "summary": "Recharge from a payment channel",
                "tags": [
                    "balance"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Recharge",
                        "name": "recharge",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "models.PinlessRechargeResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    },
                    "500": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/balance": {
            "get": {
                "summary": "Account profile and balances",
                "tags": [
                    "balance"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Subscriber number",
                        "name": "msisdn",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.AccountData"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/bundles/gift": {
            "post": {
                "summary": "Gift a bundle",
                "tags": [
                    "bundles"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Gift",
                        "name": "gift",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.MessageResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/bundles/loan": {
            "post": {
                "summary": "Take a bundle on loan",
                "tags": [
                    "bundles"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Loan",
                        "name": "loan",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.MessageResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/subscriptions": {
            "get": {
                "summary": "Subscribed bundles",
                "tags": [
                    "bundles"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Subscriber number",
                        "name": "msisdn",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.ItemsResponse[models.Subscription]"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/cvm/bundles/{bundleId}": {
            "get": {
                "summary": "Buckets of a CVM bundle",
                "tags": [
                    "cvm"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Bundle ID",
                        "name": "bundleId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.CVMBucketsResponse"
                    }
                }
            }
        },
        "/cvm/subscribe": {
            "post": {
                "summary": "Subscribe to a CVM bundle with custom bucket values",
                "tags": [
                    "cvm"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Subscription",
                        "name": "subscription",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.MessageResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/bundle-details": {
            "get": {
                "summary": "Catalog details of a bundle",
                "description": "Simulated; about 10% of lookups return 404.",
                "tags": [
                    "bundles"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "NCC ID",
                        "name": "nccId",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.BundleDetailsResponse"
                    },
                    "400": {
                        "description": "models.BundleDetailsResponse"
                    },
                    "404": {
                        "description": "models.BundleDetailsResponse"
                    }
                }
            }
        },
        "/notification-messages": {
            "get": {
                "summary": "Notification messages of a bundle in every language",
                "tags": [
                    "bundles"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "NCC ID",
                        "name": "nccId",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Notification ID",
                        "name": "notificationId",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.NotificationMessagesResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/bundle-subscribe": {
            "post": {
                "summary": "Subscribe to a catalog bundle",
                "description": "Simulated; about 15% of subscriptions fail with 422.",
                "tags": [
                    "bundles"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Subscription",
                        "name": "subscription",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.SubscribeBundleResponse"
                    },
                    "400": {
                        "description": "models.SubscribeBundleResponse"
                    },
                    "422": {
                        "description": "models.SubscribeBundleResponse"
                    }
                }
            }
        },
        "/master-notifications": {
            "get": {
                "summary": "List master notifications",
                "tags": [
                    "notifications"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Comma separated business units",
                        "name": "bu",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "DATA, VOICE or SMS",
                        "name": "resourceType",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "DAILY, WEEKLY, MONTHLY, UNLIMITED or MEGA",
                        "name": "validity",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Bundle type",
                        "name": "bundleType",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Notification type",
                        "name": "notificationType",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Dynamic pricing",
                        "name": "dynamicPrice",
                        "in": "query",
                        "required": false,
                        "type": "boolean"
                    },
                    {
                        "description": "Matches name, bundle type and English content",
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Page, from 1",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Page size, at most 50",
                        "name": "pageSize",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.PageResponse[models.MasterNotification]"
                    }
                }
            },
            "post": {
                "summary": "Create a master notification",
                "description": "Dynamic pricing on UNLIMITED and MEGA bundles clears the price; otherwise a missing price is stored as 0.",
                "tags": [
                    "notifications"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Template",
                        "name": "notification",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "models.MasterNotification"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/master-notifications/{id}": {
            "get": {
                "summary": "Get a master notification",
                "tags": [
                    "notifications"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Master notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.MasterNotification"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            },
            "put": {
                "summary": "Update a master notification",
                "tags": [
                    "notifications"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Master notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Fields to change",
                        "name": "patch",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.MasterNotification"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            },
            "delete": {
                "summary": "Delete a master notification",
                "tags": [
                    "notifications"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Master notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.OKResponse"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/notifications": {
            "get": {
                "summary": "List notifications",
                "tags": [
                    "notifications"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Business unit",
                        "name": "businessUnit",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Resource type",
                        "name": "resourceType",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Validity",
                        "name": "validity",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Bundle type",
                        "name": "bundleType",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Notification type",
                        "name": "notificationType",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Matches NCC ID and content",
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Page, from 1",
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Page size, at most 50",
                        "name": "pageSize",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.PageResponse[models.NotificationItem]"
                    }
                }
            }
        },
        "/notifications/{id}": {
            "get": {
                "summary": "Get a notification",
                "tags": [
                    "notifications"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.NotificationItem"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            },
            "put": {
                "summary": "Update a notification",
                "tags": [
                    "notifications"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Fields to change",
                        "name": "patch",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.NotificationItem"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            },
            "delete": {
                "summary": "Delete a notification",
                "tags": [
                    "notifications"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.OKResponse"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/notifications/{id}/regenerate": {
            "post": {
                "summary": "Regenerate notification content",
                "tags": [
                    "notifications"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.NotificationItem"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/notifications/{id}/download": {
            "get": {
                "summary": "Download notification content",
                "tags": [
                    "notifications"
                ],
                "produces": [
                    "text/plain"
                ],
                "parameters": [
                    {
                        "description": "Notification ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "string"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/rates/roaming/upload": {
            "post": {
                "summary": "Upload a roaming rate sheet",
                "description": "Accepts a CSV sheet in the multipart field \"file\" and stores it as a new version. Without a file the sample sheets are restored.",
                "tags": [
                    "rates"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Rate sheet CSV",
                        "name": "file",
                        "in": "formData",
                        "required": false,
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.UploadResponse"
                    },
                    "201": {
                        "description": "models.UploadResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/rates/roaming": {
            "get": {
                "summary": "Roaming rates",
                "tags": [
                    "rates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Version, newest by default",
                        "name": "version",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.RatesResponse"
                    }
                }
            }
        },
        "/rates/roaming/versions": {
            "get": {
                "summary": "Roaming rate versions, newest first",
                "tags": [
                    "rates"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "models.RateVersionsResponse"
                    }
                }
            }
        },
        "/rates/roaming/download-excel": {
            "get": {
                "summary": "Download the processed roaming sheet",
                "tags": [
                    "rates"
                ],
                "produces": [
                    "text/csv"
                ],
                "responses": {
                    "200": {
                        "description": "file"
                    }
                }
            }
        },
        "/rates/roaming/download-zip": {
            "get": {
                "summary": "Download rate ids per tariff plan",
                "tags": [
                    "rates"
                ],
                "produces": [
                    "application/zip"
                ],
                "responses": {
                    "200": {
                        "description": "file"
                    }
                }
            }
        },
        "/rates/international/upload": {
            "post": {
                "summary": "Upload an international rate sheet",
                "tags": [
                    "rates"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Rate sheet CSV",
                        "name": "file",
                        "in": "formData",
                        "required": false,
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.UploadResponse"
                    },
                    "201": {
                        "description": "models.UploadResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/rates/international": {
            "get": {
                "summary": "International rates",
                "tags": [
                    "rates"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Version, newest by default",
                        "name": "version",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.RatesResponse"
                    }
                }
            }
        },
        "/rates/international/versions": {
            "get": {
                "summary": "International rate versions, newest first",
                "tags": [
                    "rates"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "models.RateVersionsResponse"
                    }
                }
            }
        },
        "/rates/mapping": {
            "get": {
                "summary": "Rate mapping table",
                "tags": [
                    "rates"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "models.ItemsResponse[models.MappingRow]"
                    }
                }
            }
        },
        "/rates/mapping/download": {
            "get": {
                "summary": "Download the rate mapping table",
                "tags": [
                    "rates"
                ],
                "produces": [
                    "text/csv"
                ],
                "responses": {
                    "200": {
                        "description": "file"
                    }
                }
            }
        },
        "/rates/mapping/compare": {
            "post": {
                "summary": "Compare a mapping table with the current one",
                "description": "The candidate is a JSON {items} body or a CSV in the multipart field \"file\". Without a candidate the reference comparison is returned.",
                "tags": [
                    "rates"
                ],
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Candidate table",
                        "name": "candidate",
                        "in": "body",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.MappingDiff"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/users": {
            "get": {
                "summary": "List users",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "models.ItemsResponse[models.UserRow]"
                    }
                }
            },
            "post": {
                "summary": "Register a user",
                "description": "Sends a welcome email when mail is enabled.",
                "tags": [
                    "users"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "models.UserRow"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/users/{id}": {
            "get": {
                "summary": "Get a user",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.UserRow"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            },
            "put": {
                "summary": "Update a user",
                "tags": [
                    "users"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Fields to change",
                        "name": "patch",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.UserRow"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            },
            "delete": {
                "summary": "Delete a user",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.OKResponse"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/users/password": {
            "post": {
                "summary": "Change a user's password",
                "tags": [
                    "users"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Passwords",
                        "name": "password",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.OKResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    },
                    "404": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/utilities/tax": {
            "post": {
                "summary": "Airtime tax calculator",
                "description": "mode \"net\" treats the amount as pre-tax, \"gross\" as tax inclusive. The rate is 20.75%.",
                "tags": [
                    "utilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "Amount and mode",
                        "name": "tax",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.TaxResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/utilities/convert/data": {
            "post": {
                "summary": "Convert data units",
                "tags": [
                    "utilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "byte, kb, mb, gb or tb",
                        "name": "conversion",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.ConvertResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/utilities/convert/time": {
            "post": {
                "summary": "Convert time units",
                "tags": [
                    "utilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "second, minute, hour or day",
                        "name": "conversion",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.ConvertResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        },
        "/utilities/convert/epoch": {
            "post": {
                "summary": "Convert between dates and Unix seconds",
                "tags": [
                    "utilities"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "schema": {
                            "type": "object"
                        },
                        "description": "mode to_epoch or from_epoch",
                        "name": "conversion",
                        "in": "body",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "models.EpochResponse"
                    },
                    "400": {
                        "description": "models.ErrorResponse"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "v1",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "NCC UAT Admin API",
	Description:      "Back-office API for the NCC UAT dashboard: bundles, balances, notifications, rates, users and utilities.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
