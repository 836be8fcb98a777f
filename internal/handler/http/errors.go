// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

// Client-facing messages produced by the transport layer itself, before a
// request reaches the service layer.
const (
	msgMissingFields      = "Missing required fields"
	msgMissingUserID      = "Missing required field: userid"
	msgExpectedMultipart  = "Expected multipart form data"
	msgInvalidFormData    = "Invalid form data"
	msgUploadTooLarge     = "Uploaded data is too large"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgInvalidModelID     = "Invalid model ID"
	msgModelIDRequired    = "Model ID is required"
	msgAdminRequired      = "Unauthorized: Admin access required"
	msgInvalidAuthHeader  = "Invalid `Authorization` header"
	msgInvalidSize        = "Invalid size"
	msgInvalidListedParam = "Invalid listed_only value"
)

const (
	msgModelFieldsRequired = "Model name, file, and description are required"
	msgInvalidListJSON     = "Axis and rotations must be JSON lists"
)
