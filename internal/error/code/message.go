package code

// Error code to message mapping
var codeMessageMap = map[int]string{
	// Generic error codes
	ErrSuccess:          "success",
	ErrUnknown:          "unknown error",
	ErrBind:             "request binding error",
	ErrValidation:       "request validation error",
	ErrTokenInvalid:     "invalid authentication token",
	ErrPermissionDenied: "insufficient permissions",
	ErrTooManyRequests:  "too many requests",

	// Property error codes
	ErrPropertyNotFound:   "property does not exist",
	ErrPropertySaveFailed: "failed to save property",

	// Room error codes
	ErrRoomGroupNotFound:  "room type does not exist",
	ErrRoomDeleteConflict: "room has active reservations",
	ErrRoomSaveFailed:     "failed to save rooms",
	ErrRoomReorderInvalid: "invalid reorder position",

	// Staff error codes
	ErrStaffNotFound:          "staff member does not exist",
	ErrStaffEmailImmutable:    "email cannot be changed after creation",
	ErrStaffRoleNotAssignable: "role is not assignable by the current user",

	// Invitation error codes
	ErrInvitationNotFound: "invitation does not exist",
	ErrInvitationExpired:  "invitation is no longer pending",

	// Draft error codes
	ErrDraftNotFound:    "no draft saved under this key",
	ErrDraftStoreFailed: "failed to persist draft",

	// Upload error codes
	ErrUploadPresignFailed: "failed to presign upload",
	ErrUploadPutFailed:     "failed to upload file to storage",

	// Geocode error codes
	ErrGeocodeFailed:          "failed to geocode address",
	ErrGeocodeAddressTooShort: "address is too short to geocode",

	// Upstream error codes
	ErrUpstream:        "upstream API error",
	ErrUpstreamTimeout: "upstream API timed out",

	// Database error codes
	ErrDatabase:       "database error",
	ErrRecordNotFound: "record does not exist",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	// Generic error codes
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// Property error codes
	ErrPropertyNotFound:   StatusNotFound,
	ErrPropertySaveFailed: StatusBadGateway,

	// Room error codes
	ErrRoomGroupNotFound:  StatusNotFound,
	ErrRoomDeleteConflict: StatusConflict,
	ErrRoomSaveFailed:     StatusBadGateway,
	ErrRoomReorderInvalid: StatusBadRequest,

	// Staff error codes
	ErrStaffNotFound:          StatusNotFound,
	ErrStaffEmailImmutable:    StatusBadRequest,
	ErrStaffRoleNotAssignable: StatusForbidden,

	// Invitation error codes
	ErrInvitationNotFound: StatusNotFound,
	ErrInvitationExpired:  StatusBadRequest,

	// Draft error codes
	ErrDraftNotFound:    StatusNotFound,
	ErrDraftStoreFailed: StatusInternalServerError,

	// Upload error codes
	ErrUploadPresignFailed: StatusBadGateway,
	ErrUploadPutFailed:     StatusBadGateway,

	// Geocode error codes
	ErrGeocodeFailed:          StatusBadGateway,
	ErrGeocodeAddressTooShort: StatusBadRequest,

	// Upstream error codes
	ErrUpstream:        StatusBadGateway,
	ErrUpstreamTimeout: StatusBadGateway,

	// Database error codes
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "unknown error"
}

// GetStatus returns the HTTP status for an error code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
