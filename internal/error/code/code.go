package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: not authenticated.
	StatusUnauthorized = 401
	// StatusForbidden - 403: not permitted.
	StatusForbidden = 403
	// StatusNotFound - 404: resource does not exist.
	StatusNotFound = 404
	// StatusConflict - 409: resource state conflict.
	StatusConflict = 409
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
	// StatusBadGateway - 502: upstream failure.
	StatusBadGateway = 502
	// StatusTooManyRequests - 429: too many requests.
	StatusTooManyRequests = 429
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenInvalid - 401: invalid token.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: insufficient role rank.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// Property error codes (101xxx).
const (
	// ErrPropertyNotFound - 404: property does not exist.
	ErrPropertyNotFound int = iota + 101000
	// ErrPropertySaveFailed - 502: property save rejected upstream.
	ErrPropertySaveFailed
)

// Room error codes (102xxx).
const (
	// ErrRoomGroupNotFound - 404: room type does not exist.
	ErrRoomGroupNotFound int = iota + 102000
	// ErrRoomDeleteConflict - 409: room has active reservations.
	ErrRoomDeleteConflict
	// ErrRoomSaveFailed - 502: room create/update rejected upstream.
	ErrRoomSaveFailed
	// ErrRoomReorderInvalid - 400: reorder indices out of range.
	ErrRoomReorderInvalid
)

// Staff error codes (103xxx).
const (
	// ErrStaffNotFound - 404: staff member does not exist.
	ErrStaffNotFound int = iota + 103000
	// ErrStaffEmailImmutable - 400: email cannot be changed after creation.
	ErrStaffEmailImmutable
	// ErrStaffRoleNotAssignable - 403: role outside the actor's assignable range.
	ErrStaffRoleNotAssignable
)

// Invitation error codes (104xxx).
const (
	// ErrInvitationNotFound - 404: invitation does not exist.
	ErrInvitationNotFound int = iota + 104000
	// ErrInvitationExpired - 400: invitation is no longer pending.
	ErrInvitationExpired
)

// Draft error codes (105xxx).
const (
	// ErrDraftNotFound - 404: no draft under the storage key.
	ErrDraftNotFound int = iota + 105000
	// ErrDraftStoreFailed - 500: draft persistence error.
	ErrDraftStoreFailed
)

// Upload error codes (106xxx).
const (
	// ErrUploadPresignFailed - 502: presign request rejected.
	ErrUploadPresignFailed int = iota + 106000
	// ErrUploadPutFailed - 502: direct PUT to storage failed.
	ErrUploadPutFailed
)

// Geocode error codes (107xxx).
const (
	// ErrGeocodeFailed - 502: geocode endpoint failure.
	ErrGeocodeFailed int = iota + 107000
	// ErrGeocodeAddressTooShort - 400: address below the minimum length.
	ErrGeocodeAddressTooShort
)

// Upstream error codes (108xxx).
const (
	// ErrUpstream - 502: upstream API failure.
	ErrUpstream int = iota + 108000
	// ErrUpstreamTimeout - 502: upstream API timed out.
	ErrUpstreamTimeout
)

// Database error codes (109xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 109000
	// ErrRecordNotFound - 404: record does not exist.
	ErrRecordNotFound
)
