package auth

const (
	// ContextKeyUserID holds the authenticated user's id in the echo context.
	ContextKeyUserID = "user_id"

	// HeaderToken is the session token header, a wire contract with clients.
	HeaderToken = "X-Token"

	jsonKeyError = "error"

	tokenKeyPrefix = "auth_"
)

const (
	msgUnauthorized = "Unauthorized"

	errFailedStoreTokenFmt  = "failed to store token: %w"
	errFailedLookupTokenFmt = "failed to look up token: %w"
	errFailedRevokeTokenFmt = "failed to revoke token: %w"
)
