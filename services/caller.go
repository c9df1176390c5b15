package services

// CallerIdentity is the authenticated identity behind a request, resolved
// fresh from the user store by the auth middleware. Lifecycle operations
// take it as an explicit argument instead of reaching into session state.
type CallerIdentity struct {
	ID      uint
	IsAdmin bool
}
