package service

// AuthorizeCreate allows any authenticated identity to create a listing.
// identity is the principal's ID, empty when anonymous.
func AuthorizeCreate(identity string) *AuthorizationError {
	if identity == "" {
		return &AuthorizationError{Reason: DenyUnauthenticated}
	}
	return nil
}

// AuthorizeOwner allows an operation on an existing listing only for its
// owner. The caller must have resolved ownerID before invoking this, so
// nothing about the listing leaks to unauthorized identities.
func AuthorizeOwner(identity, ownerID string) *AuthorizationError {
	if identity == "" {
		return &AuthorizationError{Reason: DenyUnauthenticated}
	}
	if identity != ownerID {
		return &AuthorizationError{Reason: DenyNotOwner}
	}
	return nil
}
