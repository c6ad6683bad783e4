package model

// PrincipalKind distinguishes the two authenticated segments of the platform.
type PrincipalKind string

const (
	// PrincipalKindUser is an anonymous end-user account (Progress segment).
	PrincipalKindUser PrincipalKind = "user"
	// PrincipalKindInstitution is a partner institution account.
	PrincipalKindInstitution PrincipalKind = "institution"
)

// Principal is the authenticated identity associated with a session:
// either an anonymous end-user or a partner institution. The platform
// issues numeric IDs; DisplayName is the username for users and the
// institution name for institutions.
type Principal struct {
	ID          int64         `json:"id"`
	DisplayName string        `json:"display_name"`
	Kind        PrincipalKind `json:"kind"`
}
