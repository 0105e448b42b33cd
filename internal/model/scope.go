package model

// Scope carries the authenticated caller identity through a request.
type Scope struct {
	UserID string
}
