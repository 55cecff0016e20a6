// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// AccessScope tells repositories which rows a caller may see.
type AccessScope int

const (
	// AccessScopeUser restricts reads to rows owned by UserID.
	AccessScopeUser AccessScope = iota + 1
	// AccessScopeService is the privileged scope used by schedulers and OAuth callbacks.
	AccessScopeService
)

// Sync modes reported in responses and job logs.
const (
	ModeExternal = "external"
	ModeInternal = "internal"
)

// AccessContext is threaded through usecases so the privilege boundary is visible at call sites.
type AccessContext struct {
	Scope  AccessScope
	UserID uuid.UUID
}

// UserScoped returns an access context limited to the given user.
func UserScoped(userID uuid.UUID) AccessContext {
	return AccessContext{Scope: AccessScopeUser, UserID: userID}
}

// ServiceScoped returns the privileged access context.
func ServiceScoped() AccessContext {
	return AccessContext{Scope: AccessScopeService}
}

// IsService reports whether the context bypasses ownership filters.
func (a AccessContext) IsService() bool {
	return a.Scope == AccessScopeService
}

// Mode maps the scope to the sync mode label.
func (a AccessContext) Mode() string {
	if a.IsService() {
		return ModeInternal
	}

	return ModeExternal
}

// CanSee reports whether a row owned by ownerID is visible in this context.
func (a AccessContext) CanSee(ownerID uuid.UUID) bool {
	return a.IsService() || a.UserID == ownerID
}
