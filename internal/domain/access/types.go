package access

import (
	"time"

	"cohesion-academy/internal/domain/roles"
)

type Decision string

const (
	Unlocked      Decision = "unlocked"
	LockedPreview Decision = "locked_preview"
	RequiresAuth  Decision = "requires_auth"
)

// Identity is the authenticated viewer as the gate sees it. A nil *Identity
// means anonymous.
type Identity struct {
	UserID            string
	Role              roles.Role
	SubscriptionStart *time.Time
	SubscriptionEnd   *time.Time
}

// Item is the protected content unit under evaluation.
type Item struct {
	IsFree       bool
	RequiredRole roles.Role
}

type RouteAction string

const (
	RouteAllow         RouteAction = "allow"
	RouteRedirectLogin RouteAction = "redirect_login"
	RouteRedirectHome  RouteAction = "redirect_home"
)

// RouteDecision is the whole-page variant of the gate: anonymous viewers go
// to login (keeping where they were headed), under-ranked viewers go to the
// dashboard. Never an error page.
type RouteDecision struct {
	Action   RouteAction
	Location string
}
