package access

import (
	"net/url"
	"time"

	"cohesion-academy/internal/domain/roles"
	"cohesion-academy/internal/domain/schedule"
)

// Evaluate decides what a viewer gets for a protected item:
// anonymous -> RequiresAuth; free item, admin, or an active membership
// window -> Unlocked; everyone else sees metadata with the media withheld.
//
// A zero now fails closed. The gate must never default to Unlocked when the
// clock is unavailable.
func Evaluate(now time.Time, id *Identity, item Item) Decision {
	if id == nil {
		return RequiresAuth
	}
	if now.IsZero() {
		return LockedPreview
	}
	if item.IsFree {
		return Unlocked
	}
	if id.Role == roles.Admin {
		return Unlocked
	}
	if schedule.Active(now, id.SubscriptionStart, id.SubscriptionEnd) {
		return Unlocked
	}
	return LockedPreview
}

// EvaluateRoute is the whole-page variant. Unlike the content gate it never
// previews: anonymous viewers are sent to login with the intended
// destination preserved, authenticated-but-under-ranked viewers to the
// dashboard. Content stays discoverable; admin-only surfaces do not.
func EvaluateRoute(id *Identity, required roles.Role, intended string) RouteDecision {
	if id == nil {
		loc := "/login"
		if intended != "" {
			loc += "?from=" + url.QueryEscape(intended)
		}
		return RouteDecision{Action: RouteRedirectLogin, Location: loc}
	}
	if !roles.Satisfies(id.Role, required) {
		return RouteDecision{Action: RouteRedirectHome, Location: "/dashboard"}
	}
	return RouteDecision{Action: RouteAllow}
}
