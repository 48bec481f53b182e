package access

import (
	"testing"
	"time"

	"cohesion-academy/internal/domain/roles"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func tsp(s string) *time.Time {
	t := ts(s)
	return &t
}

func member(end string) *Identity {
	return &Identity{
		UserID:          "u1",
		Role:            roles.Student,
		SubscriptionEnd: tsp(end),
	}
}

func TestEvaluate(t *testing.T) {
	now := ts("2024-06-01T00:00:00Z")

	tests := []struct {
		name string
		now  time.Time
		id   *Identity
		item Item
		want Decision
	}{
		{"anonymous premium", now, nil, Item{}, RequiresAuth},
		{"anonymous free still requires auth", now, nil, Item{IsFree: true}, RequiresAuth},
		{"free item unlocks regardless of membership", now, member("2020-01-01T00:00:00Z"), Item{IsFree: true}, Unlocked},
		{"active membership unlocks", now, member("2099-01-01T00:00:00Z"), Item{}, Unlocked},
		{"expired membership previews", now, member("2020-01-01T00:00:00Z"), Item{}, LockedPreview},
		{"future membership window previews", now, &Identity{UserID: "u1", Role: roles.Student, SubscriptionStart: tsp("2099-01-01T00:00:00Z"), SubscriptionEnd: tsp("2100-01-01T00:00:00Z")}, Item{}, LockedPreview},
		{"open-ended membership unlocks", now, &Identity{UserID: "u1", Role: roles.Student, SubscriptionStart: tsp("2024-01-01T00:00:00Z")}, Item{}, Unlocked},
		{"no membership at all previews", now, &Identity{UserID: "u1", Role: roles.Student, SubscriptionStart: tsp("2099-01-01T00:00:00Z")}, Item{}, LockedPreview},
		{"admin bypasses expired membership", now, &Identity{UserID: "a1", Role: roles.Admin, SubscriptionEnd: tsp("2020-01-01T00:00:00Z")}, Item{}, Unlocked},
		{"instructor without membership previews", now, &Identity{UserID: "i1", Role: roles.Instructor}, Item{}, LockedPreview},
		{"zero clock fails closed", time.Time{}, member("2099-01-01T00:00:00Z"), Item{}, LockedPreview},
		{"zero clock fails closed even for free items", time.Time{}, member("2099-01-01T00:00:00Z"), Item{IsFree: true}, LockedPreview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.now, tt.id, tt.item); got != tt.want {
				t.Errorf("Evaluate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluateRoute(t *testing.T) {
	tests := []struct {
		name     string
		id       *Identity
		required roles.Role
		intended string
		want     RouteDecision
	}{
		{
			name:     "anonymous redirects to login with destination",
			required: roles.Student,
			intended: "/courses/42",
			want:     RouteDecision{Action: RouteRedirectLogin, Location: "/login?from=%2Fcourses%2F42"},
		},
		{
			name:     "anonymous without destination",
			required: roles.Student,
			want:     RouteDecision{Action: RouteRedirectLogin, Location: "/login"},
		},
		{
			name:     "student blocked from admin surface",
			id:       &Identity{UserID: "u1", Role: roles.Student},
			required: roles.Admin,
			intended: "/admin",
			want:     RouteDecision{Action: RouteRedirectHome, Location: "/dashboard"},
		},
		{
			name:     "instructor blocked from admin surface",
			id:       &Identity{UserID: "i1", Role: roles.Instructor},
			required: roles.Admin,
			want:     RouteDecision{Action: RouteRedirectHome, Location: "/dashboard"},
		},
		{
			name:     "instructor allowed on instructor surface",
			id:       &Identity{UserID: "i1", Role: roles.Instructor},
			required: roles.Instructor,
			want:     RouteDecision{Action: RouteAllow},
		},
		{
			name:     "admin allowed everywhere",
			id:       &Identity{UserID: "a1", Role: roles.Admin},
			required: roles.Instructor,
			want:     RouteDecision{Action: RouteAllow},
		},
		{
			name:     "destination with query survives escaping",
			required: roles.Student,
			intended: "/courses/42?unit=3",
			want:     RouteDecision{Action: RouteRedirectLogin, Location: "/login?from=%2Fcourses%2F42%3Funit%3D3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRoute(tt.id, tt.required, tt.intended)
			if got != tt.want {
				t.Errorf("EvaluateRoute() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
