package service

import (
	"context"
	"time"

	"github.com/MKhiriev/sparknest-admin/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// SessionService owns the authentication state of the client. It is the only
// writer of the persisted session and the only component that hands the
// bearer token to the transport.
type SessionService interface {
	// Restore loads the persisted session at process start. A missing or
	// partial record yields an Anonymous session; a partial record is cleared.
	Restore(ctx context.Context) (models.Session, error)

	// Login authenticates against the backend and persists token and user in
	// one write. On any failure the previous state is kept and an *AuthError
	// is returned.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Register creates an account and returns the backend's message. It never
	// logs the user in.
	Register(ctx context.Context, reg models.Registration) (string, error)

	// Logout clears the persisted session and becomes Anonymous. Calling it
	// while Anonymous succeeds.
	Logout(ctx context.Context) error

	// Session returns a snapshot of the current session.
	Session() models.Session

	// State is a shortcut for Session().State.
	State() models.SessionState

	// CurrentUser returns the logged-in user, ok is false while Anonymous.
	CurrentUser() (user models.User, ok bool)

	// SessionExpiry returns the exp claim of the token when it is a JWT.
	// Informational only: an expired token does not change the state.
	SessionExpiry() (time.Time, bool)
}

// ResourceService maps content operations onto backend calls, one round trip
// each. Inputs are expected to be validated by the caller.
type ResourceService interface {
	List(ctx context.Context, kind models.ResourceKind) ([]models.Entity, error)
	Create(ctx context.Context, kind models.ResourceKind, data models.Entity) (models.Entity, error)
	Update(ctx context.Context, kind models.ResourceKind, id models.ID, data models.Entity) (models.Entity, error)
	Delete(ctx context.Context, kind models.ResourceKind, id models.ID) error
	MarkRead(ctx context.Context, id models.ID) error
}

// DashboardService aggregates the counters of the dashboard screen.
type DashboardService interface {
	// Load lists every kind concurrently. Failures of single kinds are
	// reported in DashboardStats.Errors and do not fail the whole load.
	Load(ctx context.Context) models.DashboardStats
}
