package store

import (
	"context"

	"github.com/MKhiriev/go-user-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Username and email are unique;
// the store's constraints are authoritative for both.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A uniqueness violation yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] when no row matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// FindUserByUsername returns [ErrUserNotFound] when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ListUsers returns every account ordered by UserID.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// HealthChecker reports whether the backing database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator maps driver errors onto store-level decisions.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification
	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
