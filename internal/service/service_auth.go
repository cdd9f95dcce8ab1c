package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-user-auth/internal/crypto"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

// dummyPassword is hashed once and verified against whenever a login names
// an unknown user, so both failure paths cost one bcrypt comparison.
const dummyPassword = "go-user-auth/dummy-password"

// authService is the concrete implementation of [AuthService].
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes new passwords and verifies login attempts.
	hasher crypto.PasswordHasher

	// tokenService issues tokens on login and validates presented ones.
	tokenService TokenService

	// validator checks request bodies before they reach the store.
	validator validators.Validator

	// dummyHash returns the hash of dummyPassword at the hasher's
	// configured cost. It is computed once, at construction.
	dummyHash func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs a new [AuthService].
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokenService TokenService,
	validator validators.Validator,
	logger *logger.Logger,
) AuthService {
	svc := &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		validator:      validator,
		dummyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash(dummyPassword)
		}),
		logger: logger,
	}

	// the first unknown-user login must not pay for a second bcrypt
	if _, err := svc.dummyHash(); err != nil {
		logger.Err(err).Msg("error hashing dummy password")
	}

	return svc
}

// RegisterUser creates a new user account.
//
// The username and email are checked for availability first; the store's
// unique constraint remains authoritative for concurrent submissions. The
// password is hashed before it reaches the store.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the request fails validation.
//   - ErrUsernameTaken / ErrEmailTaken when a value is already in use.
//   - ErrRegistrationConflict wrapping store.ErrUserAlreadyExists when a
//     concurrent registration won the race.
//   - A wrapped storage error for any other failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegistrationRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Object("request", req).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	usernameTaken, err := a.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("username availability check failed")
		return models.User{}, fmt.Errorf("username availability check failed: %w", err)
	}
	if usernameTaken {
		log.Info().Str("username", req.Username).Msg("registration rejected: username already exists")
		return models.User{}, ErrUsernameTaken
	}

	emailTaken, err := a.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("email availability check failed")
		return models.User{}, fmt.Errorf("email availability check failed: %w", err)
	}
	if emailTaken {
		log.Info().Str("email", req.Email).Msg("registration rejected: email is already being used")
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Info().Object("request", req).Msg("registration rejected by unique constraint")
			return models.User{}, fmt.Errorf("%w: %w", ErrRegistrationConflict, err)
		}
		log.Err(err).Object("request", req).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Object("user", user).Msg("user registered")
	return user, nil
}

// Authenticate verifies credentials against the stored password hash.
//
// Unknown usernames are verified against a dummy hash so that both failure
// paths perform the same work and return the same error.
//
// Returns the identity of the user or:
//   - ErrInvalidCredentials for an unknown user, a wrong password or an
//     incomplete submission.
//   - A wrapped storage error if the lookup fails for another reason.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		a.burnVerification(ctx, credentials.Password)
		log.Info().Err(err).Msg("authentication rejected: incomplete credentials")
		return models.Identity{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.burnVerification(ctx, credentials.Password)
		log.Info().Object("credentials", credentials).Msg("authentication rejected: unknown user")
		return models.Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Object("credentials", credentials).Msg("user search by username failed")
		return models.Identity{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(credentials.Password, user.PasswordHash) {
		log.Info().Object("credentials", credentials).Msg("authentication rejected: wrong password")
		return models.Identity{}, ErrInvalidCredentials
	}

	return models.NewIdentity(user), nil
}

// Login authenticates credentials and issues a token for the identity.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	identity, err := a.Authenticate(ctx, credentials)
	if err != nil {
		return models.Token{}, err
	}

	token, err := a.tokenService.Issue(ctx, identity)
	if err != nil {
		return models.Token{}, err
	}

	logger.FromContext(ctx).Info().
		Int64("id", identity.UserID).
		Str("username", identity.Username).
		Time("expires_at", token.ExpiresAt).
		Msg("token issued")

	return token, nil
}

// ResolveToken implements [AuthService].
func (a *authService) ResolveToken(ctx context.Context, tokenString string) (models.Identity, models.TokenValidation) {
	validation := a.tokenService.Validate(ctx, tokenString)
	if !validation.Valid {
		return models.Identity{}, validation
	}

	user, err := a.userRepository.FindUserByUsername(ctx, validation.Subject)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.Identity{}, models.InvalidToken(models.ReasonUnknownSubject)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("subject", validation.Subject).Msg("token subject lookup failed")
		return models.Identity{}, models.InvalidToken(models.ReasonLookupFailed)
	}

	return models.NewIdentity(user), validation
}

// burnVerification runs one password verification against the dummy hash.
func (a *authService) burnVerification(ctx context.Context, password string) {
	dummyHash, err := a.dummyHash()
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("dummy hash unavailable")
		return
	}
	a.hasher.Verify(password, dummyHash)
}
