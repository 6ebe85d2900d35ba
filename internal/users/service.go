// Package users implements the authentication workflow: registration, login
// and password reset, composed from the store gateway, the hashing boundary
// and the verified-write protocol.
package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/masjidapp/backend/internal/logging"
	"github.com/masjidapp/backend/internal/outcome"
	"github.com/masjidapp/backend/internal/security"
	"github.com/masjidapp/backend/internal/store"
	"github.com/masjidapp/backend/internal/verify"
)

// placeholderDigest is a digest of a throwaway secret. Login verifies against
// it when the username is unknown, so the missing-user path pays the same
// bcrypt cost as the wrong-secret path.
const placeholderDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Service struct {
	store  store.Opener
	verify verify.Spec
	logger logging.Logger
}

func NewService(opener store.Opener, spec verify.Spec, logger logging.Logger) *Service {
	return &Service{
		store:  opener,
		verify: spec,
		logger: logger.With("module", "users"),
	}
}

func userExists(ctx context.Context, g store.Gateway, username string) (bool, error) {
	n, err := g.Count(ctx, store.OpGetUsername, username)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanStoredCredentials(r store.RowScanner) (storedCredentials, error) {
	var c storedCredentials
	err := r.Scan(&c.Username, &c.Digest)
	return c, err
}

// Register creates the account unless its username is already taken. The
// secret is hashed before the existence pre-check so the duplicate path does
// not return measurably faster than the success path. The write is confirmed
// by reading the username back; an unconfirmed write reports a failed
// registration, while store errors propagate as errors.
func (s *Service) Register(ctx context.Context, acct Account) (RegistrationOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return RegistrationOutcome{}, err
	}
	defer g.Close()

	digest, err := security.HashSecret(acct.Credentials.Secret)
	if err != nil {
		return RegistrationOutcome{}, fmt.Errorf("error hashing credentials: %w", err)
	}

	exists, err := userExists(ctx, g, acct.Credentials.Username)
	if err != nil {
		return RegistrationOutcome{}, err
	}
	if exists {
		return RegistrationOutcome{Status: AlreadyRegistered}, nil
	}

	params := registerParams{
		firstName: acct.FirstName,
		lastName:  acct.LastName,
		role:      acct.Role,
		email:     acct.Email,
		username:  acct.Credentials.Username,
		digest:    digest,
	}

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpRegisterUser, params.args()...)
		},
		func(ctx context.Context) (bool, error) {
			return userExists(ctx, g, acct.Credentials.Username)
		},
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "registration write not confirmed", "username", acct.Credentials.Username)
		return RegistrationOutcome{Status: RegistrationFailed, Reason: outcome.ReasonVerificationTimedOut}, nil
	}
	if err != nil {
		return RegistrationOutcome{}, err
	}

	s.logger.Info(ctx, "user registered", "username", acct.Credentials.Username)
	return RegistrationOutcome{Status: Registered}, nil
}

// Login checks the submitted secret against the stored digest. Unknown
// usernames and wrong secrets both come back as InvalidCredentials.
func (s *Service) Login(ctx context.Context, creds Credentials) (LoginOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return LoginOutcome{}, err
	}
	defer g.Close()

	stored, found, err := store.One(ctx, g, store.OpGetUserCredentials, scanStoredCredentials, creds.Username)
	if err != nil {
		return LoginOutcome{}, err
	}

	target := placeholderDigest
	if found {
		target = stored.Digest
	}
	if !security.VerifySecret(creds.Secret, target) || !found {
		return LoginOutcome{Status: InvalidCredentials}, nil
	}

	return LoginOutcome{Status: Authenticated, Subject: stored.Username}, nil
}

// ResetPassword replaces the stored digest for an existing user. The write is
// confirmed by reading the digest back and requiring it to differ from the
// pre-reset snapshot; per-call salting guarantees a fresh digest differs even
// when the new secret equals the old one.
func (s *Service) ResetPassword(ctx context.Context, username, newSecret string) (ResetOutcome, error) {
	g, err := s.store.Open(ctx)
	if err != nil {
		return ResetOutcome{}, err
	}
	defer g.Close()

	prior, found, err := store.One(ctx, g, store.OpGetUserCredentials, scanStoredCredentials, username)
	if err != nil {
		return ResetOutcome{}, err
	}
	if !found {
		return ResetOutcome{Status: UserNotFound}, nil
	}

	digest, err := security.HashSecret(newSecret)
	if err != nil {
		return ResetOutcome{}, fmt.Errorf("error hashing credentials: %w", err)
	}

	params := resetPasswordParams{username: username, digest: digest}

	err = verify.Write(ctx, s.verify,
		func(ctx context.Context) error {
			return g.Exec(ctx, store.OpResetUserPassword, params.args()...)
		},
		func(ctx context.Context) (bool, error) {
			current, ok, err := store.One(ctx, g, store.OpGetUserCredentials, scanStoredCredentials, username)
			if err != nil || !ok {
				return false, err
			}
			return current.Digest != prior.Digest, nil
		},
	)
	if errors.Is(err, verify.ErrNotConfirmed) {
		s.logger.Warn(ctx, "password reset not confirmed", "username", username)
		return ResetOutcome{Status: ResetFailed, Reason: outcome.ReasonWriteNotApplied}, nil
	}
	if err != nil {
		return ResetOutcome{}, err
	}

	s.logger.Info(ctx, "password reset", "username", username)
	return ResetOutcome{Status: PasswordReset}, nil
}
