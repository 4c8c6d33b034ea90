package users

import (
	"context"
	"fmt"

	"github.com/tjwaterman99/quicksplit-api/ent"
	"github.com/tjwaterman99/quicksplit-api/ent/user"
	"github.com/tjwaterman99/quicksplit-api/pkg/auth"
	"github.com/tjwaterman99/quicksplit-api/pkg/database"
	"github.com/tjwaterman99/quicksplit-api/pkg/domain"
	"github.com/tjwaterman99/quicksplit-api/pkg/plans"
)

// Service handles user registration and login. Each registration
// creates a fresh account on the free plan; the account is the billing
// boundary that experiments' subjects are shared across.
type Service struct {
	db    *ent.Client
	plans *plans.Service
}

// NewService creates a new users service
func NewService(db *ent.Client, plansService *plans.Service) *Service {
	return &Service{db: db, plans: plansService}
}

// Register creates a new account on the free plan with one user.
func (s *Service) Register(ctx context.Context, email, password string) (*ent.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed hashing password: %w", err)
	}

	free, err := s.plans.Free(ctx)
	if err != nil {
		return nil, err
	}

	var u *ent.User
	err = database.WithTx(ctx, s.db, func(tx *ent.Tx) error {
		account, err := tx.Account.
			Create().
			SetPlanID(free.ID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed creating account: %w", err)
		}

		u, err = tx.User.
			Create().
			SetAccountID(account.ID).
			SetEmail(email).
			SetPasswordHash(hash).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return domain.NewDuplicateNameError(email)
			}
			return fmt.Errorf("failed creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and returns the user.
func (s *Service) Login(ctx context.Context, email, password string) (*ent.User, error) {
	u, err := s.db.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError()
		}
		return nil, fmt.Errorf("failed loading user: %w", err)
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, domain.NewUnauthorizedError()
	}
	return u, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, userID int) (*ent.User, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed loading user: %w", err)
	}
	return u, nil
}
