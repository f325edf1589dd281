package service

import (
	"errors" // Sentinel errors
	"fmt"    // Error wrapping

	"github.com/MarcoPr4do/Neighlink-Backend/internal/domain" // Importing domain models
)

// ErrEmailTaken is returned when registering a principal whose email is
// already used by the same principal kind.
var ErrEmailTaken = errors.New("email already registered")

// UserService manages user records shared by both principal kinds
type UserService struct{ Store[domain.User] }

// GetByToken finds the user owning a bearer token.
func (s UserService) GetByToken(token string) (*domain.User, error) {
	if token == "" {
		return nil, ErrNotFound // Empty token never matches
	}
	return s.findOne("token = ?", token)
}

// ListByEmail returns every user registered with email.
func (s UserService) ListByEmail(email string) ([]domain.User, error) {
	out := []domain.User{}
	if err := s.db.Where("email = ?", email).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list users by email: %w", err)
	}
	return out, nil
}

// AdministratorService manages administrators
type AdministratorService struct{ Store[domain.Administrator] }

// GetByUser finds the administrator wrapping userID, with the user attached.
func (s AdministratorService) GetByUser(userID uint) (*domain.Administrator, error) {
	var a domain.Administrator
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&a).Error; err != nil {
		return nil, notFoundOr(err, "get administrator by user")
	}
	return &a, nil
}

// GetByToken resolves an administrator from a user's bearer token.
func (s AdministratorService) GetByToken(token string) (*domain.Administrator, error) {
	u, err := UserService{Store: Store[domain.User]{db: s.db}}.GetByToken(token)
	if err != nil {
		return nil, err
	}
	return s.GetByUser(u.ID)
}

// EmailTaken reports whether an administrator already uses email.
func (s AdministratorService) EmailTaken(email string) (bool, error) {
	var n int64
	err := s.db.Model(&domain.Administrator{}).
		Joins("JOIN users ON users.id = administrators.user_id").
		Where("users.email = ?", email).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check administrator email: %w", err)
	}
	return n > 0, nil
}

// ResidentService manages residents
type ResidentService struct{ Store[domain.Resident] }

// GetByIDWithUser loads a resident and its user.
func (s ResidentService) GetByIDWithUser(id uint) (*domain.Resident, error) {
	var r domain.Resident
	if err := s.db.Preload("User").First(&r, id).Error; err != nil {
		return nil, notFoundOr(err, "get resident")
	}
	return &r, nil
}

// GetByUser finds the resident wrapping userID, with the user attached.
func (s ResidentService) GetByUser(userID uint) (*domain.Resident, error) {
	var r domain.Resident
	if err := s.db.Preload("User").Where("user_id = ?", userID).First(&r).Error; err != nil {
		return nil, notFoundOr(err, "get resident by user")
	}
	return &r, nil
}

// GetByToken resolves a resident from a user's bearer token.
func (s ResidentService) GetByToken(token string) (*domain.Resident, error) {
	u, err := UserService{Store: Store[domain.User]{db: s.db}}.GetByToken(token)
	if err != nil {
		return nil, err
	}
	return s.GetByUser(u.ID)
}

// EmailTaken reports whether a resident already uses email.
func (s ResidentService) EmailTaken(email string) (bool, error) {
	var n int64
	err := s.db.Model(&domain.Resident{}).
		Joins("JOIN users ON users.id = residents.user_id").
		Where("users.email = ?", email).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check resident email: %w", err)
	}
	return n > 0, nil
}

// PlanMemberService manages administrators' plan memberships
type PlanMemberService struct{ Store[domain.PlanMember] }

// GetAllByAdmin lists an administrator's active plan memberships
func (s PlanMemberService) GetAllByAdmin(administratorID uint) ([]domain.PlanMember, error) {
	return s.listActive("administrator_id = ?", administratorID)
}

// RegisterAdministrator stores user and wraps it in an administrator with an
// activated plan. Both rows are written in one transaction.
func (s *Services) RegisterAdministrator(user *domain.User) (*domain.Administrator, error) {
	var saved *domain.Administrator
	err := s.Transaction(func(tx *Services) error {
		taken, err := tx.Administrators.EmailTaken(user.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken // Same kind already registered
		}
		u, err := tx.Users.Insert(user)
		if err != nil {
			return err
		}
		a, err := tx.Administrators.Insert(&domain.Administrator{UserID: u.ID, PlanActivated: true}) // Plan starts active
		if err != nil {
			return err
		}
		a.User = u // Attach the saved user
		saved = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// RegisterResident stores user and wraps it in an unblocked resident. Both
// rows are written in one transaction.
func (s *Services) RegisterResident(user *domain.User) (*domain.Resident, error) {
	var saved *domain.Resident
	err := s.Transaction(func(tx *Services) error {
		taken, err := tx.Residents.EmailTaken(user.Email)
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailTaken // Same kind already registered
		}
		u, err := tx.Users.Insert(user)
		if err != nil {
			return err
		}
		r, err := tx.Residents.Insert(&domain.Resident{UserID: u.ID})
		if err != nil {
			return err
		}
		r.User = u // Attach the saved user
		saved = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}
