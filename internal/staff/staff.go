package staff

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrStaffNotFound = errors.New("staff not found")

// Staff is a storefront employee who can sign in at the register.
type Staff struct {
	ID             uuid.UUID
	Email          string
	FullName       string
	Role           string
	HashedPassword string
}

// Registry is an in-memory staff directory, seeded at startup.
type Registry struct {
	byEmail map[string]Staff
	byID    map[uuid.UUID]Staff
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byEmail: make(map[string]Staff),
		byID:    make(map[uuid.UUID]Staff),
	}
}

// Add hashes the password and registers a staff member.
func (r *Registry) Add(email, fullName, role, password string) (Staff, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Staff{}, err
	}
	s := Staff{
		ID:             uuid.New(),
		Email:          email,
		FullName:       fullName,
		Role:           role,
		HashedPassword: string(hash),
	}
	r.byEmail[email] = s
	r.byID[s.ID] = s
	return s, nil
}

// GetByEmail returns the staff member with the given email.
func (r *Registry) GetByEmail(email string) (Staff, error) {
	s, ok := r.byEmail[email]
	if !ok {
		return Staff{}, ErrStaffNotFound
	}
	return s, nil
}

// GetByID returns the staff member with the given ID.
func (r *Registry) GetByID(id uuid.UUID) (Staff, error) {
	s, ok := r.byID[id]
	if !ok {
		return Staff{}, ErrStaffNotFound
	}
	return s, nil
}
