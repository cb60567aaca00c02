package store

import (
	"log"
	"strings"

	"github.com/kamaucodes/sokomart-api/models"
	"github.com/kamaucodes/sokomart-api/storage"
)

const msgFillAllFields = "please fill in all fields"

// Login activates a demo identity. Credentials are never verified: the
// password only has to be present, the id is the fixed demo id and the
// username is derived from the email local part.
func (s *Store) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email == "" || password == "" {
		return models.User{}, &ValidationError{Message: msgFillAllFields}
	}

	user := models.User{
		ID:       "user1",
		Email:    email,
		Username: strings.SplitN(email, "@", 2)[0],
	}
	s.user = &user

	if err := s.persist(storage.KeyCurrentUser); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Signup behaves like Login but assigns a freshly generated id and takes
// the username from the form.
func (s *Store) Signup(data models.SignupData) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data.Password != data.ConfirmPassword {
		return models.User{}, &ValidationError{Message: "passwords do not match"}
	}
	if data.Email == "" || data.Username == "" || data.Password == "" {
		return models.User{}, &ValidationError{Message: msgFillAllFields}
	}

	user := models.User{
		ID:       s.newID(),
		Email:    data.Email,
		Username: data.Username,
	}
	s.user = &user

	if err := s.persist(storage.KeyCurrentUser); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Logout clears the active user and drops its persisted record. It has
// no failure mode; a boundary error is logged and the session is gone
// either way.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.kv.Delete(storage.KeyCurrentUser); err != nil {
		log.Println("Removing persisted session:", err)
	}
}

// UpdateProfile overwrites the active user's mutable fields.
func (s *Store) UpdateProfile(fields models.ProfileUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, &PreconditionError{Message: "no active session"}
	}

	s.user.Username = fields.Username
	s.user.Email = fields.Email
	s.user.Phone = fields.Phone
	s.user.Address = fields.Address

	if err := s.persist(storage.KeyCurrentUser); err != nil {
		return models.User{}, err
	}
	return *s.user, nil
}

// CurrentUser reports the active user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// SellerStats are the dashboard counters: how many catalog listings the
// active user owns and how many purchases have been completed.
type SellerStats struct {
	Listings  int `json:"listings"`
	Purchases int `json:"purchases"`
}

func (s *Store) DashboardStats() (SellerStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return SellerStats{}, &PreconditionError{Message: "no active session"}
	}

	stats := SellerStats{Purchases: len(s.purchases)}
	for _, product := range s.products {
		if product.SellerID == s.user.ID {
			stats.Listings++
		}
	}
	return stats, nil
}
