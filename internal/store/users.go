package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ncc-uat/ncc-admin-services/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinPasswordLength = 6
	// MaxPasswordLength is the longest input bcrypt hashes.
	MaxPasswordLength = 72
)

type userRecord struct {
	row  models.UserRow
	hash []byte
}

// UserStore holds the managed back-office accounts.
type UserStore struct {
	mu    sync.RWMutex
	seq   int
	users []userRecord
	cost  int
	now   func() time.Time
}

func NewUserStore() *UserStore {
	s := &UserStore{seq: 10, cost: bcrypt.DefaultCost, now: time.Now}
	lastLogin := timestamp(s.now)
	seed := []models.UserRow{
		{ID: "1", FirstName: "System", LastName: "Administrator", Email: "admin@safaricom.co.ke", Role: models.RoleAdmin, Status: models.StatusActive, PhoneNumber: "+254700000001", Department: "IT", LineManager: "CTO"},
		{ID: "2", FirstName: "Biz", LastName: "User", Email: "business@safaricom.co.ke", Role: models.RoleBusiness, Status: models.StatusActive, PhoneNumber: "+254700000002", Department: "Sales", LineManager: "Sales Lead"},
		{ID: "3", FirstName: "Regular", LastName: "User", Email: "user@safaricom.co.ke", Role: models.RoleUser, Status: models.StatusInactive, PhoneNumber: "+254700000003", Department: "Support", LineManager: "Support Manager"},
	}
	for _, row := range seed {
		row.LastLogin = lastLogin
		row.ProfilePicture = "/placeholder.svg"
		s.users = append(s.users, userRecord{row: row})
	}
	return s
}

func (s *UserStore) List() []models.UserRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserRow, len(s.users))
	for i, u := range s.users {
		out[i] = u.row
	}
	return out
}

func (s *UserStore) Get(id string) (models.UserRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.UserRow{}, ErrNotFound
	}
	return s.users[idx].row, nil
}

// Create registers a new active user. Emails are unique regardless of case.
func (s *UserStore) Create(req models.CreateUserRequest) (models.UserRow, error) {
	if len(req.Password) > MaxPasswordLength {
		return models.UserRow{}, ErrPasswordLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return models.UserRow{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(req.Email, "") {
		return models.UserRow{}, ErrEmailExists
	}

	s.seq++
	row := models.UserRow{
		ID:             strconv.Itoa(s.seq),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Role:           req.Role,
		Status:         models.StatusActive,
		LastLogin:      timestamp(s.now),
		PhoneNumber:    req.PhoneNumber,
		Department:     req.Department,
		LineManager:    req.LineManager,
		ProfilePicture: req.ProfilePicture,
	}
	s.users = append([]userRecord{{row: row, hash: hash}}, s.users...)
	return row, nil
}

func (s *UserStore) Update(id string, patch models.UserPatch) (models.UserRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return models.UserRow{}, ErrNotFound
	}

	if patch.Email != nil && s.emailTaken(*patch.Email, id) {
		return models.UserRow{}, ErrEmailExists
	}

	row := &s.users[idx].row
	setString(&row.FirstName, patch.FirstName)
	setString(&row.LastName, patch.LastName)
	setString(&row.Email, patch.Email)
	setString(&row.PhoneNumber, patch.PhoneNumber)
	setString(&row.Department, patch.Department)
	setString(&row.LineManager, patch.LineManager)
	setString(&row.ProfilePicture, patch.ProfilePicture)
	if patch.Role != nil {
		row.Role = *patch.Role
	}
	if patch.Status != nil {
		row.Status = *patch.Status
	}
	return *row, nil
}

func (s *UserStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return ErrNotFound
	}
	s.users = append(s.users[:idx], s.users[idx+1:]...)
	return nil
}

// ChangePassword replaces the user's password. The current password is only
// checked for users that registered with one; seeded accounts have none.
func (s *UserStore) ChangePassword(id, current, next string) error {
	if len(next) < MinPasswordLength {
		return ErrPasswordShort
	}
	if len(next) > MaxPasswordLength {
		return ErrPasswordLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.cost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx == -1 {
		return ErrNotFound
	}

	if existing := s.users[idx].hash; existing != nil {
		if err := bcrypt.CompareHashAndPassword(existing, []byte(current)); err != nil {
			return ErrBadPassword
		}
	}
	s.users[idx].hash = hash
	return nil
}

func (s *UserStore) indexOf(id string) int {
	for i, u := range s.users {
		if u.row.ID == id {
			return i
		}
	}
	return -1
}

func (s *UserStore) emailTaken(email, exceptID string) bool {
	for _, u := range s.users {
		if u.row.ID != exceptID && strings.EqualFold(u.row.Email, email) {
			return true
		}
	}
	return false
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
