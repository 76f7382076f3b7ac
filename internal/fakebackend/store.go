package fakebackend

import (
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/sparknest-admin/models"
)

type account struct {
	user         models.User
	passwordHash []byte
}

// memoryStore holds accounts and records of every kind.
type memoryStore struct {
	mu       sync.RWMutex
	accounts map[string]account
	records  map[models.ResourceKind][]models.Entity
	lastID   int64
	now      func() time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[string]account),
		records:  make(map[models.ResourceKind][]models.Entity),
		now:      time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *memoryStore) register(name, email, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(email)
	if _, ok := s.accounts[key]; ok {
		return models.User{}, ErrEmailTaken
	}

	s.lastID++
	user := models.User{
		ID:    models.ID(strconv.FormatInt(s.lastID, 10)),
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Role:  "admin",
	}
	s.accounts[key] = account{user: user, passwordHash: hash}
	return user, nil
}

func (s *memoryStore) authenticate(email, password string) (models.User, error) {
	s.mu.RLock()
	acc, ok := s.accounts[normalizeEmail(email)]
	s.mu.RUnlock()

	if !ok {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return acc.user, nil
}

func (s *memoryStore) list(kind models.ResourceKind) []models.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Entity, 0, len(s.records[kind]))
	for _, e := range s.records[kind] {
		out = append(out, e.Clone())
	}
	return out
}

func (s *memoryStore) create(kind models.ResourceKind, data models.Entity) models.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	record := data.Clone()
	record[models.FieldID] = s.lastID
	record[models.FieldCreatedAt] = s.now().UTC().Format(time.RFC3339)
	if kind == models.Messages {
		if _, ok := record[models.FieldRead]; !ok {
			record[models.FieldRead] = false
		}
	}

	s.records[kind] = append(s.records[kind], record)
	return record.Clone()
}

func (s *memoryStore) update(kind models.ResourceKind, id models.ID, data models.Entity) (models.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(kind, id)
	if i < 0 {
		return nil, ErrRecordNotFound
	}

	record := s.records[kind][i]
	for k, v := range data {
		if k == models.FieldID || k == models.FieldCreatedAt {
			continue
		}
		record[k] = v
	}
	return record.Clone(), nil
}

func (s *memoryStore) delete(kind models.ResourceKind, id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(kind, id)
	if i < 0 {
		return ErrRecordNotFound
	}
	s.records[kind] = slices.Delete(s.records[kind], i, i+1)
	return nil
}

func (s *memoryStore) markRead(id models.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(models.Messages, id)
	if i < 0 {
		return ErrRecordNotFound
	}
	s.records[models.Messages][i][models.FieldRead] = true
	return nil
}

// indexOf must be called with mu held.
func (s *memoryStore) indexOf(kind models.ResourceKind, id models.ID) int {
	return slices.IndexFunc(s.records[kind], func(e models.Entity) bool {
		return e.ID() == id
	})
}
