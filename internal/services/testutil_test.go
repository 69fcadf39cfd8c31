package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "taskhive.com/taskhive/internal/models"
	repository "taskhive.com/taskhive/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Task{},
		&model.TaskStatusChange{},
		&model.Note{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *model.User {
	user := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  "irrelevant-hash",
		Confirmed: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

// mockTokenStore is an in-memory stand-in for the redis-backed one-time
// code store. Expiry is not simulated; one-time consumption is.
type mockTokenStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func newMockTokenStore() *mockTokenStore {
	return &mockTokenStore{codes: make(map[string]string)}
}

func (m *mockTokenStore) Save(ctx context.Context, code, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.codes[code] = userID
	return nil
}

func (m *mockTokenStore) Peek(ctx context.Context, code string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	userID, ok := m.codes[code]
	if !ok {
		return "", repository.ErrTokenNotFound
	}
	return userID, nil
}

func (m *mockTokenStore) Consume(ctx context.Context, code string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	userID, ok := m.codes[code]
	if !ok {
		return "", repository.ErrTokenNotFound
	}
	delete(m.codes, code)
	return userID, nil
}

type sentMail struct {
	kind  string
	email string
	code  string
}

type mockNotifier struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *mockNotifier) SendConfirmation(ctx context.Context, email, name, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sentMail{kind: "confirmation", email: email, code: code})
	return nil
}

func (m *mockNotifier) SendPasswordReset(ctx context.Context, email, name, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, sentMail{kind: "password-reset", email: email, code: code})
	return nil
}

func (m *mockNotifier) last(t *testing.T) sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		t.Fatal("expected at least one email to have been sent")
	}
	return m.sent[len(m.sent)-1]
}

func (m *mockNotifier) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sent)
}
