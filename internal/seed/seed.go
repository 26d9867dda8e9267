// Package seed creates demo data for development and testing.
package seed

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"userapi/internal/middleware"
	"userapi/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// sampleUsers are inserted into an empty development database so the API has
// something to return out of the box.
var sampleUsers = []models.User{
	{Username: "john_doe", Email: "john@example.com", FullName: "John Doe"},
	{Username: "jane_smith", Email: "jane@example.com", FullName: "Jane Smith"},
	{Username: "bob_wilson", Email: "bob@example.com", FullName: "Bob Wilson"},
}

// EnsureSampleData inserts the canonical sample users when the users table is
// empty. It is a no-op on a non-empty table, so it is safe on every startup.
func EnsureSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	users := make([]models.User, len(sampleUsers))
	copy(users, sampleUsers)
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("insert sample users: %w", err)
	}
	middleware.Logger.Info("Inserted sample users", slog.Int("count", len(sampleUsers)))
	return nil
}

// Factory builds user records and persists them to the database. It is a
// thin helper used by the seed command and tests.
type Factory struct {
	db *gorm.DB
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db}
}

// CreateUser persists a generated user, applying any overrides first.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		FullName: gofakeit.Name(),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("create user %q: %w", user.Username, err)
	}
	return user, nil
}

// CreateUsers persists n generated users, skipping the occasional generated
// duplicate username or email.
func (f *Factory) CreateUsers(n int) ([]models.User, error) {
	users := make([]models.User, 0, n)
	for len(users) < n {
		user, err := f.CreateUser()
		if err != nil {
			if isDuplicate(err) {
				continue
			}
			return users, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
