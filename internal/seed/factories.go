// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DemoPassword is the password every seeded user gets.
const DemoPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	user := &models.User{
		Username:     gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:        gofakeit.Email(),
		Password:     string(hashed),
		ProfileImage: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post authored by the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Text: gofakeit.Paragraph(1, 3, 6, "\n"),
		Author: models.Author{
			UserID:   user.ID,
			Username: user.Username,
		},
	}
	// every third post gets an image
	if f.rnd.Intn(3) == 0 {
		post.Image = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}
	// realistic created_at spread over the last 30 days
	post.CreatedAt = time.Now().
		Add(-time.Duration(f.rnd.Intn(30*24)) * time.Hour).
		Add(-time.Duration(f.rnd.Intn(60)) * time.Minute)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a sample comment by the given user on the given post.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:   gofakeit.Sentence(f.rnd.Intn(12) + 3),
		PostID: post.ID,
		Author: models.Author{
			UserID:   user.ID,
			Username: user.Username,
		},
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike records a like by the given user on the given post. Duplicate
// likes are silently skipped.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	return f.db.Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		user.ID, post.ID, time.Now(),
	).Error
}
