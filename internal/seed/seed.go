package seed

import (
	"log"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// Options controls how much demo data Seed generates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	LikeProbability float64 // chance each user likes each post
	Clean           bool
}

// DefaultOptions returns sensible amounts for a local demo database.
func DefaultOptions() Options {
	return Options{
		Users:           20,
		PostsPerUser:    5,
		CommentsPerPost: 3,
		LikeProbability: 0.25,
		Clean:           true,
	}
}

// Seed populates the database with demo users, posts, comments and likes.
func Seed(db *gorm.DB, opts Options) error {
	if opts.Clean {
		if err := clearData(db); err != nil {
			return err
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))

	posts := make([]*models.Post, 0, opts.Users*opts.PostsPerUser)
	for _, user := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(user)
			if err != nil {
				return err
			}
			posts = append(posts, post)
		}
	}
	log.Printf("Seeded %d posts", len(posts))

	comments := 0
	likes := 0
	for _, post := range posts {
		for i := 0; i < opts.CommentsPerPost; i++ {
			commenter := users[f.rnd.Intn(len(users))]
			if _, err := f.CreateComment(commenter, post); err != nil {
				return err
			}
			comments++
		}
		for _, user := range users {
			if f.rnd.Float64() < opts.LikeProbability {
				if err := f.CreateLike(user, post); err != nil {
					return err
				}
				likes++
			}
		}
	}
	log.Printf("Seeded %d comments, %d likes", comments, likes)

	return nil
}

func clearData(db *gorm.DB) error {
	// hard delete in dependency order
	for _, table := range []string{"likes", "comments", "posts", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
