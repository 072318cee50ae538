package repository

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPost(t *testing.T, db *gorm.DB, author *models.User, text string) *models.Post {
	t.Helper()
	post := &models.Post{
		Text: text,
		Author: models.Author{
			UserID:   author.ID,
			Username: author.Username,
		},
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// A repeated like insert must be a no-op: the liker set never contains the
// same user twice, even under concurrent toggles.
func TestPostRepository_LikeIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice, "hello")

	require.NoError(t, repo.Like(ctx, bob.ID, post.ID))
	require.NoError(t, repo.Like(ctx, bob.ID, post.ID))
	require.NoError(t, repo.Like(ctx, bob.ID, post.ID))

	count, err := repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	liked, err := repo.IsLiked(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestPostRepository_UnlikeRemovesRow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice, "hello")

	require.NoError(t, repo.Like(ctx, alice.ID, post.ID))
	require.NoError(t, repo.Unlike(ctx, alice.ID, post.ID))

	liked, err := repo.IsLiked(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	// Unliking again is harmless.
	require.NoError(t, repo.Unlike(ctx, alice.ID, post.ID))
}

func TestPostRepository_ComputedFields(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	post := createTestPost(t, db, alice, "hello")

	require.NoError(t, repo.Like(ctx, bob.ID, post.ID))
	require.NoError(t, db.Create(&models.Comment{
		Text:   "first",
		PostID: post.ID,
		Author: models.Author{UserID: bob.ID, Username: bob.Username},
	}).Error)

	got, err := repo.GetByID(ctx, post.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikesCount)
	assert.Equal(t, 1, got.CommentsCount)
	assert.True(t, got.Liked)

	// A different viewer sees the same counts but not the liked flag.
	got, err = repo.GetByID(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LikesCount)
	assert.False(t, got.Liked)
}

// Soft-deleted comments must not count toward a post's comment total.
func TestPostRepository_DeletedCommentsExcluded(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice, "hello")

	comment := &models.Comment{
		Text:   "delete me",
		PostID: post.ID,
		Author: models.Author{UserID: alice.ID, Username: alice.Username},
	}
	require.NoError(t, commentRepo.Create(ctx, comment))
	require.NoError(t, commentRepo.Delete(ctx, comment.ID))

	got, err := repo.GetByID(ctx, post.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CommentsCount)
}

func TestPostRepository_GetByAuthorIDNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	createTestPost(t, db, alice, "first")
	createTestPost(t, db, bob, "interloper")
	createTestPost(t, db, alice, "second")

	posts, err := repo.GetByAuthorID(ctx, alice.ID, 50, 0, 0)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Text)
	assert.Equal(t, "first", posts[1].Text)
}

func TestPostRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 42, 0)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
