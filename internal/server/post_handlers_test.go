package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	app := setupTestApp(t)
	token := signupUser(t, app, "alice")

	t.Run("Requires auth", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/post/create", "", map[string]string{
			"text": "hello",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Text post", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/post/create", token, map[string]string{
			"text": "hello",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		post := decodeBody(t, resp)["post"].(map[string]any)
		assert.Equal(t, "hello", post["text"])
		assert.Equal(t, float64(0), post["likes_count"])
		assert.Equal(t, float64(0), post["comments_count"])
		author := post["author"].(map[string]any)
		assert.Equal(t, "alice", author["username"])
	})

	t.Run("Image-only post", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/post/create", token, map[string]string{
			"image": "https://example.com/cat.png",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		post := decodeBody(t, resp)["post"].(map[string]any)
		assert.Equal(t, "", post["text"])
		assert.Equal(t, "https://example.com/cat.png", post["image"])
	})

	t.Run("Empty post allowed", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/post/create", token, map[string]string{})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		_ = decodeBody(t, resp)
	})
}

func TestFeedOrdering(t *testing.T) {
	app := setupTestApp(t)
	token := signupUser(t, app, "alice")

	createPost(t, app, token, "oldest")
	createPost(t, app, token, "middle")
	createPost(t, app, token, "newest")

	resp := doJSON(t, app, http.MethodGet, "/post/all", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	posts := decodeBody(t, resp)["posts"].([]any)
	require.Len(t, posts, 3)

	assert.Equal(t, "newest", posts[0].(map[string]any)["text"])
	assert.Equal(t, "middle", posts[1].(map[string]any)["text"])
	assert.Equal(t, "oldest", posts[2].(map[string]any)["text"])
}

func TestGetPost(t *testing.T) {
	app := setupTestApp(t)
	token := signupUser(t, app, "alice")
	postID := createPost(t, app, token, "hello")

	t.Run("Anonymous read", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/post/%d", postID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		post := decodeBody(t, resp)["post"].(map[string]any)
		assert.Equal(t, "hello", post["text"])
		assert.Equal(t, false, post["liked"])
	})

	t.Run("Unknown post", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/post/999", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestToggleLike(t *testing.T) {
	app := setupTestApp(t)
	aliceToken := signupUser(t, app, "alice")
	bobToken := signupUser(t, app, "bob")
	postID := createPost(t, app, aliceToken, "like me")
	likePath := fmt.Sprintf("/post/%d/like", postID)

	t.Run("Requires auth", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, likePath, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Double toggle round-trips", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, likePath, bobToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, true, body["liked"])
		assert.Equal(t, float64(1), body["likes"])

		resp = doJSON(t, app, http.MethodPost, likePath, bobToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body = decodeBody(t, resp)
		assert.Equal(t, false, body["liked"])
		assert.Equal(t, float64(0), body["likes"])
	})

	t.Run("Two likers count independently", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, likePath, bobToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = decodeBody(t, resp)

		resp = doJSON(t, app, http.MethodPost, likePath, aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, float64(2), body["likes"])
	})

	t.Run("Liked flag follows the viewer", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/post/%d", postID), bobToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		post := decodeBody(t, resp)["post"].(map[string]any)
		assert.Equal(t, true, post["liked"])
		assert.Equal(t, float64(2), post["likes_count"])

		anon := doJSON(t, app, http.MethodGet, fmt.Sprintf("/post/%d", postID), "", nil)
		require.Equal(t, http.StatusOK, anon.StatusCode)
		post = decodeBody(t, anon)["post"].(map[string]any)
		assert.Equal(t, false, post["liked"])
	})

	t.Run("Unknown post", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPost, "/post/999/like", bobToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeletePost(t *testing.T) {
	app := setupTestApp(t)
	aliceToken := signupUser(t, app, "alice")
	bobToken := signupUser(t, app, "bob")
	postID := createPost(t, app, aliceToken, "delete me")
	path := fmt.Sprintf("/user/post/%d", postID)

	t.Run("Not the owner", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, path, bobToken, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Owner deletes", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, path, aliceToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = decodeBody(t, resp)

		// gone from the feed and from direct reads
		get := doJSON(t, app, http.MethodGet, fmt.Sprintf("/post/%d", postID), "", nil)
		assert.Equal(t, http.StatusNotFound, get.StatusCode)

		feed := doJSON(t, app, http.MethodGet, "/post/all", "", nil)
		require.Equal(t, http.StatusOK, feed.StatusCode)
		posts := decodeBody(t, feed)["posts"].([]any)
		assert.Empty(t, posts)
	})

	t.Run("Already deleted", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, path, aliceToken, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
