package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleLike_AddsAndRemoves(t *testing.T) {
	article := Article{Likes: []string{}, Dislikes: []string{}}

	already := article.ToggleLike("user-a")
	assert.False(t, already)
	assert.Equal(t, []string{"user-a"}, article.Likes)
	assert.Empty(t, article.Dislikes)

	// Liking again reverts to neutral.
	already = article.ToggleLike("user-a")
	assert.True(t, already)
	assert.Empty(t, article.Likes)
	assert.Empty(t, article.Dislikes)
}

func TestToggleDislike_AddsAndRemoves(t *testing.T) {
	article := Article{}

	already := article.ToggleDislike("user-a")
	assert.False(t, already)
	assert.Equal(t, []string{"user-a"}, article.Dislikes)

	already = article.ToggleDislike("user-a")
	assert.True(t, already)
	assert.Empty(t, article.Dislikes)
}

func TestReactions_MutuallyExclusive(t *testing.T) {
	article := Article{}

	article.ToggleLike("user-a")
	assert.True(t, article.HasLiked("user-a"))
	assert.False(t, article.HasDisliked("user-a"))

	// A dislike moves the user out of the likes set.
	article.ToggleDislike("user-a")
	assert.False(t, article.HasLiked("user-a"))
	assert.True(t, article.HasDisliked("user-a"))

	// And back again.
	article.ToggleLike("user-a")
	assert.True(t, article.HasLiked("user-a"))
	assert.False(t, article.HasDisliked("user-a"))
}

func TestToggleLike_DoesNotTouchOtherUsers(t *testing.T) {
	article := Article{Likes: []string{"user-b"}, Dislikes: []string{"user-c"}}

	article.ToggleLike("user-a")

	assert.ElementsMatch(t, []string{"user-a", "user-b"}, article.Likes)
	assert.Equal(t, []string{"user-c"}, article.Dislikes)
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("technology"))
	assert.False(t, IsValidCategory("astrology"))
}
