package domain

import "time"

// Article represents a user-authored article.
type Article struct {
	ArticleID   string   `json:"articleID"` // Primary Key (UUID)
	AuthorID    string   `json:"authorID"`  // UserID reference
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	CoverImage  string   `json:"coverImage"`
	// Likes and Dislikes hold user ids. A user id is in at most one of the
	// two at any time; ToggleLike/ToggleDislike preserve that.
	Likes     []string  `json:"likes"`
	Dislikes  []string  `json:"dislikes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Categories is the fixed category set an article may be tagged with.
var Categories = []string{
	"technology",
	"science",
	"sports",
	"politics",
	"health",
	"travel",
	"food",
	"entertainment",
}

// HasLiked reports whether userID is in the likes set.
func (a *Article) HasLiked(userID string) bool {
	return contains(a.Likes, userID)
}

// HasDisliked reports whether userID is in the dislikes set.
func (a *Article) HasDisliked(userID string) bool {
	return contains(a.Dislikes, userID)
}

// ToggleLike applies a like action by userID. Liking an already liked
// article reverts it to neutral; liking a disliked article moves the user
// out of the dislikes set. It returns true if the user had already liked.
func (a *Article) ToggleLike(userID string) bool {
	alreadyLiked := a.HasLiked(userID)
	a.Likes = remove(a.Likes, userID)
	a.Dislikes = remove(a.Dislikes, userID)
	if !alreadyLiked {
		a.Likes = append(a.Likes, userID)
	}
	return alreadyLiked
}

// ToggleDislike applies a dislike action by userID, symmetric to ToggleLike.
// It returns true if the user had already disliked.
func (a *Article) ToggleDislike(userID string) bool {
	alreadyDisliked := a.HasDisliked(userID)
	a.Likes = remove(a.Likes, userID)
	a.Dislikes = remove(a.Dislikes, userID)
	if !alreadyDisliked {
		a.Dislikes = append(a.Dislikes, userID)
	}
	return alreadyDisliked
}

// IsValidCategory reports whether category is part of the fixed category set.
func IsValidCategory(category string) bool {
	return contains(Categories, category)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func remove(set []string, value string) []string {
	out := set[:0]
	for _, v := range set {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}
