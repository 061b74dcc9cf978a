package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/artfeed/backend/internal/dto"
)

// Register creates a new account. No session state is touched; callers log
// in separately.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPost, "/auths/register", req, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login authenticates and stores the access token and identity in the
// session. The refresh cookie lands in the cookie jar.
func (c *Client) Login(ctx context.Context, identifier, password string) (*dto.LoginResponse, error) {
	req := dto.LoginRequest{Identifier: identifier, Password: password}
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auths/login", req, &out, false); err != nil {
		return nil, err
	}
	c.session.SetAccessToken(out.AccessToken)
	c.session.SetIdentity(out.User.UserID, out.User.Email, out.User.Preferences)
	return &out, nil
}

// Logout clears the server-side cookie and resets the local session.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auths/logout", nil, nil, false)
	c.session.Reset()
	return err
}

// GetUser fetches the caller's own user record.
func (c *Client) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(userID), nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial profile update.
func (c *Client) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/profile", req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword changes the caller's password.
func (c *Client) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/password", req, nil, true)
}

// UpdatePreferences replaces the caller's topic preference set and mirrors
// it into the session.
func (c *Client) UpdatePreferences(ctx context.Context, userID string, preferences []string) (*dto.UserResponse, error) {
	req := dto.UpdatePreferencesRequest{Preferences: preferences}
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(userID)+"/preference", req, &out, true); err != nil {
		return nil, err
	}
	c.session.SetIdentity(out.UserID, out.Email, out.Preferences)
	return &out, nil
}

// BlockArticle adds an article to the caller's block list.
func (c *Client) BlockArticle(ctx context.Context, userID, articleID string) (*dto.UserResponse, error) {
	req := dto.BlockArticleRequest{ArticleID: articleID}
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPost, "/users/"+url.PathEscape(userID)+"/block-article", req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateArticle publishes a new article authored by the caller.
func (c *Client) CreateArticle(ctx context.Context, req dto.CreateArticleRequest) (*dto.ArticleResponse, error) {
	var out dto.ArticleResponse
	if err := c.do(ctx, http.MethodPost, "/articles", req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// Feed fetches the personalized feed for the given categories. An empty
// category list asks the server to use the stored preferences.
func (c *Client) Feed(ctx context.Context, categories []string) ([]dto.ArticleResponse, error) {
	q := url.Values{}
	for _, category := range categories {
		q.Add("category", category)
	}
	path := "/articles"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []dto.ArticleResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// UserArticles lists all articles authored by userID.
func (c *Client) UserArticles(ctx context.Context, userID string) ([]dto.ArticleResponse, error) {
	var out []dto.ArticleResponse
	if err := c.do(ctx, http.MethodGet, "/articles/user/"+url.PathEscape(userID), nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

// EditArticle applies a partial update to one of the caller's articles.
func (c *Client) EditArticle(ctx context.Context, articleID string, req dto.UpdateArticleRequest) (*dto.ArticleResponse, error) {
	var out dto.ArticleResponse
	if err := c.do(ctx, http.MethodPut, "/articles/"+url.PathEscape(articleID), req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteArticle deletes one of the caller's articles.
func (c *Client) DeleteArticle(ctx context.Context, articleID string) error {
	return c.do(ctx, http.MethodDelete, "/articles/"+url.PathEscape(articleID), nil, nil, true)
}

// LikeArticle toggles the caller's like on an article.
func (c *Client) LikeArticle(ctx context.Context, articleID string) (*dto.ReactionResponse, error) {
	return c.react(ctx, articleID, "like")
}

// DislikeArticle toggles the caller's dislike on an article.
func (c *Client) DislikeArticle(ctx context.Context, articleID string) (*dto.ReactionResponse, error) {
	return c.react(ctx, articleID, "dislike")
}

func (c *Client) react(ctx context.Context, articleID, action string) (*dto.ReactionResponse, error) {
	var out dto.ReactionResponse
	path := fmt.Sprintf("/articles/%s/%s", url.PathEscape(articleID), action)
	if err := c.do(ctx, http.MethodPatch, path, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}
