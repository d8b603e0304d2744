package handlers

import (
	"time"

	"github.com/prasanth-t0205/techblog/internal/domain"
)

// userResponse is the public identity view. There is deliberately no
// password field; the hash can never appear in a response.
type userResponse struct {
	ID          string            `json:"_id"`
	Fullname    string            `json:"fullname"`
	Username    string            `json:"username"`
	Email       string            `json:"email"`
	Followers   []string          `json:"followers"`
	Following   []string          `json:"following"`
	ProfileImg  string            `json:"profileImg"`
	Bio         string            `json:"bio,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}

func newUserResponse(u *domain.User) userResponse {
	followers := make([]string, 0, len(u.Followers))
	for _, id := range u.Followers {
		followers = append(followers, id.String())
	}
	following := make([]string, 0, len(u.Following))
	for _, id := range u.Following {
		following = append(following, id.String())
	}
	return userResponse{
		ID:          u.ID.String(),
		Fullname:    u.Fullname,
		Username:    u.Username,
		Email:       u.Email,
		Followers:   followers,
		Following:   following,
		ProfileImg:  u.ProfileImg,
		Bio:         u.Bio,
		SocialLinks: u.SocialLinks,
	}
}

// postAuthor embeds the public author fields on a post, never the
// email or credentials.
type postAuthor struct {
	ID         string `json:"_id"`
	Fullname   string `json:"fullname"`
	Username   string `json:"username"`
	ProfileImg string `json:"profileImg"`
}

type postResponse struct {
	ID        string      `json:"_id"`
	User      *postAuthor `json:"user,omitempty"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	Img       string      `json:"img"`
	Category  string      `json:"category"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func newPostResponse(p *domain.Post) postResponse {
	resp := postResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Content:   p.Content,
		Img:       p.Img,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Author != nil {
		resp.User = &postAuthor{
			ID:         p.Author.ID.String(),
			Fullname:   p.Author.Fullname,
			Username:   p.Author.Username,
			ProfileImg: p.Author.ProfileImg,
		}
	}
	return resp
}

func newPostListResponse(posts []*domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, newPostResponse(p))
	}
	return out
}

type notificationResponse struct {
	ID          string    `json:"_id"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	Read        bool      `json:"read"`
	RelatedPost string    `json:"relatedPost,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newNotificationListResponse(list []*domain.Notification) []notificationResponse {
	out := make([]notificationResponse, 0, len(list))
	for _, n := range list {
		resp := notificationResponse{
			ID:        n.ID.String(),
			From:      n.From.String(),
			To:        n.To.String(),
			Type:      string(n.Type),
			Content:   n.Content,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
		if n.RelatedPost != nil {
			resp.RelatedPost = n.RelatedPost.String()
		}
		out = append(out, resp)
	}
	return out
}
