package core

import "time"

// FeedAuthor is the projection of a user embedded in feed entries.
type FeedAuthor struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Handle      string `json:"handle"`
	AvatarURL   string `json:"avatarURL"`
}

type FeedComment struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Author    FeedAuthor `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
}

// FeedPost is a denormalized feed entry: author, comments and likes are
// embedded so the client needs no follow-up lookups. LikeUserIDs carries
// the full set of liking users, not just a count, so a client can check
// "did I like this" locally.
type FeedPost struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	ImageURL string `json:"imageURL,omitempty"`

	Author   FeedAuthor    `json:"author"`
	Comments []FeedComment `json:"comments"`

	LikeUserIDs  []string `json:"likeUserIDs"`
	LikeCount    int      `json:"likeCount"`
	CommentCount int      `json:"commentCount"`

	CreatedAt time.Time `json:"createdAt"`
}
