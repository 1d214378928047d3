package core

import (
	"time"
)

// UserModel is the local mirror of an identity-provider principal. It is
// created on first successful resolution and refreshed on every one.
type UserModel struct {
	ID         string `gorm:"primaryKey"`
	ExternalID string `gorm:"uniqueIndex"`

	Handle      string
	DisplayName string
	AvatarURL   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type PostModel struct {
	ID       string `gorm:"primaryKey"`
	AuthorID string `gorm:"index"`
	Author   *UserModel

	Content  string
	ImageURL string

	CreatedAt time.Time `gorm:"index"`

	Comments []CommentModel `gorm:"foreignKey:PostID"`
	Likes    []LikeModel    `gorm:"foreignKey:PostID"`
}

func (PostModel) TableName() string {
	return "posts"
}

type CommentModel struct {
	ID       string `gorm:"primaryKey"`
	PostID   string `gorm:"index"`
	AuthorID string
	Author   *UserModel

	Content string

	CreatedAt time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}

// LikeModel is a boolean relation: at most one row per (user, post) pair,
// enforced by the unique index.
type LikeModel struct {
	ID     string `gorm:"primaryKey"`
	UserID string `gorm:"uniqueIndex:idx_likes_user_post"`
	PostID string `gorm:"uniqueIndex:idx_likes_user_post"`

	CreatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}

type NotificationKind string

const (
	NotificationLike    NotificationKind = "LIKE"
	NotificationComment NotificationKind = "COMMENT"
)

// NotificationModel records that ActorID interacted with RecipientID's post.
// Rows are never created for self-interactions and never updated.
type NotificationModel struct {
	ID   string           `gorm:"primaryKey"`
	Kind NotificationKind `gorm:"size:16"`

	RecipientID string `gorm:"index"`
	ActorID     string
	PostID      string
	CommentID   *string

	CreatedAt time.Time
}

func (NotificationModel) TableName() string {
	return "notifications"
}
