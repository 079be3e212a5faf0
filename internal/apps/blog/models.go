package blog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/access"
)

// BlogPost is a community article. Posts follow the same three visibility
// tiers as recipes and ingredients.
type BlogPost struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FamilyID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"family_id"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	Title        string         `gorm:"not null" json:"title"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	CoverImage   string         `json:"cover_image,omitempty"`
	Tags         datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	Visibility   string         `gorm:"type:varchar(10);not null;default:'family';index" json:"visibility"`
	Published    bool           `gorm:"default:false;index" json:"published"`
	LikeCount    int            `gorm:"default:0" json:"like_count"`
	CommentCount int            `gorm:"default:0" json:"comment_count"`
	ViewCount    int            `gorm:"default:0" json:"view_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// AccessEntity projects the post into the shape the visibility resolver
// evaluates.
func (p *BlogPost) AccessEntity() access.Entity {
	return access.Entity{
		Visibility: p.Visibility,
		CreatedBy:  p.CreatedBy,
		FamilyID:   p.FamilyID,
	}
}

// BlogLike tracks who liked a post. One row per (post, user).
type BlogLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blog_like_post_user" json:"post_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_blog_like_post_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *BlogLike) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// BlogComment is a reader comment on a post.
type BlogComment struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PostID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"post_id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	AuthorName string         `json:"author_name"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *BlogComment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
