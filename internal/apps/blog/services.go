package blog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/access"
	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/family"
)

// ContentFilter screens community text before it is stored. The moderation
// service implements it.
type ContentFilter interface {
	FilterContent(text string) (bool, string)
}

type BlogService struct {
	db     *gorm.DB
	filter ContentFilter
}

func NewBlogService(db *gorm.DB, filter ContentFilter) *BlogService {
	return &BlogService{db: db, filter: filter}
}

func (s *BlogService) screen(texts ...string) error {
	if s.filter == nil {
		return nil
	}
	for _, t := range texts {
		if ok, _ := s.filter.FilterContent(t); !ok {
			return apperr.New(apperr.Invalid, "content_flagged")
		}
	}
	return nil
}

// PostInput carries the writable fields of a post.
type PostInput struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
	Visibility string   `json:"visibility"`
	Published  bool     `json:"published"`
}

func (in *PostInput) validate() error {
	if in.Title == "" || len(in.Content) < 10 {
		return apperr.New(apperr.Invalid, "invalid")
	}
	switch in.Visibility {
	case "", access.VisibilityPrivate, access.VisibilityFamily, access.VisibilityPublic:
	default:
		return apperr.New(apperr.Invalid, "invalid")
	}
	return nil
}

func (s *BlogService) Create(actor access.Actor, in PostInput) (*BlogPost, error) {
	if actor.FamilyID == uuid.Nil {
		return nil, apperr.New(apperr.PermissionDenied, "family_not_found")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.screen(in.Title, in.Content); err != nil {
		return nil, err
	}

	visibility := in.Visibility
	if visibility == "" {
		visibility = access.VisibilityFamily
	}
	tags, _ := json.Marshal(in.Tags)

	post := BlogPost{
		FamilyID:   actor.FamilyID,
		CreatedBy:  actor.UserID,
		Title:      in.Title,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		Tags:       tags,
		Visibility: visibility,
		Published:  in.Published,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

// Get loads a post the actor may view and counts the read.
func (s *BlogService) Get(actor access.Actor, id uuid.UUID) (*BlogPost, error) {
	var post BlogPost
	err := s.db.Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "post_not_found")
	}
	if err != nil {
		return nil, err
	}
	if !actor.CanView(post.AccessEntity()) {
		return nil, apperr.New(apperr.NotFound, "post_not_found")
	}

	s.db.Model(&post).Update("view_count", gorm.Expr("view_count + 1"))
	return &post, nil
}

// Feed lists published posts visible to the actor, newest first. Unpublished
// drafts only appear in the author's own feed via Mine.
func (s *BlogService) Feed(actor access.Actor, tag string, page, limit int) ([]BlogPost, int64, error) {
	query := s.db.Model(&BlogPost{}).
		Scopes(family.VisibleTo(actor.UserID, actor.FamilyID, actor.Role)).
		Where("published = ?", true)
	if tag != "" {
		query = query.Where("tags @> ?", fmt.Sprintf("[%q]", tag))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []BlogPost
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load feed: %w", err)
	}
	return posts, total, nil
}

// Mine lists the actor's own posts, drafts included.
func (s *BlogService) Mine(actor access.Actor, page, limit int) ([]BlogPost, int64, error) {
	query := s.db.Model(&BlogPost{}).Where("created_by = ?", actor.UserID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []BlogPost
	err := query.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&posts).Error
	return posts, total, err
}

func (s *BlogService) Update(actor access.Actor, id uuid.UUID, in PostInput) (*BlogPost, error) {
	post, err := s.Get(actor, id)
	if err != nil {
		return nil, err
	}
	entity := post.AccessEntity()
	if !actor.CanEdit(entity) {
		return nil, apperr.New(apperr.PermissionDenied, access.DenialCode(entity))
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if err := s.screen(in.Title, in.Content); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	post.CoverImage = in.CoverImage
	post.Published = in.Published
	if in.Visibility != "" {
		post.Visibility = in.Visibility
	}
	if in.Tags != nil {
		post.Tags, _ = json.Marshal(in.Tags)
	}
	if err := s.db.Save(post).Error; err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (s *BlogService) Delete(actor access.Actor, id uuid.UUID) error {
	post, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	entity := post.AccessEntity()
	if !actor.CanEdit(entity) {
		return apperr.New(apperr.PermissionDenied, access.DenialCode(entity))
	}
	return s.db.Delete(post).Error
}

// ToggleLike likes the post, or removes the actor's existing like.
func (s *BlogService) ToggleLike(actor access.Actor, postID uuid.UUID) (liked bool, err error) {
	if _, err := s.Get(actor, postID); err != nil {
		return false, err
	}

	var existing BlogLike
	err = s.db.Where("post_id = ? AND user_id = ?", postID, actor.UserID).First(&existing).Error
	if err == nil {
		if err := s.db.Delete(&existing).Error; err != nil {
			return false, err
		}
		s.db.Model(&BlogPost{}).Where("id = ?", postID).
			Update("like_count", gorm.Expr("like_count - 1"))
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like := BlogLike{PostID: postID, UserID: actor.UserID}
	if err := s.db.Create(&like).Error; err != nil {
		return false, err
	}
	s.db.Model(&BlogPost{}).Where("id = ?", postID).
		Update("like_count", gorm.Expr("like_count + 1"))
	return true, nil
}

func (s *BlogService) AddComment(actor access.Actor, postID uuid.UUID, authorName, content string) (*BlogComment, error) {
	if len(content) < 1 || len(content) > 500 {
		return nil, apperr.New(apperr.Invalid, "invalid")
	}
	if err := s.screen(content); err != nil {
		return nil, err
	}
	if _, err := s.Get(actor, postID); err != nil {
		return nil, err
	}

	comment := BlogComment{
		PostID:     postID,
		UserID:     actor.UserID,
		AuthorName: authorName,
		Content:    content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	s.db.Model(&BlogPost{}).Where("id = ?", postID).
		Update("comment_count", gorm.Expr("comment_count + 1"))
	return &comment, nil
}

func (s *BlogService) Comments(actor access.Actor, postID uuid.UUID, page, limit int) ([]BlogComment, error) {
	if _, err := s.Get(actor, postID); err != nil {
		return nil, err
	}

	var comments []BlogComment
	err := s.db.Where("post_id = ?", postID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// DeleteComment removes the actor's own comment. Family admins may also
// remove comments on posts their family owns.
func (s *BlogService) DeleteComment(actor access.Actor, commentID uuid.UUID) error {
	var comment BlogComment
	err := s.db.Where("id = ?", commentID).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "comment_not_found")
	}
	if err != nil {
		return err
	}

	if comment.UserID != actor.UserID {
		var post BlogPost
		if err := s.db.Where("id = ?", comment.PostID).First(&post).Error; err != nil {
			return apperr.New(apperr.NotFound, "comment_not_found")
		}
		if !actor.CanEdit(post.AccessEntity()) {
			return apperr.New(apperr.PermissionDenied, "permission_denied")
		}
	}
	if err := s.db.Delete(&comment).Error; err != nil {
		return err
	}
	s.db.Model(&BlogPost{}).Where("id = ?", comment.PostID).
		Update("comment_count", gorm.Expr("comment_count - 1"))
	return nil
}
