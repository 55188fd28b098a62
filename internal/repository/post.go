package repository

import (
	"context"
	"errors"

	"runtracker/internal/cache"
	"runtracker/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultListLimit is the page size served when the client does not ask for
// one. Only this page of the global feed is cached.
const DefaultListLimit = 20

// PostRepository defines persistence operations for run posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	List(ctx context.Context, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	Upvote(ctx context.Context, userID, postID uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit("User", "Upvotes").Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePostsList(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.withDetails(r.db.WithContext(ctx)).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	if err := r.withDetails(r.db.WithContext(ctx)).
		Where("posts.user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post

	fetch := func() error {
		if err := r.withDetails(r.db.WithContext(ctx)).
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&posts).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	}

	// Deeper pages and custom limits go straight to the database; the
	// single list key only ever holds the default first page.
	if offset == 0 && limit == DefaultListLimit {
		if err := cache.Aside(ctx, cache.PostsListKey, &posts, cache.PostsListTTL, fetch); err != nil {
			return nil, err
		}
		return posts, nil
	}

	if err := fetch(); err != nil {
		return nil, err
	}
	return posts, nil
}

// withDetails preloads the owner and upvote list and computes the upvote
// count as a subquery, keeping reads to a single round trip.
func (r *postRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Select("posts.*, (SELECT COUNT(*) FROM upvotes WHERE upvotes.post_id = posts.id) as upvote_count").
		Preload("User").
		Preload("Upvotes")
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Omit("User", "Upvotes").Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	cache.InvalidatePostsList(ctx)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Upvote{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.NewNotFoundError("Post", id)
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}

	cache.InvalidatePost(ctx, id)
	cache.InvalidatePostsList(ctx)
	return nil
}

func (r *postRepository) Upvote(ctx context.Context, userID, postID uint) error {
	// ON CONFLICT DO NOTHING keeps repeat upvotes idempotent without a
	// read-then-write race.
	upvote := models.Upvote{UserID: userID, PostID: postID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(&upvote).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, postID)
	cache.InvalidatePostsList(ctx)
	return nil
}
