package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a single post by its unique ID, preloading the owner so
// the domain entity carries the owner's username.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).Preload("User").First(&postM, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindAll retrieves every post, in id order.
func (repo *postRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	var postMs []model.PostModel
	if err := repo.db.WithContext(ctx).Preload("User").Order("id").Find(&postMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all posts")
	}

	return toPostDomainList(postMs), nil
}

// FindByUserID retrieves all posts owned by the given user id.
func (repo *postRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Post, error) {
	var postMs []model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("id").
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find posts by user id")
	}

	return toPostDomainList(postMs), nil
}

// FindByUsername retrieves all posts whose owner has the given username,
// joining through the users table.
func (repo *postRepository) FindByUsername(ctx context.Context, username string) ([]*entity.Post, error) {
	var postMs []model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN users ON users.id = posts.user_id").
		Where("users.username = ?", username).
		Order("posts.id").
		Find(&postMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find posts by username")
	}

	return toPostDomainList(postMs), nil
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostOwnerNotFound.WrapMessage("post references a missing user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt
	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Update modifies an existing post entity in the database.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Save(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPostOwnerNotFound.WrapMessage("post references a missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update post")
	}

	post.UpdatedAt = postM.UpdatedAt

	return nil
}

// Delete removes an existing post entity from the database.
func (repo *postRepository) Delete(ctx context.Context, post *entity.Post) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, post.ID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPostDomain converts a GORM PostModel to a domain Post entity.
func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	post := &entity.Post{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.User != nil {
		post.Username = data.User.Username
	}

	return post
}

func toPostDomainList(data []model.PostModel) []*entity.Post {
	posts := make([]*entity.Post, 0, len(data))
	for i := range data {
		posts = append(posts, toPostDomain(&data[i]))
	}

	return posts
}

// fromPostDomain converts a domain Post entity to a GORM PostModel for persistence.
// The owner association is carried as a bare foreign key; the username snapshot
// is read-side only.
func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}
