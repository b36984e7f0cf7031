package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAllPosts returns every post.
func (srv *postService) GetAllPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// GetPostByID returns the post with the given id, or repository.ErrPostNotFound.
func (srv *postService) GetPostByID(ctx context.Context, id int64) (*entity.Post, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return post, nil
}

// GetPostsByUserID returns all posts owned by the given user id.
func (srv *postService) GetPostsByUserID(ctx context.Context, userID int64) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by user id")
	}

	return posts, nil
}

// GetPostsByUsername returns all posts whose owner has the given username.
func (srv *postService) GetPostsByUsername(ctx context.Context, username string) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts by username")
	}

	return posts, nil
}

// CreatePost resolves the owner inside the same transaction as the insert, so
// a post can never be created against a user that vanished in between. An
// unresolvable owner is a precondition failure, not ordinary absence.
func (srv *postService) CreatePost(ctx context.Context, post *entity.Post, userID int64) (*entity.Post, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrPostOwnerNotFound.WrapMessage("cannot create post for missing user")
		}
		if err != nil {
			return errors.Wrap(err, "failed to resolve post owner")
		}

		post.UserID = owner.ID
		post.Username = owner.Username

		if err := repoFactory.PostRepo().Create(ctx, post); err != nil {
			return errors.Wrap(err, "failed to create post")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute post creation transaction", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Post created", slog.Int64("postID", post.ID), slog.Int64("userID", post.UserID))

	return post, nil
}

// UpdatePost overwrites only title and content of an existing post. Owner and
// store-managed timestamps stay out of reach.
func (srv *postService) UpdatePost(ctx context.Context, id int64, input *usecase.UpdatePostInput) (*entity.Post, error) {
	var updated *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.PostRepo()

		existing, err := postRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrPostNotFound) {
				return err
			}

			return errors.Wrap(err, "failed to find post for update")
		}

		existing.Title = input.Title
		existing.Content = input.Content

		if err := postRepo.Update(ctx, existing); err != nil {
			return errors.Wrap(err, "failed to persist post update")
		}
		updated = existing

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, err
		}
		srv.log(ctx).Error("Failed to execute post update transaction", slog.Int64("postID", id), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// DeletePost removes the post with the given id. Reports false, without
// error, when no such post exists.
func (srv *postService) DeletePost(ctx context.Context, id int64) (bool, error) {
	err := srv.postRepo.Delete(ctx, &entity.Post{ID: id})
	if errors.Is(err, repository.ErrPostNotFound) {
		return false, nil
	}
	if err != nil {
		srv.log(ctx).Error("Failed to delete post", slog.Int64("postID", id), slog.Any("error", err))

		return false, errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Int64("postID", id))

	return true, nil
}

// IsPostOwner reports whether the post exists and belongs to userID. A
// missing post is simply "not the owner". Unrouted for now; a future
// authorization layer is the intended caller.
func (srv *postService) IsPostOwner(ctx context.Context, postID, userID int64) (bool, error) {
	post, err := srv.postRepo.FindByID(ctx, postID)
	if errors.Is(err, repository.ErrPostNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to find post for ownership check")
	}

	return post.UserID == userID, nil
}
