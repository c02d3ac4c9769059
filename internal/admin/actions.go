package admin

import (
	"context"
	"fmt"
	"log"

	"github.com/amdkholil/django-blog/internal/cache"
	"github.com/amdkholil/django-blog/internal/db"
	"github.com/amdkholil/django-blog/internal/models"
	"github.com/amdkholil/django-blog/internal/repository"
)

// Action applies a bulk state change to the selected record ids and
// reports how many rows it touched.
type Action func(ctx context.Context, ids []uint) (int64, error)

// ErrUnknownAction is wrapped with the requested name.
var ErrUnknownAction = fmt.Errorf("unknown admin action")

// Registry maps action names to commands. The HTTP layer dispatches by
// name over an arbitrary selection of ids.
type Registry struct {
	posts    map[string]Action
	comments map[string]Action
}

func NewRegistry(database *db.Database, c *cache.RedisClient, now repository.Clock) *Registry {
	postRepo := repository.NewPostRepository(database.Gorm, now)
	commentRepo := repository.NewCommentRepository(database.Gorm)

	r := &Registry{posts: map[string]Action{}, comments: map[string]Action{}}

	postAction := func(name string, apply func(context.Context, []uint) (int64, error)) {
		r.posts[name] = func(ctx context.Context, ids []uint) (int64, error) {
			// The selection may carry ids that no longer exist; only
			// rows the update touched belong in the audit trail.
			affected, err := postRepo.ExistingIDs(ctx, ids)
			if err != nil {
				return 0, err
			}
			count, err := apply(ctx, ids)
			if err != nil {
				return 0, err
			}
			for _, id := range affected {
				if err := postRepo.LogActivity(ctx, database.Gorm, name, "post", id); err != nil {
					log.Printf("activity log %s post %d: %v", name, id, err)
				}
			}
			// Stale per-slug cache entries would hide the state change.
			if slugs, err := postRepo.SlugsByIDs(ctx, affected); err == nil {
				keys := make([]string, 0, len(slugs))
				for _, s := range slugs {
					keys = append(keys, cache.PostKey(s))
				}
				if err := c.Del(ctx, keys...); err != nil {
					log.Printf("cache del after %s: %v", name, err)
				}
			}
			return count, nil
		}
	}

	postAction("make_published", func(ctx context.Context, ids []uint) (int64, error) {
		return postRepo.UpdateStatus(ctx, ids, models.StatusPublished)
	})
	postAction("make_draft", func(ctx context.Context, ids []uint) (int64, error) {
		return postRepo.UpdateStatus(ctx, ids, models.StatusDraft)
	})
	postAction("make_featured", func(ctx context.Context, ids []uint) (int64, error) {
		return postRepo.SetFeatured(ctx, ids, true)
	})
	postAction("remove_featured", func(ctx context.Context, ids []uint) (int64, error) {
		return postRepo.SetFeatured(ctx, ids, false)
	})

	r.comments["approve_comments"] = func(ctx context.Context, ids []uint) (int64, error) {
		return commentRepo.SetApproved(ctx, ids, true)
	}
	r.comments["disapprove_comments"] = func(ctx context.Context, ids []uint) (int64, error) {
		return commentRepo.SetApproved(ctx, ids, false)
	}

	return r
}

// PostAction looks up a bulk action over posts.
func (r *Registry) PostAction(name string) (Action, error) {
	a, ok := r.posts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// CommentAction looks up a bulk action over comments.
func (r *Registry) CommentAction(name string) (Action, error) {
	a, ok := r.comments[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}
