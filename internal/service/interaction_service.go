package service

import (
	"context"
	"errors"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
	"github.com/campus-hub/community-service/internal/repository"
)

type ToggleResult string

const (
	ToggleAdded         ToggleResult = "added"
	ToggleRemoved       ToggleResult = "removed"
	ToggleUpdated       ToggleResult = "updated"
	ToggleAlreadyShared ToggleResult = "already_shared"

	PostSaved   ToggleResult = "saved"
	PostUnsaved ToggleResult = "unsaved"
)

// InteractionService — машина состояний реакции на пару (post, actor):
// {absent, LIKE, LOVE, CELEBRATE, SHARE}. SAVE — параллельный флаг,
// от реакций не зависит.
type InteractionService struct {
	posts        repository.PostRepository
	interactions repository.InteractionRepository
	users        repository.UserRepository
	router       *events.Router
}

func NewInteractionService(
	posts repository.PostRepository,
	interactions repository.InteractionRepository,
	users repository.UserRepository,
	router *events.Router,
) *InteractionService {
	return &InteractionService{
		posts:        posts,
		interactions: interactions,
		users:        users,
		router:       router,
	}
}

// Toggle применяет реакцию:
//   - строки нет → создать, событие (added);
//   - строка с тем же типом → удалить, события нет (снятие не уведомляется);
//   - строка с другим типом → обновить тип, событие (updated).
//
// SHARE — исключение: повторный SHARE не снимает реакцию, а возвращает
// already_shared (расшаривание необратимо в отличие от реакции).
func (s *InteractionService) Toggle(ctx context.Context, postID string, actorID int64, t domain.InteractionType) (ToggleResult, error) {
	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		return "", err
	}
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return "", err
	}

	existing, err := s.interactions.Get(ctx, postID, actorID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	switch {
	case existing == nil:
		in := &domain.Interaction{PostID: postID, UserID: actorID, Type: t}
		if err := s.interactions.Upsert(ctx, in); err != nil {
			return "", err
		}
		s.emit(ctx, post, actor, t, string(ToggleAdded))
		return ToggleAdded, nil

	case existing.Type == t:
		if t == domain.InteractionShare {
			return ToggleAlreadyShared, nil
		}
		if err := s.interactions.Delete(ctx, postID, actorID); err != nil {
			// Параллельный toggle уже снял строку — считаем снятой.
			if errors.Is(err, repository.ErrNotFound) {
				return ToggleRemoved, nil
			}
			return "", err
		}
		return ToggleRemoved, nil

	default:
		in := &domain.Interaction{PostID: postID, UserID: actorID, Type: t}
		if err := s.interactions.Upsert(ctx, in); err != nil {
			return "", err
		}
		// Смена реакции — одно событие, не два.
		s.emit(ctx, post, actor, t, string(ToggleUpdated))
		return ToggleUpdated, nil
	}
}

// ToggleSave переключает сохранение поста. Событий не поднимает.
func (s *InteractionService) ToggleSave(ctx context.Context, postID string, actorID int64) (ToggleResult, error) {
	if _, err := s.posts.Get(ctx, postID); err != nil {
		return "", err
	}

	saved, err := s.interactions.IsSaved(ctx, postID, actorID)
	if err != nil {
		return "", err
	}
	if saved {
		if err := s.interactions.UnsavePost(ctx, postID, actorID); err != nil {
			return "", err
		}
		return PostUnsaved, nil
	}
	if err := s.interactions.SavePost(ctx, postID, actorID); err != nil {
		return "", err
	}
	return PostSaved, nil
}

// Самоуведомление (actor == author) подавляется консьюмером, не здесь.
func (s *InteractionService) emit(ctx context.Context, post *domain.Post, actor *domain.User, t domain.InteractionType, action string) {
	s.router.Dispatch(ctx, events.EventPostInteraction, events.Payload{
		"post_id":          post.ID,
		"post_author_id":   post.AuthorID,
		"user_id":          actor.ID,
		"user_name":        actor.Name(),
		"interaction_type": string(t),
		"action":           action,
	})
}
