package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
	"github.com/campus-hub/community-service/internal/repository"
)

const defaultMaxContentLen = 5000

type SendMessageInput struct {
	RoomID   string
	SenderID int64
	Content  string
	FilePath *string
}

// messageDraft — состояние одного прохода конвейера; этапы дополняют его
// по мере продвижения.
type messageDraft struct {
	in      SendMessageInput
	content string
	room    *domain.Room
	sender  *domain.User
	msg     *domain.ChatMessage
}

type stage func(ctx context.Context, d *messageDraft) error

// ChatService — конвейер входящего сообщения: validate → authorize →
// enrich-mentions → persist. Этапы выполняются строго по порядку, ошибка
// любого этапа обрывает проход; события поднимаются только после
// успешной записи.
type ChatService struct {
	rooms    repository.RoomRepository
	members  repository.MemberRepository
	users    repository.UserRepository
	messages repository.MessageRepository
	router   *events.Router

	maxContentLen int
	stages        []stage
}

func NewChatService(
	rooms repository.RoomRepository,
	members repository.MemberRepository,
	users repository.UserRepository,
	messages repository.MessageRepository,
	router *events.Router,
) *ChatService {
	s := &ChatService{
		rooms:         rooms,
		members:       members,
		users:         users,
		messages:      messages,
		router:        router,
		maxContentLen: defaultMaxContentLen,
	}
	// Порядок фиксирован: авторизация раньше записи, enrich раньше записи.
	s.stages = []stage{
		s.validate,
		s.authorize,
		s.enrichMentions,
		s.persist,
	}
	return s
}

func (s *ChatService) SetMaxContentLen(n int) {
	if n > 0 {
		s.maxContentLen = n
	}
}

// Send прогоняет сообщение через конвейер и возвращает сохранённую запись.
func (s *ChatService) Send(ctx context.Context, in SendMessageInput) (*domain.ChatMessage, error) {
	d := &messageDraft{in: in}
	for _, st := range s.stages {
		if err := st(ctx, d); err != nil {
			return nil, err
		}
	}
	return d.msg, nil
}

func (s *ChatService) History(ctx context.Context, roomID, after string, limit int) ([]domain.ChatMessage, string, error) {
	return s.messages.History(ctx, roomID, after, limit)
}

// --- этапы ---

func (s *ChatService) validate(_ context.Context, d *messageDraft) error {
	if d.in.RoomID == "" {
		return fmt.Errorf("%w: room_id is required", domain.ErrValidation)
	}
	if d.in.SenderID == 0 {
		return fmt.Errorf("%w: sender_id is required", domain.ErrValidation)
	}

	content := strings.TrimSpace(d.in.Content)
	if content == "" && d.in.FilePath == nil {
		return fmt.Errorf("%w: message must have content or a file", domain.ErrValidation)
	}
	if utf8.RuneCountInString(content) > s.maxContentLen {
		return fmt.Errorf("%w: content exceeds %d characters", domain.ErrValidation, s.maxContentLen)
	}

	d.content = html.EscapeString(content)
	return nil
}

func (s *ChatService) authorize(ctx context.Context, d *messageDraft) error {
	ok, err := s.members.Exists(ctx, d.in.RoomID, d.in.SenderID)
	if err != nil {
		return fmt.Errorf("membership lookup: %w", err)
	}
	if !ok {
		return domain.ErrNotMember
	}

	// Контекст для payload событий: имя комнаты и отправителя.
	room, err := s.rooms.Get(ctx, d.in.RoomID)
	if err != nil {
		return err
	}
	sender, err := s.users.GetByID(ctx, d.in.SenderID)
	if err != nil {
		return err
	}
	d.room = room
	d.sender = sender
	return nil
}

// enrichMentions разрешает @name-токены в id пользователей.
// Неразрешённые имена молча отбрасываются.
func (s *ChatService) enrichMentions(ctx context.Context, d *messageDraft) error {
	var ids []int64
	seen := make(map[int64]struct{})
	for _, name := range scanMentions(d.content) {
		u, err := s.users.GetByUsername(ctx, name)
		if err != nil {
			if err == domain.ErrUserNotFound {
				continue
			}
			return fmt.Errorf("mention lookup %q: %w", name, err)
		}
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		ids = append(ids, u.ID)
	}

	d.msg = &domain.ChatMessage{
		RoomID:           d.in.RoomID,
		SenderID:         d.in.SenderID,
		Content:          d.content,
		MessageType:      domain.MessageTypeText,
		FilePath:         d.in.FilePath,
		MentionedUserIDs: ids,
	}
	if d.in.FilePath != nil {
		d.msg.MessageType = domain.MessageTypeFile
	}
	return nil
}

func (s *ChatService) persist(ctx context.Context, d *messageDraft) error {
	if err := s.messages.Save(ctx, d.msg); err != nil {
		return fmt.Errorf("persist message: %w", err)
	}

	// События только после успешной записи. Dispatch не возвращает ошибок:
	// сбой уведомления не отменяет сохранённое сообщение.
	if len(d.msg.MentionedUserIDs) > 0 {
		s.router.Dispatch(ctx, events.EventChatMention, events.Payload{
			"message_id":      d.msg.ID,
			"room_id":         d.msg.RoomID,
			"mentioned_users": d.msg.MentionedUserIDs,
			"author_id":       d.sender.ID,
			"author_name":     d.sender.Name(),
			"content_id":      d.msg.ID,
			"content_type":    domain.RelatedMessage,
		})
	}
	s.router.Dispatch(ctx, events.EventChatMessage, events.Payload{
		"message_id":  d.msg.ID,
		"room_id":     d.msg.RoomID,
		"sender_id":   d.sender.ID,
		"sender_name": d.sender.Name(),
		"room_name":   d.room.Name,
		"content":     d.msg.Content,
	})
	return nil
}
