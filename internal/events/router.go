package events

import (
	"context"
	"log/slog"

	"github.com/campus-hub/community-service/internal/domain"
)

// HandlerFunc — один консьюмер события. Ошибка логируется роутером
// и не прерывает остальных обработчиков.
type HandlerFunc func(ctx context.Context, p Payload) error

// RoomDirectory — контекст комнаты, который роутер подгружает сам
// для room-scoped событий.
type RoomDirectory interface {
	Members(ctx context.Context, roomID string) ([]domain.Member, error)
	Owner(ctx context.Context, roomID string) (int64, error)
}

// Router — медиатор между продюсерами и консьюмерами уведомлений.
// Таблица обработчиков собирается один раз на старте; Dispatch
// никогда не возвращает ошибку продюсеру: доставка best-effort.
type Router struct {
	rooms    RoomDirectory
	handlers map[string][]HandlerFunc
}

func NewRouter(rooms RoomDirectory) *Router {
	return &Router{
		rooms:    rooms,
		handlers: make(map[string][]HandlerFunc),
	}
}

// Register добавляет обработчик события. Вызывается только при сборке
// приложения, до первого Dispatch; конкурентная регистрация не поддерживается.
func (r *Router) Register(name string, h HandlerFunc) {
	r.handlers[name] = append(r.handlers[name], h)
}

// Dispatch маршрутизирует событие. Room-scoped события раскладываются
// в под-события по получателям, остальные уходят обработчикам напрямую.
func (r *Router) Dispatch(ctx context.Context, name string, p Payload) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("events: dispatch panic", "event", name, slog.Any("panic", rec))
		}
	}()

	switch name {
	case EventChatMessage:
		// Прямые подписчики (например, WS-рассылка), затем fan-out по членам.
		r.deliver(ctx, name, p)
		r.fanOutRoomMessage(ctx, p)
	case EventMemberAdded:
		r.deliver(ctx, name, p)
		r.fanOutRoomJoined(ctx, p)
	case EventChatMention:
		// chat.mention — то же, что user.mentioned, с message_id в payload.
		r.Dispatch(ctx, EventUserMentioned, p)
	case EventUserMentioned:
		r.fanOutMentions(ctx, p)
	default:
		r.deliver(ctx, name, p)
	}
}

// fanOutRoomMessage: одна доставка room.message каждому члену комнаты,
// кроме отправителя.
func (r *Router) fanOutRoomMessage(ctx context.Context, p Payload) {
	roomID := p.Str("room_id")
	senderID := p.I64("sender_id")

	members, err := r.rooms.Members(ctx, roomID)
	if err != nil {
		slog.Error("events: resolve room members failed", "room", roomID, slog.Any("err", err))
		return
	}
	for _, m := range members {
		if m.UserID == senderID {
			continue
		}
		r.deliver(ctx, EventRoomMessage, p.With("recipient_id", m.UserID))
	}
}

// fanOutRoomJoined: room.joined уходит только владельцу комнаты;
// вход владельца в собственную комнату не уведомляется.
func (r *Router) fanOutRoomJoined(ctx context.Context, p Payload) {
	roomID := p.Str("room_id")
	userID := p.I64("user_id")

	ownerID, err := r.rooms.Owner(ctx, roomID)
	if err != nil {
		slog.Error("events: resolve room owner failed", "room", roomID, slog.Any("err", err))
		return
	}
	if ownerID == userID {
		return
	}
	r.deliver(ctx, EventRoomJoined, p.With("recipient_id", ownerID))
}

// fanOutMentions: payload уже несёт список получателей; автор, если
// упомянул сам себя, пропускается.
func (r *Router) fanOutMentions(ctx context.Context, p Payload) {
	authorID := p.I64("author_id")
	for _, uid := range p.I64s("mentioned_users") {
		if uid == authorID {
			continue
		}
		r.deliver(ctx, EventUserMentioned, p.With("recipient_id", uid))
	}
}

// deliver вызывает всех зарегистрированных обработчиков по очереди.
// Ошибка или паника одного не останавливает остальных.
func (r *Router) deliver(ctx context.Context, name string, p Payload) {
	for _, h := range r.handlers[name] {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					slog.Error("events: handler panic", "event", name, slog.Any("panic", rec))
				}
			}()
			if err := h(ctx, p); err != nil {
				slog.Error("events: handler failed", "event", name, slog.Any("err", err))
			}
		}()
	}
}
