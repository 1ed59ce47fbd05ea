package events

// Имена событий. Продюсеры и консьюмеры связаны только через эти ключи.
const (
	EventPostCommented   = "post.commented"
	EventPostInteraction = "post.interaction"
	EventUserMentioned   = "user.mentioned"
	EventChatMessage     = "chat.message"
	EventChatMention     = "chat.mention"
	EventMemberAdded     = "member.added"
	EventProjectApproved = "project.approved"
	EventProjectRejected = "project.rejected"
	EventProjectGraded   = "project.graded"

	// Внутренние имена fan-out: одна доставка на получателя.
	EventRoomMessage = "room.message"
	EventRoomJoined  = "room.joined"

	// Объявлены, но обработчики не регистрируются (задел на будущее).
	EventMemberRemoved = "member.removed"
	EventRoomUpdated   = "room.updated"
)

// Payload — транзитные данные события; никогда не персистится как есть.
type Payload map[string]any

func (p Payload) Str(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func (p Payload) I64(key string) int64 {
	switch v := p[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func (p Payload) I64s(key string) []int64 {
	switch v := p[key].(type) {
	case []int64:
		return v
	case []any:
		out := make([]int64, 0, len(v))
		for _, e := range v {
			switch n := e.(type) {
			case int64:
				out = append(out, n)
			case int:
				out = append(out, int64(n))
			}
		}
		return out
	}
	return nil
}

// With возвращает копию payload с добавленным полем; исходная map
// не мутируется, т.к. один payload раздаётся нескольким обработчикам.
func (p Payload) With(key string, v any) Payload {
	out := make(Payload, len(p)+1)
	for k, val := range p {
		out[k] = val
	}
	out[key] = v
	return out
}
