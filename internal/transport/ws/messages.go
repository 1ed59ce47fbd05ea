package ws

// Типы событий, которые ходят по WS
const (
	TypeState      = "state"       // снапшот участников комнаты
	TypePeerJoined = "peer_joined" // пользователь подключился
	TypePeerLeft   = "peer_left"   // пользователь отключился
	TypeChat       = "chat"        // чат-сообщение
	TypeChatAck    = "chat_ack"    // подтверждение отправки (НЕ сообщение)
	TypeError      = "error"       // отказ конвейера (валидация/членство)
)

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

type StatePayload struct {
	RoomID  string            `json:"room_id"`
	Members []MemberStateItem `json:"members"`
}

type MemberStateItem struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	JoinedAt int64  `json:"joined_at_unix"`
	LastSeen int64  `json:"last_seen_unix"`
}

type PeerEventPayload struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
}

type ChatPayload struct {
	RoomID  string `json:"room_id"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`

	MsgID  string `json:"msg_id,omitempty"`
	TSUnix int64  `json:"ts_unix,omitempty"`
}

// для клиента: снятие pending и дедупликация
type ChatAckPayload struct {
	MsgID string `json:"msg_id"`
}

type ErrorPayload struct {
	Reason string `json:"reason"`
}
