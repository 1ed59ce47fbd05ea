package domain

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room is full")
	ErrAlreadyJoined = errors.New("user already joined the room")
	ErrNotInRoom     = errors.New("user not in the room")

	ErrPostNotFound    = errors.New("post not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrUserNotFound    = errors.New("user not found")

	// Ошибки конвейера сообщений: валидация и членство.
	ErrValidation = errors.New("validation failed")
	ErrNotMember  = errors.New("sender is not a room member")
)
