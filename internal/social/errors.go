package social

import "errors"

var (
	ErrRequestNotFound  = errors.New("friend request not found")
	ErrAlreadyFriends   = errors.New("already friends")
	ErrAlreadyRequested = errors.New("friend request already sent")
	ErrSelfRequest      = errors.New("cannot befriend yourself")
	ErrFriendNotFound   = errors.New("friend not found")
	ErrEmptyUsername    = errors.New("username is required")
)
