package service

import "errors"

var (
	ErrInternal                      = errors.New("internal server error")
	ErrInvalidDate                   = errors.New("dateOfVisit must be in YYYY-MM-DD format")
	ErrPostNotFound                  = errors.New("post not found")
	ErrPostNotFoundOrUnauthorized    = errors.New("post not found or unauthorized")
	ErrCommentNotFoundOrUnauthorized = errors.New("comment not found or unauthorized")
	ErrUserExists                    = errors.New("user with this email or username already exists")
	ErrInvalidCredentials            = errors.New("invalid email or password")
	ErrUserNotFound                  = errors.New("user not found")
	ErrAlreadyFollowing              = errors.New("already following this user")
	ErrCannotFollowSelf              = errors.New("cannot follow yourself")
)
