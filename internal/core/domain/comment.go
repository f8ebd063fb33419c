package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	CommentMinLen = 1
	CommentMaxLen = 500
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrCommentText     = errors.New("comment text must be between 1 and 500 characters")
	ErrReplyText       = errors.New("reply text required")
)

// Reply is an admin response embedded in a comment. Replies have no
// independent identity and are append-only.
type Reply struct {
	AdminName string    `json:"admin_name" bson:"admin_name"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Comment is a user comment on a movie. Username is denormalized at write
// time; a later username change does not rewrite historical comments.
type Comment struct {
	ID        string    `json:"id"`
	MovieID   string    `json:"movie_id"`
	UserID    string    `json:"-"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	Replies   []Reply   `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidCommentText reports whether text fits the length bounds after
// trimming surrounding whitespace. Length is counted in runes so the limit
// matches what a user sees, not the UTF-8 byte size.
func ValidCommentText(text string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	return n >= CommentMinLen && n <= CommentMaxLen
}
