package validation

import (
	"strings"

	"github.com/devarran/photoshare/backend/internal/apperrors"
)

// CommentInput is a validated, normalized comment payload.
type CommentInput struct {
	Author string
	Text   string
}

// ValidateComment normalizes the author name and rejects comments whose body
// is empty after trimming.
func ValidateComment(author, text string) (CommentInput, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return CommentInput{}, apperrors.InvalidInput("comment text must not be empty")
	}
	return CommentInput{
		Author: NormalizeAuthor(author),
		Text:   trimmed,
	}, nil
}
