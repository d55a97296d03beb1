package post

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"emojifeed/internal/core/apperr"

	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// ContentShape decides whether content has an acceptable form, independent
// of its length.
type ContentShape func(content string) bool

// ContentPolicy bounds post content. Lengths count user-perceived characters
// (grapheme clusters), so "👍🏽" is one character.
type ContentPolicy struct {
	MinLength int
	MaxLength int
	Shape     ContentShape
	// ShapeMessage is returned when Shape rejects the content.
	ShapeMessage string
}

// DefaultContentPolicy allows 1 to 280 characters of emoji.
func DefaultContentPolicy() ContentPolicy {
	return ContentPolicy{
		MinLength:    1,
		MaxLength:    280,
		Shape:        EmojiOnly,
		ShapeMessage: "content must contain only emoji",
	}
}

// Validate returns a VALIDATION_ERROR when content breaks the policy.
func (p ContentPolicy) Validate(content string) error {
	n := uniseg.GraphemeClusterCount(content)
	if n < p.MinLength {
		return apperr.Validation(fmt.Sprintf("content must be at least %d characters", p.MinLength))
	}
	if p.MaxLength > 0 && n > p.MaxLength {
		return apperr.Validation(fmt.Sprintf("content too long (max %d characters)", p.MaxLength))
	}
	if p.Shape != nil && !p.Shape(content) {
		msg := p.ShapeMessage
		if msg == "" {
			msg = "content has an invalid shape"
		}
		return apperr.Validation(msg)
	}
	return nil
}

// EmojiOnly reports whether every character of content is an emoji from
// the Unicode emoji list. Empty content is not emoji-only.
func EmojiOnly(content string) bool {
	g := uniseg.NewGraphemes(content)
	n := 0
	for g.Next() {
		if !isEmojiCluster(g.Str()) {
			return false
		}
		n++
	}
	return n > 0
}

const variationSelector16 = '\uFE0F'

func isEmojiCluster(cluster string) bool {
	if _, err := gomoji.GetInfo(cluster); err == nil {
		return true
	}
	// the list holds fully-qualified forms; "❤" and "1⃣" are typed without
	// the selector that follows their first code point
	if strings.ContainsRune(cluster, variationSelector16) {
		return false
	}
	r, size := utf8.DecodeRuneInString(cluster)
	_, err := gomoji.GetInfo(string(r) + string(variationSelector16) + cluster[size:])
	return err == nil
}
