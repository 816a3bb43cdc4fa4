package naming

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is shared; the client is safe for concurrent reads.
var pluralizeClient = pluralizer.NewClient()

// Case is a naming convention for identifiers derived from Go names.
type Case int

const (
	SnakeCase  Case = iota // user_id, blog_post
	CamelCase              // userId, blogPost
	PascalCase             // UserId, BlogPost
)

// Strategy converts Go struct and field names into table and column
// names.
type Strategy struct {
	Column Case
	Table  Case
	// Plural pluralizes the last word of table names.
	Plural bool
}

// DefaultStrategy produces snake_case columns and plural snake_case
// tables: BlogPost.AuthorID becomes blog_posts.author_id.
func DefaultStrategy() Strategy {
	return Strategy{Column: SnakeCase, Table: SnakeCase, Plural: true}
}

// ColumnName converts a Go field name.
func (s Strategy) ColumnName(fieldName string) string {
	return convert(fieldName, s.Column)
}

// TableName converts a Go struct name.
func (s Strategy) TableName(structName string) string {
	words := splitWords(structName)
	if len(words) == 0 {
		return ""
	}
	if s.Plural {
		last := len(words) - 1
		words[last] = pluralize(words[last])
	}
	return join(words, s.Table)
}

func convert(name string, c Case) string {
	return join(splitWords(name), c)
}

func join(words []string, c Case) string {
	var sb strings.Builder
	for i, w := range words {
		switch {
		case c == SnakeCase:
			if i > 0 {
				sb.WriteByte('_')
			}
			sb.WriteString(w)
		case c == CamelCase && i == 0:
			sb.WriteString(w)
		default:
			sb.WriteString(strings.ToUpper(w[:1]))
			sb.WriteString(w[1:])
		}
	}
	return sb.String()
}

// splitWords breaks a Go or snake_case identifier into lowercase words.
// Acronyms stay whole: HTTPServerID gives http, server, id.
func splitWords(name string) []string {
	var words []string
	var cur []rune
	runes := []rune(name)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if r == '_' || r == '-' || unicode.IsSpace(r) {
			flush()
			continue
		}
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				flush()
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func pluralize(word string) string {
	return pluralizeClient.Pluralize(word, 2, false)
}
