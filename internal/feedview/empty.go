package feedview

import "github.com/mohammed-danyal/brainrot-news/internal/domain"

// DefaultDetailSummary is shown in the detail overlay when an article has no summary.
const DefaultDetailSummary = "No tea available for this one yet. 😴"

type Empty int

const (
	EmptyNone Empty = iota
	EmptyNoData
	EmptyError
	EmptyNoMatch
)

func (e Empty) Message() string {
	switch e {
	case EmptyNoData:
		return "No tea yet. The bot is still cooking, check back soon."
	case EmptyError:
		return "Server is sleeping... wake it up!"
	case EmptyNoMatch:
		return "NO TRANSMISSIONS FOUND. Try selecting a different frequency."
	default:
		return ""
	}
}

// EmptyState tells apart a failed fetch, an empty store and a filter that
// matches nothing. It is EmptyNone while loading or when anything is visible.
func (m *Model) EmptyState() Empty {
	switch m.state {
	case StateError:
		return EmptyError
	case StateLoading:
		return EmptyNone
	}
	if len(m.all) == 0 {
		return EmptyNoData
	}
	if len(m.trending) == 0 && m.window.Len() == 0 {
		return EmptyNoMatch
	}
	return EmptyNone
}

// DetailSummary returns the text for the detail overlay body.
func DetailSummary(a domain.Article) string {
	if a.Summary == "" {
		return DefaultDetailSummary
	}
	return a.Summary
}
