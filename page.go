package commentum

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// Page is one page of comments plus the continuation state. NextCursor is
// opaque and server-defined: the client only round-trips it into the next
// request, never inspects it. An empty NextCursor means the sequence is
// exhausted. Count is the server's total for the listing when it reports
// one.
type Page struct {
	Comments   []Comment
	NextCursor string
	Count      int
}

// HasMore reports whether another page can be requested.
func (p *Page) HasMore() bool {
	return p.NextCursor != ""
}

// decodePage reads the collection under key ("comments" or "replies") from
// a list response, defaulting to an empty page when the collection is
// absent or null.
func decodePage(raw json.RawMessage, key string) (*Page, error) {
	var envelope struct {
		Comments   []Comment `json:"comments"`
		Replies    []Comment `json:"replies"`
		NextCursor string    `json:"next_cursor"`
		Count      int       `json:"count"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &envelope); err != nil {
			return nil, malformedError(http.StatusOK)
		}
	}

	items := envelope.Comments
	if key == "replies" {
		items = envelope.Replies
	}
	if items == nil {
		items = []Comment{}
	}

	return &Page{
		Comments:   items,
		NextCursor: envelope.NextCursor,
		Count:      envelope.Count,
	}, nil
}

// cursorQuery adds the cursor parameter to a query only when one was
// supplied; an absent cursor is omitted, not sent empty.
func cursorQuery(params url.Values, cursor string) url.Values {
	if cursor != "" {
		params.Set("cursor", cursor)
	}
	return params
}
