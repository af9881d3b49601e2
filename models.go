package commentum

import (
	"context"
	"time"
)

// VoteType is the direction of a vote on a comment. The client forwards
// the value verbatim; the server rejects anything outside the documented
// set.
type VoteType int

const (
	VoteDown VoteType = -1
	VoteNone VoteType = 0
	VoteUp   VoteType = 1
)

// User is the service-side account behind a session.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	IsMod     bool      `json:"is_mod,omitempty"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a post on a media entry, or a reply when ParentID is set.
type Comment struct {
	ID         string    `json:"id"`
	MediaID    string    `json:"media_id,omitempty"`
	ParentID   string    `json:"parent_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Username   string    `json:"username,omitempty"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Content    string    `json:"content"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	UserVote   VoteType  `json:"user_vote,omitempty"`
	ReplyCount int       `json:"reply_count,omitempty"`
	IsEdited   bool      `json:"is_edited,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// IsReply reports whether the comment is a reply to another comment.
func (cm *Comment) IsReply() bool {
	return cm.ParentID != ""
}

// Convenience operations. Each takes the client explicitly; comments hold
// no client reference.

// Reply posts a reply under this comment.
func (cm *Comment) Reply(ctx context.Context, c *Client, content string) (*Comment, error) {
	return c.CreateReply(ctx, cm.ID, content)
}

// Edit updates this comment's content.
func (cm *Comment) Edit(ctx context.Context, c *Client, content string) (*Comment, error) {
	return c.UpdateComment(ctx, cm.ID, content)
}

// Delete removes this comment.
func (cm *Comment) Delete(ctx context.Context, c *Client) error {
	return c.DeleteComment(ctx, cm.ID)
}

// Vote casts a vote on this comment.
func (cm *Comment) Vote(ctx context.Context, c *Client, vote VoteType) error {
	return c.VoteComment(ctx, cm.ID, vote)
}

// Report flags this comment for moderation.
func (cm *Comment) Report(ctx context.Context, c *Client, reason string) error {
	return c.ReportComment(ctx, cm.ID, reason)
}
