package tracker

import (
	"context"
	"fmt"
	"net/http"
)

// Issues lists a repository's issues, narrowed by filters.
func (c *Client) Issues(ctx context.Context, owner, repo string, filters Filters) ([]Issue, error) {
	path := fmt.Sprintf("/repos/%s/%s/issues", owner, repo)
	if q := filters.values().Encode(); q != "" {
		path += "?" + q
	}
	var out []Issue
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// Issue fetches one issue by number.
func (c *Client) Issue(ctx context.Context, owner, repo string, number int) (Issue, error) {
	var out Issue
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, number), nil, &out)
	return out, err
}

// CreateIssue opens a new issue.
func (c *Client) CreateIssue(ctx context.Context, owner, repo string, req CreateIssue) (Issue, error) {
	var out Issue
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/issues", owner, repo), req, &out)
	return out, err
}

// UpdateIssue patches the fields set in req.
func (c *Client) UpdateIssue(ctx context.Context, owner, repo string, number int, req CreateIssue) (Issue, error) {
	var out Issue
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/repos/%s/%s/issues/%d", owner, repo, number), req, &out)
	return out, err
}

// CloseIssue and ReopenIssue are state-only patches.
func (c *Client) CloseIssue(ctx context.Context, owner, repo string, number int) (Issue, error) {
	return c.UpdateIssue(ctx, owner, repo, number, CreateIssue{State: "closed"})
}

func (c *Client) ReopenIssue(ctx context.Context, owner, repo string, number int) (Issue, error) {
	return c.UpdateIssue(ctx, owner, repo, number, CreateIssue{State: "open"})
}

// IssueComments lists an issue's comments.
func (c *Client) IssueComments(ctx context.Context, owner, repo string, number int) ([]Comment, error) {
	var out []Comment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/issues/%d/comments", owner, repo, number), nil, &out)
	return out, err
}

// AddIssueComment posts a comment on an issue.
func (c *Client) AddIssueComment(ctx context.Context, owner, repo string, number int, body string) (Comment, error) {
	var out Comment
	payload := map[string]string{"body": body}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/issues/%d/comments", owner, repo, number), payload, &out)
	return out, err
}

// SearchIssues runs a free-text search over issues.
func (c *Client) SearchIssues(ctx context.Context, query string, filters Filters) (SearchResult[Issue], error) {
	v := filters.values()
	v.Set("q", query)
	var out SearchResult[Issue]
	err := c.do(ctx, http.MethodGet, "/search/issues?"+v.Encode(), nil, &out)
	return out, err
}
