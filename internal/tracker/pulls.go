package tracker

import (
	"context"
	"fmt"
	"net/http"
)

// PullRequests lists a repository's pull requests, narrowed by filters.
func (c *Client) PullRequests(ctx context.Context, owner, repo string, filters Filters) ([]PullRequest, error) {
	path := fmt.Sprintf("/repos/%s/%s/pulls", owner, repo)
	if q := filters.values().Encode(); q != "" {
		path += "?" + q
	}
	var out []PullRequest
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

// PullRequest fetches one pull request by number.
func (c *Client) PullRequest(ctx context.Context, owner, repo string, number int) (PullRequest, error) {
	var out PullRequest
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number), nil, &out)
	return out, err
}

// CreatePullRequest opens a new pull request.
func (c *Client) CreatePullRequest(ctx context.Context, owner, repo string, req CreatePullRequest) (PullRequest, error) {
	var out PullRequest
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/pulls", owner, repo), req, &out)
	return out, err
}

// UpdatePullRequest patches the fields set in req.
func (c *Client) UpdatePullRequest(ctx context.Context, owner, repo string, number int, req CreatePullRequest) (PullRequest, error) {
	var out PullRequest
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number), req, &out)
	return out, err
}

func (c *Client) ClosePullRequest(ctx context.Context, owner, repo string, number int) (PullRequest, error) {
	return c.UpdatePullRequest(ctx, owner, repo, number, CreatePullRequest{State: "closed"})
}

func (c *Client) ReopenPullRequest(ctx context.Context, owner, repo string, number int) (PullRequest, error) {
	return c.UpdatePullRequest(ctx, owner, repo, number, CreatePullRequest{State: "open"})
}

// MergeResult is the upstream response to a merge request.
type MergeResult struct {
	SHA     string `json:"sha"`
	Merged  bool   `json:"merged"`
	Message string `json:"message"`
}

// MergePullRequest merges a pull request, optionally overriding the merge
// commit message.
func (c *Client) MergePullRequest(ctx context.Context, owner, repo string, number int, commitMessage string) (MergeResult, error) {
	payload := map[string]string{}
	if commitMessage != "" {
		payload["commit_message"] = commitMessage
	}
	var out MergeResult
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/repos/%s/%s/pulls/%d/merge", owner, repo, number), payload, &out)
	return out, err
}

// PullRequestComments lists a pull request's review comments.
func (c *Client) PullRequestComments(ctx context.Context, owner, repo string, number int) ([]Comment, error) {
	var out []Comment
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/pulls/%d/comments", owner, repo, number), nil, &out)
	return out, err
}

// AddPullRequestComment posts a comment on a pull request.
func (c *Client) AddPullRequestComment(ctx context.Context, owner, repo string, number int, body string) (Comment, error) {
	var out Comment
	payload := map[string]string{"body": body}
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/repos/%s/%s/pulls/%d/comments", owner, repo, number), payload, &out)
	return out, err
}

// PullRequestReviews lists a pull request's reviews.
func (c *Client) PullRequestReviews(ctx context.Context, owner, repo string, number int) ([]Review, error) {
	var out []Review
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/repos/%s/%s/pulls/%d/reviews", owner, repo, number), nil, &out)
	return out, err
}

// SearchPullRequests runs a free-text search scoped to pull requests.
func (c *Client) SearchPullRequests(ctx context.Context, query string, filters Filters) (SearchResult[PullRequest], error) {
	v := filters.values()
	v.Set("q", query)
	v.Set("type", "pr")
	var out SearchResult[PullRequest]
	err := c.do(ctx, http.MethodGet, "/search/issues?"+v.Encode(), nil, &out)
	return out, err
}
