package tracker

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// RepositoryStats fetches all issues and pull requests and aggregates them.
// The two list calls run concurrently. AverageTimeToClose spans closed
// issues and closed PRs together, in milliseconds.
func (c *Client) RepositoryStats(ctx context.Context, owner, repo string) (Stats, error) {
	var (
		issues []Issue
		prs    []PullRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		issues, err = c.Issues(gctx, owner, repo, Filters{State: "all"})
		if err != nil {
			return fmt.Errorf("list issues: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		prs, err = c.PullRequests(gctx, owner, repo, Filters{State: "all"})
		if err != nil {
			return fmt.Errorf("list pull requests: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	return aggregate(issues, prs), nil
}

func aggregate(issues []Issue, prs []PullRequest) Stats {
	s := Stats{TotalIssues: len(issues), TotalPRs: len(prs)}

	var closedCount int
	var totalToCloseMS float64

	contributions := map[string]*Contributor{}
	var logins []string
	credit := func(u User) {
		if c, ok := contributions[u.Login]; ok {
			c.Contributions++
			return
		}
		contributions[u.Login] = &Contributor{User: u, Contributions: 1}
		logins = append(logins, u.Login)
	}

	for _, issue := range issues {
		switch issue.State {
		case "open":
			s.OpenIssues++
		case "closed":
			s.ClosedIssues++
			if issue.ClosedAt != nil {
				closedCount++
				totalToCloseMS += float64(issue.ClosedAt.Sub(issue.CreatedAt).Milliseconds())
			}
		}
		credit(issue.User)
	}
	for _, pr := range prs {
		switch pr.State {
		case "open":
			s.OpenPRs++
		case "merged":
			s.MergedPRs++
		case "closed":
			s.ClosedPRs++
			if pr.ClosedAt != nil {
				closedCount++
				totalToCloseMS += float64(pr.ClosedAt.Sub(pr.CreatedAt).Milliseconds())
			}
		}
		credit(pr.User)
	}

	if closedCount > 0 {
		s.AverageTimeToClose = totalToCloseMS / float64(closedCount)
	}

	top := make([]Contributor, 0, len(logins))
	for _, login := range logins {
		top = append(top, *contributions[login])
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Contributions > top[j].Contributions
	})
	if len(top) > 5 {
		top = top[:5]
	}
	s.TopContributors = top
	return s
}
