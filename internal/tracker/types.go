package tracker

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

type User struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

type Label struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

type Milestone struct {
	ID          int64  `json:"id"`
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	State       string `json:"state"`
	DueOn       string `json:"due_on,omitempty"`
}

type Issue struct {
	ID        int64      `json:"id"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Body      string     `json:"body,omitempty"`
	State     string     `json:"state"`
	Locked    bool       `json:"locked"`
	Assignees []User     `json:"assignees"`
	Labels    []Label    `json:"labels"`
	Milestone *Milestone `json:"milestone,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
	User      User       `json:"user"`
	HTMLURL   string     `json:"html_url"`
	Comments  int        `json:"comments"`
}

type BranchRef struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

type PullRequest struct {
	ID             int64      `json:"id"`
	Number         int        `json:"number"`
	Title          string     `json:"title"`
	Body           string     `json:"body,omitempty"`
	State          string     `json:"state"`
	Locked         bool       `json:"locked"`
	Assignees      []User     `json:"assignees"`
	Labels         []Label    `json:"labels"`
	Milestone      *Milestone `json:"milestone,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	MergedAt       *time.Time `json:"merged_at,omitempty"`
	User           User       `json:"user"`
	HTMLURL        string     `json:"html_url"`
	Comments       int        `json:"comments"`
	ReviewComments int        `json:"review_comments"`
	Commits        int        `json:"commits"`
	Additions      int        `json:"additions"`
	Deletions      int        `json:"deletions"`
	ChangedFiles   int        `json:"changed_files"`
	Head           BranchRef  `json:"head"`
	Base           BranchRef  `json:"base"`
	Draft          bool       `json:"draft"`
	MergeableState string     `json:"mergeable_state,omitempty"`
}

type Repository struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Description     string `json:"description,omitempty"`
	Private         bool   `json:"private"`
	HTMLURL         string `json:"html_url"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	OpenIssuesCount int    `json:"open_issues_count"`
	Language        string `json:"language,omitempty"`
}

type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	HTMLURL   string    `json:"html_url"`
}

type Review struct {
	ID          int64     `json:"id"`
	User        User      `json:"user"`
	Body        string    `json:"body,omitempty"`
	State       string    `json:"state"`
	SubmittedAt time.Time `json:"submitted_at"`
	HTMLURL     string    `json:"html_url"`
}

// CreateIssue is the request body for opening or patching an issue. Empty
// fields are omitted so a patch only touches what it names.
type CreateIssue struct {
	Title     string   `json:"title,omitempty"`
	Body      string   `json:"body,omitempty"`
	State     string   `json:"state,omitempty"`
	Assignees []string `json:"assignees,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	Milestone int      `json:"milestone,omitempty"`
}

type CreatePullRequest struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
	State string `json:"state,omitempty"`
	Head  string `json:"head,omitempty"`
	Base  string `json:"base,omitempty"`
	Draft bool   `json:"draft,omitempty"`
}

// Filters narrows list endpoints. Zero values are left out of the query;
// label lists join with commas.
type Filters struct {
	State     string
	Assignee  string
	Creator   string
	Mentioned string
	Labels    []string
	Sort      string
	Direction string
	Since     string
	PerPage   int
	Page      int
}

func (f Filters) values() url.Values {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
		}
	}
	set("state", f.State)
	set("assignee", f.Assignee)
	set("creator", f.Creator)
	set("mentioned", f.Mentioned)
	if len(f.Labels) > 0 {
		v.Set("labels", strings.Join(f.Labels, ","))
	}
	set("sort", f.Sort)
	set("direction", f.Direction)
	set("since", f.Since)
	if f.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(f.PerPage))
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	return v
}

type Contributor struct {
	User          User `json:"user"`
	Contributions int  `json:"contributions"`
}

// Stats is the aggregate view over a repository's issues and pull requests.
// AverageTimeToClose is in milliseconds over all closed items.
type Stats struct {
	TotalIssues        int           `json:"totalIssues"`
	OpenIssues         int           `json:"openIssues"`
	ClosedIssues       int           `json:"closedIssues"`
	TotalPRs           int           `json:"totalPRs"`
	OpenPRs            int           `json:"openPRs"`
	MergedPRs          int           `json:"mergedPRs"`
	ClosedPRs          int           `json:"closedPRs"`
	AverageTimeToClose float64       `json:"averageTimeToClose"`
	TopContributors    []Contributor `json:"topContributors"`
}

type SearchResult[T any] struct {
	TotalCount int `json:"total_count"`
	Items      []T `json:"items"`
}
