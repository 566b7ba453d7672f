package http

import (
	"net/http"
	"strconv"
	"strings"

	"takip/internal/tracker"
)

// Thin pass-throughs to the issue tracker. Every handler answers 503 until a
// tracker client is configured.

func (s *Server) trackerUnavailable(w http.ResponseWriter) bool {
	if s.tracker == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "issue tracker not configured"})
		return true
	}
	return false
}

func trackerFilters(r *http.Request) tracker.Filters {
	q := r.URL.Query()
	f := tracker.Filters{
		State:     q.Get("state"),
		Assignee:  q.Get("assignee"),
		Creator:   q.Get("creator"),
		Mentioned: q.Get("mentioned"),
		Sort:      q.Get("sort"),
		Direction: q.Get("direction"),
		Since:     q.Get("since"),
	}
	if v := q.Get("labels"); v != "" {
		f.Labels = strings.Split(v, ",")
	}
	if v, err := strconv.Atoi(q.Get("per_page")); err == nil {
		f.PerPage = v
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		f.Page = v
	}
	return f
}

func issueNumber(w http.ResponseWriter, r *http.Request) (int, bool) {
	n, err := strconv.Atoi(r.PathValue("number"))
	if err != nil || n < 1 {
		badRequest(w, "invalid issue number")
		return 0, false
	}
	return n, true
}

func (s *Server) handleTrackerIssues(w http.ResponseWriter, r *http.Request) {
	if s.trackerUnavailable(w) {
		return
	}
	issues, err := s.tracker.Issues(r.Context(), r.PathValue("owner"), r.PathValue("repo"), trackerFilters(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, issues)
}

func (s *Server) handleTrackerIssue(w http.ResponseWriter, r *http.Request) {
	if s.trackerUnavailable(w) {
		return
	}
	n, ok := issueNumber(w, r)
	if !ok {
		return
	}
	issue, err := s.tracker.Issue(r.Context(), r.PathValue("owner"), r.PathValue("repo"), n)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

func (s *Server) handleTrackerCreateIssue(w http.ResponseWriter, r *http.Request) {
	if s.trackerUnavailable(w) {
		return
	}
	var req tracker.CreateIssue
	if err := decodeJSON(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		badRequest(w, "title must not be empty")
		return
	}
	issue, err := s.tracker.CreateIssue(r.Context(), r.PathValue("owner"), r.PathValue("repo"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, issue)
}

func (s *Server) handleTrackerCloseIssue(w http.ResponseWriter, r *http.Request) {
	if s.trackerUnavailable(w) {
		return
	}
	n, ok := issueNumber(w, r)
	if !ok {
		return
	}
	issue, err := s.tracker.CloseIssue(r.Context(), r.PathValue("owner"), r.PathValue("repo"), n)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

func (s *Server) handleTrackerReopenIssue(w http.ResponseWriter, r *http.Request) {
	if s.trackerUnavailable(w) {
		return
	}
	n, ok := issueNumber(w, r)
	if !ok {
		return
	}
	issue, err := s.tracker.ReopenIssue(r.Context(), r.PathValue("owner"), r.PathValue("repo"), n)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, issue)
}

func (s *Server) handleTrackerPulls(w http.ResponseWriter, r *http.Request) {
	if s.trackerUnavailable(w) {
		return
	}
	prs, err := s.tracker.PullRequests(r.Context(), r.PathValue("owner"), r.PathValue("repo"), trackerFilters(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, prs)
}

func (s *Server) handleTrackerStats(w http.ResponseWriter, r *http.Request) {
	if s.trackerUnavailable(w) {
		return
	}
	stats, err := s.tracker.RepositoryStats(r.Context(), r.PathValue("owner"), r.PathValue("repo"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
