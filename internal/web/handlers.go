package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"lmsportal/internal/api"
	"lmsportal/internal/httpx"
	"lmsportal/internal/session"
)

// Role landing pages after login.
var errBadID = errors.New("invalid id in form submission")

const (
	pathLogin     = "/login"
	pathStudent   = "/student"
	pathLibrarian = "/librarian"
	pathAdmin     = "/admin"
)

func credFrom(r *http.Request) session.Credential {
	if s := httpx.SessionFrom(r); s != nil {
		return s.Credential
	}
	return session.Credential{}
}

func formID(r *http.Request, field string) (int64, bool) {
	id, err := strconv.ParseInt(r.FormValue(field), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Mutations follow post-redirect-get: success and failure both land
// back on the listing page, which refetches from the backend so the
// view always shows server truth. The outcome rides in the query
// string.
func redirectOutcome(w http.ResponseWriter, r *http.Request, path string, err error, notice string) {
	q := url.Values{}
	if err != nil {
		q.Set("error", api.Message(err))
	} else if notice != "" {
		q.Set("notice", notice)
	}
	target := path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// flashFrom pulls the redirect outcome back out of the query string.
func flashFrom(r *http.Request) (errMsg, notice string) {
	return r.URL.Query().Get("error"), r.URL.Query().Get("notice")
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, errors.New("invalid amount")
	}
	return v, nil
}

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
