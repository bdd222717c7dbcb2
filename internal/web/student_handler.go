package web

import (
	"net/http"

	"lmsportal/internal/api"
	"lmsportal/internal/entity"
	"lmsportal/internal/httpx"
	"lmsportal/internal/stats"
)

// StudentHandler serves the student-facing views: catalog, borrow
// history, own requests, penalties, subscription, and waitlist.
type StudentHandler struct {
	catalog     CatalogService
	circulation CirculationService
	requests    RequestService
	penalties   PenaltyService
	waitlist    WaitlistService
	render      *Renderer
}

func NewStudentHandler(catalog CatalogService, circulation CirculationService, requests RequestService, penalties PenaltyService, waitlist WaitlistService, render *Renderer) *StudentHandler {
	return &StudentHandler{
		catalog:     catalog,
		circulation: circulation,
		requests:    requests,
		penalties:   penalties,
		waitlist:    waitlist,
		render:      render,
	}
}

type studentHomeData struct {
	Books        stats.Page[entity.Book]
	Filter       api.BookFilter
	Quota        *entity.MonthlyQuota
	Subscription *entity.Subscription
}

// Home is the catalog view with the monthly quota and subscription
// panels. The quota and subscription calls are best-effort; the
// catalog list is the view.
func (h *StudentHandler) Home(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	cred := credFrom(r)

	filter := api.BookFilter{
		Title:     r.URL.Query().Get("title"),
		Author:    r.URL.Query().Get("author"),
		Genre:     r.URL.Query().Get("genre"),
		Available: r.URL.Query().Get("available") == "true",
	}

	books, err := h.catalog.SearchBooks(r.Context(), cred, filter)
	if err != nil {
		h.render.Render(w, "student_home.html", View{Title: "Catalog", Session: sess, Error: api.Message(err)})
		return
	}

	data := studentHomeData{
		Books:  stats.Paginate(books, pageParam(r), 10),
		Filter: filter,
	}
	if quota, err := h.circulation.MonthlyRequestCount(r.Context(), cred); err == nil {
		data.Quota = quota
	}
	if sub, err := h.penalties.SubscriptionStatus(r.Context(), cred); err == nil {
		data.Subscription = sub
	}

	errMsg, notice := flashFrom(r)
	h.render.Render(w, "student_home.html", View{
		Title: "Catalog", Session: sess, Error: errMsg, Notice: notice, Data: data,
	})
}

func (h *StudentHandler) RequestIssue(w http.ResponseWriter, r *http.Request) {
	bookID, ok := formID(r, "bookId")
	if !ok {
		redirectOutcome(w, r, pathStudent, errBadID, "")
		return
	}
	_, err := h.circulation.CreateIssueRequest(r.Context(), credFrom(r), bookID)
	redirectOutcome(w, r, pathStudent, err, "Issue request submitted.")
}

func (h *StudentHandler) JoinWaitlist(w http.ResponseWriter, r *http.Request) {
	bookID, ok := formID(r, "bookId")
	if !ok {
		redirectOutcome(w, r, pathStudent, errBadID, "")
		return
	}
	_, err := h.waitlist.JoinWaitlist(r.Context(), credFrom(r), bookID)
	redirectOutcome(w, r, pathStudent, err, "Joined the waitlist.")
}

func (h *StudentHandler) LeaveWaitlist(w http.ResponseWriter, r *http.Request) {
	bookID, ok := formID(r, "bookId")
	if !ok {
		redirectOutcome(w, r, "/student/waitlist", errBadID, "")
		return
	}
	err := h.waitlist.LeaveWaitlist(r.Context(), credFrom(r), bookID)
	redirectOutcome(w, r, "/student/waitlist", err, "Left the waitlist.")
}

func (h *StudentHandler) Waitlist(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	cred := credFrom(r)
	entries, err := h.waitlist.MyWaitlist(r.Context(), cred)
	if err != nil {
		h.render.Render(w, "student_waitlist.html", View{Title: "My Waitlist", Session: sess, Error: api.Message(err)})
		return
	}
	// The list payload's position can lag behind approvals elsewhere in
	// the queue; each active entry gets a live lookup, best-effort.
	for i := range entries {
		if !entries[i].IsActive {
			continue
		}
		if pos, perr := h.waitlist.WaitlistPosition(r.Context(), cred, entries[i].BookID); perr == nil && pos != nil {
			entries[i].QueuePosition = pos.QueuePosition
			entries[i].EstimatedWaitDays = pos.EstimatedWaitDays
		}
	}
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "student_waitlist.html", View{
		Title: "My Waitlist", Session: sess, Error: errMsg, Notice: notice, Data: entries,
	})
}

func (h *StudentHandler) Borrows(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	records, err := h.circulation.MyBorrowHistory(r.Context(), credFrom(r))
	if err != nil {
		h.render.Render(w, "student_borrows.html", View{Title: "My Borrows", Session: sess, Error: api.Message(err)})
		return
	}
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "student_borrows.html", View{
		Title: "My Borrows", Session: sess, Error: errMsg, Notice: notice, Data: records,
	})
}

type studentRequestsData struct {
	IssueRequests       []entity.IssueRequest
	AcquisitionRequests []entity.AcquisitionRequest
	MembershipRequests  []entity.MembershipRequest
	StatusCounts        map[string]int
	Packages            []entity.SubscriptionPackage
}

// Requests aggregates the student's three request queues on one page.
func (h *StudentHandler) Requests(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	cred := credFrom(r)

	issues, err := h.circulation.MyIssueRequests(r.Context(), cred)
	if err != nil {
		h.render.Render(w, "student_requests.html", View{Title: "My Requests", Session: sess, Error: api.Message(err)})
		return
	}

	data := studentRequestsData{
		IssueRequests: issues,
		StatusCounts:  stats.CountByStatus(issues, func(ir entity.IssueRequest) string { return ir.Status }),
	}
	if acq, err := h.requests.MyAcquisitionRequests(r.Context(), cred); err == nil {
		data.AcquisitionRequests = acq
	}
	if mem, err := h.requests.MyMembershipRequests(r.Context(), cred); err == nil {
		data.MembershipRequests = mem
	}
	if pkgs, err := h.penalties.SubscriptionPackages(r.Context(), cred); err == nil {
		data.Packages = pkgs
	}

	errMsg, notice := flashFrom(r)
	h.render.Render(w, "student_requests.html", View{
		Title: "My Requests", Session: sess, Error: errMsg, Notice: notice, Data: data,
	})
}

func (h *StudentHandler) CancelIssueRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, "/student/requests", errBadID, "")
		return
	}
	err := h.circulation.CancelIssueRequest(r.Context(), credFrom(r), id)
	redirectOutcome(w, r, "/student/requests", err, "Request cancelled.")
}

type acquisitionForm struct {
	BookName      string `validate:"required,max=200"`
	Author        string `validate:"omitempty,max=120"`
	Justification string `validate:"omitempty,max=1000"`
}

func (h *StudentHandler) CreateAcquisition(w http.ResponseWriter, r *http.Request) {
	form := acquisitionForm{
		BookName:      r.FormValue("bookName"),
		Author:        r.FormValue("author"),
		Justification: r.FormValue("justification"),
	}
	if fieldErrors := ValidateForm(form); fieldErrors != nil {
		sess := httpx.SessionFrom(r)
		h.render.Render(w, "student_requests.html", View{
			Title: "My Requests", Session: sess, FieldErrors: fieldErrors,
			Error: "Please correct the acquisition request form.",
		})
		return
	}
	_, err := h.requests.CreateAcquisitionRequest(r.Context(), credFrom(r), api.AcquisitionInput{
		BookName:      form.BookName,
		Author:        form.Author,
		Publisher:     r.FormValue("publisher"),
		Version:       r.FormValue("version"),
		Genre:         r.FormValue("genre"),
		Justification: form.Justification,
	})
	redirectOutcome(w, r, "/student/requests", err, "Acquisition request submitted.")
}

func (h *StudentHandler) CreateMembership(w http.ResponseWriter, r *http.Request) {
	_, err := h.requests.CreateMembershipRequest(r.Context(), credFrom(r), r.FormValue("package"))
	redirectOutcome(w, r, "/student/requests", err, "Membership request submitted.")
}

type studentPenaltiesData struct {
	Penalties []entity.Penalty
	TotalDue  float64
}

func (h *StudentHandler) Penalties(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	penalties, err := h.penalties.MemberPenalties(r.Context(), credFrom(r), sess.UserID)
	if err != nil {
		h.render.Render(w, "student_penalties.html", View{Title: "My Penalties", Session: sess, Error: api.Message(err)})
		return
	}
	data := studentPenaltiesData{Penalties: penalties}
	for _, p := range penalties {
		if p.Status == entity.PenaltyPending {
			data.TotalDue += p.Amount
		}
	}
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "student_penalties.html", View{
		Title: "My Penalties", Session: sess, Error: errMsg, Notice: notice, Data: data,
	})
}

func (h *StudentHandler) PayPenalty(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "borrowRecordId")
	if !ok {
		redirectOutcome(w, r, "/student/penalties", errBadID, "")
		return
	}
	amount, err := parseAmount(r.FormValue("amount"))
	if err != nil {
		redirectOutcome(w, r, "/student/penalties", err, "")
		return
	}
	err = h.penalties.PayPenalty(r.Context(), credFrom(r), id, amount)
	redirectOutcome(w, r, "/student/penalties", err, "Payment recorded.")
}

func (h *StudentHandler) ActivateSubscription(w http.ResponseWriter, r *http.Request) {
	err := h.penalties.ActivateSubscription(r.Context(), credFrom(r), r.FormValue("package"))
	redirectOutcome(w, r, "/student/requests", err, "Subscription activated.")
}

func (h *StudentHandler) ExtendSubscription(w http.ResponseWriter, r *http.Request) {
	err := h.penalties.ExtendSubscription(r.Context(), credFrom(r), r.FormValue("package"))
	redirectOutcome(w, r, "/student/requests", err, "Subscription extended.")
}
