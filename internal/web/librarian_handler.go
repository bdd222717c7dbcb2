package web

import (
	"net/http"
	"strconv"
	"strings"

	"lmsportal/internal/api"
	"lmsportal/internal/entity"
	"lmsportal/internal/httpx"
	"lmsportal/internal/stats"
)

// LibrarianHandler serves the circulation desk: issue requests,
// returns, penalties, and book inventory.
type LibrarianHandler struct {
	catalog     CatalogService
	circulation CirculationService
	requests    RequestService
	penalties   PenaltyService
	render      *Renderer
}

func NewLibrarianHandler(catalog CatalogService, circulation CirculationService, requests RequestService, penalties PenaltyService, render *Renderer) *LibrarianHandler {
	return &LibrarianHandler{
		catalog:     catalog,
		circulation: circulation,
		requests:    requests,
		penalties:   penalties,
		render:      render,
	}
}

type librarianDashboardData struct {
	Requests            []entity.IssueRequest
	StatusFilter        string
	StatusCounts        map[string]int
	AcquisitionRequests []entity.AcquisitionRequest
	MembershipRequests  []entity.MembershipRequest
}

// Dashboard lists issue requests, filterable by status, with the
// acquisition and membership queues alongside.
func (h *LibrarianHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	cred := credFrom(r)
	status := r.URL.Query().Get("status")

	requests, err := h.circulation.ListIssueRequests(r.Context(), cred, status, 0, 0)
	if err != nil {
		h.render.Render(w, "librarian_dashboard.html", View{Title: "Circulation", Session: sess, Error: api.Message(err)})
		return
	}

	data := librarianDashboardData{
		Requests:     requests,
		StatusFilter: status,
		StatusCounts: stats.CountByStatus(requests, func(ir entity.IssueRequest) string { return ir.Status }),
	}
	if acq, err := h.requests.ListAcquisitionRequests(r.Context(), cred, entity.RequestPending); err == nil {
		data.AcquisitionRequests = acq
	}
	if mem, err := h.requests.ListMembershipRequests(r.Context(), cred, entity.RequestPending); err == nil {
		data.MembershipRequests = mem
	}

	errMsg, notice := flashFrom(r)
	h.render.Render(w, "librarian_dashboard.html", View{
		Title: "Circulation", Session: sess, Error: errMsg, Notice: notice, Data: data,
	})
}

func (h *LibrarianHandler) ApproveIssueRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, pathLibrarian, errBadID, "")
		return
	}
	err := h.circulation.ApproveIssueRequest(r.Context(), credFrom(r), id, r.FormValue("dueDate"))
	redirectOutcome(w, r, pathLibrarian, err, "Request approved.")
}

func (h *LibrarianHandler) RejectIssueRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, pathLibrarian, errBadID, "")
		return
	}
	err := h.circulation.RejectIssueRequest(r.Context(), credFrom(r), id, r.FormValue("reason"))
	redirectOutcome(w, r, pathLibrarian, err, "Request rejected.")
}

// BulkApprove approves every checked request in one backend call.
func (h *LibrarianHandler) BulkApprove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectOutcome(w, r, pathLibrarian, err, "")
		return
	}
	var ids []int64
	for _, raw := range r.PostForm["requestIds"] {
		if id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		redirectOutcome(w, r, pathLibrarian, errBadID, "")
		return
	}
	err := h.circulation.BulkApproveIssueRequests(r.Context(), credFrom(r), ids)
	redirectOutcome(w, r, pathLibrarian, err, "Selected requests approved.")
}

// IssueDirect records a loan at the desk without a prior student
// request, for walk-up checkouts.
func (h *LibrarianHandler) IssueDirect(w http.ResponseWriter, r *http.Request) {
	studentID, ok := formID(r, "studentId")
	if !ok {
		redirectOutcome(w, r, pathLibrarian, errBadID, "")
		return
	}
	bookID, ok := formID(r, "bookId")
	if !ok {
		redirectOutcome(w, r, pathLibrarian, errBadID, "")
		return
	}
	_, err := h.circulation.IssueBook(r.Context(), credFrom(r), studentID, bookID, r.FormValue("dueDate"))
	redirectOutcome(w, r, pathLibrarian, err, "Book issued.")
}

func (h *LibrarianHandler) ApproveAcquisition(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, pathLibrarian, errBadID, "")
		return
	}
	err := h.requests.ApproveAcquisitionRequest(r.Context(), credFrom(r), id)
	redirectOutcome(w, r, pathLibrarian, err, "Acquisition approved.")
}

func (h *LibrarianHandler) RejectAcquisition(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, pathLibrarian, errBadID, "")
		return
	}
	err := h.requests.RejectAcquisitionRequest(r.Context(), credFrom(r), id, r.FormValue("reason"))
	redirectOutcome(w, r, pathLibrarian, err, "Acquisition rejected.")
}

func (h *LibrarianHandler) ApproveMembership(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, pathLibrarian, errBadID, "")
		return
	}
	err := h.requests.ApproveMembershipRequest(r.Context(), credFrom(r), id)
	redirectOutcome(w, r, pathLibrarian, err, "Membership approved.")
}

func (h *LibrarianHandler) RejectMembership(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, pathLibrarian, errBadID, "")
		return
	}
	err := h.requests.RejectMembershipRequest(r.Context(), credFrom(r), id, r.FormValue("reason"))
	redirectOutcome(w, r, pathLibrarian, err, "Membership rejected.")
}

type returnsData struct {
	Records     []entity.BorrowRecord
	OverdueOnly bool
	Overdue     int
}

// Returns lists open loans awaiting processing. The page keeps its
// counts current by polling the pending-returns fragment; the table
// itself refetches on each full load, with no write-conflict handling
// beyond the backend's.
func (h *LibrarianHandler) Returns(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	overdueOnly := r.URL.Query().Get("overdue") == "true"

	records, err := h.circulation.PendingReturns(r.Context(), credFrom(r), overdueOnly)
	if err != nil {
		h.render.Render(w, "librarian_returns.html", View{Title: "Returns", Session: sess, Error: api.Message(err)})
		return
	}
	data := returnsData{Records: records, OverdueOnly: overdueOnly}
	for _, rec := range records {
		if rec.IsOverdue {
			data.Overdue++
		}
	}
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "librarian_returns.html", View{
		Title: "Returns", Session: sess, Error: errMsg, Notice: notice, Data: data,
	})
}

func (h *LibrarianHandler) ProcessReturn(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "borrowRecordId")
	if !ok {
		redirectOutcome(w, r, "/librarian/returns", errBadID, "")
		return
	}
	damaged := r.FormValue("damaged") == "on"
	lost := r.FormValue("lost") == "on"
	err := h.circulation.ProcessReturn(r.Context(), credFrom(r), id, damaged, lost)
	redirectOutcome(w, r, "/librarian/returns", err, "Return processed.")
}

// PendingReturnsCount is the JSON fragment the returns page polls.
func (h *LibrarianHandler) PendingReturnsCount(w http.ResponseWriter, r *http.Request) {
	records, err := h.circulation.PendingReturns(r.Context(), credFrom(r), false)
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadGateway, "BACKEND_ERROR", api.Message(err), nil)
		return
	}
	overdue := 0
	for _, rec := range records {
		if rec.IsOverdue {
			overdue++
		}
	}
	httpx.JSONSuccess(w, r, map[string]int{"pending": len(records), "overdue": overdue})
}

type librarianPenaltiesData struct {
	Penalties []entity.Penalty
	TotalDue  float64
}

func (h *LibrarianHandler) Penalties(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	penalties, err := h.penalties.PendingPenalties(r.Context(), credFrom(r))
	if err != nil {
		h.render.Render(w, "librarian_penalties.html", View{Title: "Penalties", Session: sess, Error: api.Message(err)})
		return
	}
	data := librarianPenaltiesData{Penalties: penalties}
	for _, p := range penalties {
		data.TotalDue += p.Amount
	}
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "librarian_penalties.html", View{
		Title: "Penalties", Session: sess, Error: errMsg, Notice: notice, Data: data,
	})
}

func (h *LibrarianHandler) ComputePenalty(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "borrowRecordId")
	if !ok {
		redirectOutcome(w, r, "/librarian/penalties", errBadID, "")
		return
	}
	_, err := h.penalties.ComputePenalty(r.Context(), credFrom(r), id)
	redirectOutcome(w, r, "/librarian/penalties", err, "Penalty recomputed.")
}

func (h *LibrarianHandler) ReconcilePenalties(w http.ResponseWriter, r *http.Request) {
	err := h.penalties.ReconcilePenalties(r.Context(), credFrom(r))
	redirectOutcome(w, r, "/librarian/penalties", err, "Penalties reconciled.")
}

type booksData struct {
	Page   stats.Page[entity.Book]
	Filter api.BookFilter
}

func (h *LibrarianHandler) Books(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	filter := api.BookFilter{
		Title: r.URL.Query().Get("title"),
		Genre: r.URL.Query().Get("genre"),
	}
	books, err := h.catalog.SearchBooks(r.Context(), credFrom(r), filter)
	if err != nil {
		h.render.Render(w, "librarian_books.html", View{Title: "Books", Session: sess, Error: api.Message(err)})
		return
	}
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "librarian_books.html", View{
		Title: "Books", Session: sess, Error: errMsg, Notice: notice,
		Data: booksData{Page: stats.Paginate(books, pageParam(r), 20), Filter: filter},
	})
}

type bookFormData struct {
	Book  *entity.Book
	Input api.BookInput
}

// BookForm renders the create form, or the edit form when ?id= is set.
func (h *LibrarianHandler) BookForm(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	data := bookFormData{}

	if rawID := r.URL.Query().Get("id"); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			h.render.RenderError(w, sess, http.StatusNotFound, "Book not found.")
			return
		}
		book, err := h.catalog.GetBook(r.Context(), credFrom(r), id)
		if err != nil {
			h.render.Render(w, "book_form.html", View{Title: "Edit Book", Session: sess, Error: api.Message(err)})
			return
		}
		data.Book = book
	}
	h.render.Render(w, "book_form.html", View{Title: "Book", Session: sess, Data: data})
}

// SaveBook handles both create and update; an id field distinguishes.
func (h *LibrarianHandler) SaveBook(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)

	totalCopies, _ := strconv.Atoi(r.FormValue("totalCopies"))
	availableCopies, _ := strconv.Atoi(r.FormValue("availableCopies"))
	mrp, _ := strconv.ParseFloat(r.FormValue("mrp"), 64)

	input := api.BookInput{
		Title:           r.FormValue("title"),
		Author:          r.FormValue("author"),
		ISBN:            r.FormValue("isbn"),
		Genre:           r.FormValue("genre"),
		Publisher:       r.FormValue("publisher"),
		TotalCopies:     totalCopies,
		AvailableCopies: availableCopies,
		MRP:             mrp,
		Tags:            r.FormValue("tags"),
		AccessLevel:     r.FormValue("accessLevel"),
	}

	if fieldErrors := ValidateForm(input); fieldErrors != nil {
		h.render.Render(w, "book_form.html", View{
			Title: "Book", Session: sess, FieldErrors: fieldErrors,
			Data: bookFormData{Input: input},
		})
		return
	}

	var err error
	if rawID := r.FormValue("id"); rawID != "" {
		var id int64
		if id, err = strconv.ParseInt(rawID, 10, 64); err == nil {
			_, err = h.catalog.UpdateBook(r.Context(), credFrom(r), id, input)
		}
	} else {
		_, err = h.catalog.CreateBook(r.Context(), credFrom(r), input)
	}
	if err != nil {
		h.render.Render(w, "book_form.html", View{
			Title: "Book", Session: sess, Error: api.Message(err),
			FieldErrors: api.FieldErrors(err), Data: bookFormData{Input: input},
		})
		return
	}
	redirectOutcome(w, r, "/librarian/books", nil, "Book saved.")
}

func (h *LibrarianHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, "/librarian/books", errBadID, "")
		return
	}
	err := h.catalog.DeleteBook(r.Context(), credFrom(r), id)
	redirectOutcome(w, r, "/librarian/books", err, "Book deleted.")
}

// BookQueue shows one book's waitlist for the desk.
func (h *LibrarianHandler) BookQueue(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	id, err := strconv.ParseInt(r.URL.Query().Get("bookId"), 10, 64)
	if err != nil || id <= 0 {
		h.render.RenderError(w, sess, http.StatusNotFound, "Book not found.")
		return
	}
	entries, werr := h.catalog.BookWaitlist(r.Context(), credFrom(r), id)
	if werr != nil {
		h.render.Render(w, "student_waitlist.html", View{Title: "Waitlist", Session: sess, Error: api.Message(werr)})
		return
	}
	h.render.Render(w, "student_waitlist.html", View{Title: "Waitlist", Session: sess, Data: entries})
}
