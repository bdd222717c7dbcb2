package web

import (
	"net/http"
	"strconv"
	"time"

	"lmsportal/internal/api"
	"lmsportal/internal/entity"
	"lmsportal/internal/httpx"
	"lmsportal/internal/stats"
)

type AdminHandler struct {
	svc    AdminService
	render *Renderer
}

func NewAdminHandler(svc AdminService, render *Renderer) *AdminHandler {
	return &AdminHandler{svc: svc, render: render}
}

type adminDashboardData struct {
	PendingUsers []entity.Member
	StatusSlices []stats.PieSlice
	TrendLabels  []string
	TrendCounts  []int
}

// Dashboard shows registrations awaiting a decision, the member status
// pie, and the six-month borrow trend. All derived values are
// recomputed from the freshly fetched collections.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	cred := credFrom(r)

	pending, err := h.svc.ListPendingUsers(r.Context(), cred)
	if err != nil {
		h.render.Render(w, "admin_dashboard.html", View{Title: "Admin", Session: sess, Error: api.Message(err)})
		return
	}

	data := adminDashboardData{PendingUsers: pending}

	// Secondary panels degrade quietly; the approval queue is the view
	// that matters.
	if members, err := h.svc.ListMembers(r.Context(), cred); err == nil {
		counts := stats.CountByStatus(members, func(m entity.Member) string { return m.Status })
		data.StatusSlices = stats.PieSlices(counts)
	}
	if records, err := h.svc.ListBorrowRecords(r.Context(), cred, api.BorrowFilter{}); err == nil {
		times := make([]time.Time, len(records))
		for i, rec := range records {
			times[i] = rec.BorrowedAt
		}
		buckets := stats.MonthlyBuckets(times, 6, time.Now())
		for _, b := range buckets {
			data.TrendLabels = append(data.TrendLabels, b.Label())
		}
		data.TrendCounts = stats.Counts(buckets)
	}

	errMsg, notice := flashFrom(r)
	h.render.Render(w, "admin_dashboard.html", View{
		Title: "Admin", Session: sess, Error: errMsg, Notice: notice, Data: data,
	})
}

func (h *AdminHandler) ApproveUser(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, pathAdmin, errBadID, "")
		return
	}
	err := h.svc.ApproveUser(r.Context(), credFrom(r), id)
	redirectOutcome(w, r, pathAdmin, err, "User approved.")
}

func (h *AdminHandler) RejectUser(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, pathAdmin, errBadID, "")
		return
	}
	err := h.svc.RejectUser(r.Context(), credFrom(r), id, r.FormValue("reason"))
	redirectOutcome(w, r, pathAdmin, err, "User rejected.")
}

type membersData struct {
	Page stats.Page[entity.Member]
}

func (h *AdminHandler) Members(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	members, err := h.svc.ListMembers(r.Context(), credFrom(r))
	if err != nil {
		h.render.Render(w, "admin_members.html", View{Title: "Members", Session: sess, Error: api.Message(err)})
		return
	}
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "admin_members.html", View{
		Title: "Members", Session: sess, Error: errMsg, Notice: notice,
		Data: membersData{Page: stats.Paginate(members, pageParam(r), 20)},
	})
}

type memberDetailData struct {
	Member  *entity.Member
	History []entity.BorrowRecord
}

// MemberDetail shows one member alongside their full borrow history.
func (h *AdminHandler) MemberDetail(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil || id <= 0 {
		h.render.RenderError(w, sess, http.StatusNotFound, "Member not found.")
		return
	}

	member, err := h.svc.GetMember(r.Context(), credFrom(r), id)
	if err != nil {
		h.render.Render(w, "admin_member.html", View{Title: "Member", Session: sess, Error: api.Message(err)})
		return
	}
	data := memberDetailData{Member: member}
	if history, herr := h.svc.MemberBorrowHistory(r.Context(), credFrom(r), id); herr == nil {
		data.History = history
	}
	h.render.Render(w, "admin_member.html", View{Title: "Member", Session: sess, Data: data})
}

func (h *AdminHandler) SuspendMember(w http.ResponseWriter, r *http.Request) {
	id, ok := formID(r, "id")
	if !ok {
		redirectOutcome(w, r, "/admin/members", errBadID, "")
		return
	}
	err := h.svc.SuspendMember(r.Context(), credFrom(r), id)
	redirectOutcome(w, r, "/admin/members", err, "Member suspended.")
}
