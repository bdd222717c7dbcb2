package web

import (
	"net/http"

	"lmsportal/internal/api"
	"lmsportal/internal/entity"
	"lmsportal/internal/httpx"
)

// Report types the backend knows how to build.
var reportTypes = []string{"books", "members", "borrows", "penalties", "overdue"}

type ReportHandler struct {
	svc    ReportService
	render *Renderer
}

func NewReportHandler(svc ReportService, render *Renderer) *ReportHandler {
	return &ReportHandler{svc: svc, render: render}
}

type reportsData struct {
	Types        []string
	PopularBooks []entity.Book
}

func (h *ReportHandler) Reports(w http.ResponseWriter, r *http.Request) {
	sess := httpx.SessionFrom(r)
	data := reportsData{Types: reportTypes}
	if popular, err := h.svc.PopularBooks(r.Context(), credFrom(r)); err == nil {
		data.PopularBooks = popular
	}
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "admin_reports.html", View{
		Title: "Reports", Session: sess, Error: errMsg, Notice: notice, Data: data,
	})
}

// Download streams the backend's report bytes through unchanged, with
// the backend's content type and filename.
func (h *ReportHandler) Download(w http.ResponseWriter, r *http.Request) {
	reportType := r.URL.Query().Get("type")
	format := r.URL.Query().Get("format")
	if reportType == "" {
		redirectOutcome(w, r, "/admin/reports", errBadID, "")
		return
	}

	blob, err := h.svc.DownloadReport(r.Context(), credFrom(r), reportType, format)
	if err != nil {
		redirectOutcome(w, r, "/admin/reports", err, "")
		return
	}

	if blob.ContentType != "" {
		w.Header().Set("Content-Type", blob.ContentType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	if blob.Disposition != "" {
		w.Header().Set("Content-Disposition", blob.Disposition)
	} else {
		w.Header().Set("Content-Disposition", `attachment; filename="report.`+formatExt(format)+`"`)
	}
	w.Write(blob.Data)
}

func formatExt(format string) string {
	if format == api.FormatExcel {
		return "xlsx"
	}
	return "csv"
}
