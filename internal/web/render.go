package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"lmsportal/internal/session"
	"lmsportal/internal/stats"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes page templates inside the shared layout. Templates
// are parsed once at startup from the embedded FS, so a bad template is
// a boot failure, not a request-time surprise.
type Renderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	"date": func(v any) string {
		var t time.Time
		switch x := v.(type) {
		case time.Time:
			t = x
		case *time.Time:
			if x != nil {
				t = *x
			}
		}
		if t.IsZero() {
			return "-"
		}
		return t.Format("02 Jan 2006")
	},
	"money": func(v float64) string {
		return fmt.Sprintf("₹%.2f", v)
	},
	"pct": func(v float64) string {
		return fmt.Sprintf("%.1f%%", v)
	},
	"polyline": stats.PolylinePoints,
}

var pageNames = []string{
	"landing.html",
	"login.html",
	"admin_login.html",
	"register.html",
	"forgot_password.html",
	"reset_password.html",
	"student_home.html",
	"student_borrows.html",
	"student_requests.html",
	"student_penalties.html",
	"student_waitlist.html",
	"librarian_dashboard.html",
	"librarian_returns.html",
	"librarian_penalties.html",
	"librarian_books.html",
	"book_form.html",
	"admin_dashboard.html",
	"admin_members.html",
	"admin_member.html",
	"admin_reports.html",
	"error.html",
}

func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// View is the data every page template receives; page-specific content
// rides in Data.
type View struct {
	Title       string
	Session     *session.Session
	Error       string
	Notice      string
	FieldErrors map[string]string
	Data        any
}

func (rn *Renderer) Render(w http.ResponseWriter, name string, view View) {
	t, ok := rn.pages[name]
	if !ok {
		log.Printf("render: unknown template %s", name)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", view); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

// RenderError shows the shared error page with the given message.
func (rn *Renderer) RenderError(w http.ResponseWriter, s *session.Session, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	rn.Render(w, "error.html", View{Title: "Error", Session: s, Error: message})
}
