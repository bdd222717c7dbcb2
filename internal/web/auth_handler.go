package web

import (
	"net/http"

	"lmsportal/internal/api"
	"lmsportal/internal/entity"
	"lmsportal/internal/httpx"
	"lmsportal/internal/session"
)

type AuthHandler struct {
	svc      AuthService
	sessions *session.Manager
	render   *Renderer
}

func NewAuthHandler(svc AuthService, sessions *session.Manager, render *Renderer) *AuthHandler {
	return &AuthHandler{svc: svc, sessions: sessions, render: render}
}

func (h *AuthHandler) ShowLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.render.Render(w, "landing.html", View{Title: "Library", Session: httpx.SessionFrom(r)})
}

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "login.html", View{Title: "Log In", Error: errMsg, Notice: notice})
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login runs the token flow: validate against the backend, then create
// the portal session with the returned bearer token and route by role.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if fieldErrors := ValidateForm(form); fieldErrors != nil {
		h.render.Render(w, "login.html", View{Title: "Log In", FieldErrors: fieldErrors})
		return
	}

	resp, err := h.svc.Login(r.Context(), api.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		h.render.Render(w, "login.html", View{Title: "Log In", Error: api.Message(err)})
		return
	}

	target, ok := landingFor(resp.User.Role)
	if !ok {
		// No recognized role on the account: refuse the session
		// entirely rather than guessing at access.
		h.render.Render(w, "login.html", View{Title: "Log In",
			Error: "Your account has no role assigned. Contact the library administrator."})
		return
	}

	_, err = h.sessions.Login(r.Context(), w, session.Identity{
		UserID: resp.User.ID,
		Email:  resp.User.Email,
		Name:   resp.User.Name,
		Role:   resp.User.Role,
	}, session.BearerCredential(resp.Token))
	if err != nil {
		h.render.Render(w, "login.html", View{Title: "Log In", Error: api.Message(err)})
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func landingFor(role string) (string, bool) {
	switch role {
	case entity.RoleAdmin:
		return pathAdmin, true
	case entity.RoleLibrarian:
		return pathLibrarian, true
	case entity.RoleStudent:
		return pathStudent, true
	default:
		return "", false
	}
}

func (h *AuthHandler) ShowAdminLogin(w http.ResponseWriter, r *http.Request) {
	errMsg, _ := flashFrom(r)
	h.render.Render(w, "admin_login.html", View{Title: "Admin Log In", Error: errMsg})
}

// AdminLogin runs the Basic flow: the credential pair itself is kept in
// the session and attached to every later request.
func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	form := loginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if fieldErrors := ValidateForm(form); fieldErrors != nil {
		h.render.Render(w, "admin_login.html", View{Title: "Admin Log In", FieldErrors: fieldErrors})
		return
	}

	cred := session.BasicCredential(form.Email, form.Password)
	me, err := h.svc.Me(r.Context(), cred)
	if err != nil {
		h.render.Render(w, "admin_login.html", View{Title: "Admin Log In", Error: api.Message(err)})
		return
	}
	if me.Role != entity.RoleAdmin {
		h.render.Render(w, "admin_login.html", View{Title: "Admin Log In",
			Error: "This login is for administrators only."})
		return
	}

	_, err = h.sessions.Login(r.Context(), w, session.Identity{
		UserID: me.ID,
		Email:  me.Email,
		Name:   me.Name,
		Role:   me.Role,
	}, cred)
	if err != nil {
		h.render.Render(w, "admin_login.html", View{Title: "Admin Log In", Error: api.Message(err)})
		return
	}
	http.Redirect(w, r, pathAdmin, http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context(), w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, "register.html", View{Title: "Register"})
}

type registerForm struct {
	Name     string `validate:"required,max=120"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"omitempty,min=7,max=20"`
	Role     string `validate:"required,oneof=STUDENT LIBRARIAN"`
	Password string `validate:"required,password_strength"`
}

// Register submits a new account, multipart when an ID proof file is
// attached. The account lands PENDING until an admin approves it.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(5 << 20); err != nil && err != http.ErrNotMultipart {
		h.render.Render(w, "register.html", View{Title: "Register", Error: "Could not read the form. Please try again."})
		return
	}

	form := registerForm{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		Role:     r.FormValue("role"),
		Password: r.FormValue("password"),
	}
	if fieldErrors := ValidateForm(form); fieldErrors != nil {
		h.render.Render(w, "register.html", View{Title: "Register", FieldErrors: fieldErrors, Data: form})
		return
	}

	req := api.RegisterRequest{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Role:     form.Role,
		Password: form.Password,
	}

	var err error
	if file, header, ferr := r.FormFile("idProof"); ferr == nil {
		defer file.Close()
		_, err = h.svc.Register(r.Context(), req, header.Filename, file)
	} else {
		_, err = h.svc.Register(r.Context(), req, "", nil)
	}
	if err != nil {
		h.render.Render(w, "register.html", View{Title: "Register",
			Error: api.Message(err), FieldErrors: api.FieldErrors(err), Data: form})
		return
	}

	redirectOutcome(w, r, pathLogin, nil, "Registration submitted. You can log in once an administrator approves your account.")
}

func (h *AuthHandler) ShowForgotPassword(w http.ResponseWriter, r *http.Request) {
	errMsg, notice := flashFrom(r)
	h.render.Render(w, "forgot_password.html", View{Title: "Forgot Password", Error: errMsg, Notice: notice})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if fieldErrors := ValidateForm(struct {
		Email string `validate:"required,email"`
	}{email}); fieldErrors != nil {
		h.render.Render(w, "forgot_password.html", View{Title: "Forgot Password", FieldErrors: fieldErrors})
		return
	}
	err := h.svc.ForgotPassword(r.Context(), email)
	redirectOutcome(w, r, "/forgot-password", err, "If that address is registered, a reset link is on its way.")
}

func (h *AuthHandler) ShowResetPassword(w http.ResponseWriter, r *http.Request) {
	errMsg, _ := flashFrom(r)
	h.render.Render(w, "reset_password.html", View{Title: "Reset Password",
		Error: errMsg, Data: r.URL.Query().Get("token")})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.FormValue("token")
	password := r.FormValue("password")
	if token == "" {
		h.render.Render(w, "reset_password.html", View{Title: "Reset Password",
			Error: "The reset link is invalid or has expired."})
		return
	}
	if fieldErrors := ValidateForm(struct {
		Password string `validate:"required,password_strength"`
	}{password}); fieldErrors != nil {
		h.render.Render(w, "reset_password.html", View{Title: "Reset Password",
			FieldErrors: fieldErrors, Data: token})
		return
	}
	if err := h.svc.ResetPassword(r.Context(), token, password); err != nil {
		h.render.Render(w, "reset_password.html", View{Title: "Reset Password",
			Error: api.Message(err), Data: token})
		return
	}
	redirectOutcome(w, r, pathLogin, nil, "Password updated. Log in with your new password.")
}
