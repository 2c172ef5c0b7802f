package handlers

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/abrezinsky/reviewwheel/internal/auth"
)

const staffHome = "/staff"

// handleLoginPage renders the login form
func (h *Handlers) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	// If already logged in, go straight to the panel
	if h.Auth.GetSessionFromRequest(r) {
		http.Redirect(w, r, staffHome, http.StatusFound)
		return
	}

	h.templates.StaffLogin.Execute(w, LoginPageData{})
}

// handleLogin processes the login form, or a JSON body from scripts
func (h *Handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if isJSON(r) {
		h.handleLoginJSON(w, r)
		return
	}

	token, ok := h.Auth.Login(r.FormValue("password"))
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		h.templates.StaffLogin.Execute(w, LoginPageData{
			Error: "Invalid password",
		})
		return
	}

	auth.SetSessionCookie(w, token)
	http.Redirect(w, r, staffHome, http.StatusFound)
}

func (h *Handlers) handleLoginJSON(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err == io.EOF {
			respondError(w, BadRequest("Request body is empty"))
			return
		}
		respondError(w, BadRequest("Invalid JSON: "+err.Error()))
		return
	}

	token, ok := h.Auth.Login(req.Password)
	if !ok {
		respondError(w, Unauthorized("Invalid password"))
		return
	}

	auth.SetSessionCookie(w, token)
	respondOK(w, map[string]string{"message": "Logged in"})
}

// handleLogout clears the session and redirects to login
func (h *Handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		h.Auth.Logout(cookie.Value)
	}

	auth.ClearSessionCookie(w)
	http.Redirect(w, r, auth.LoginPath, http.StatusFound)
}

func isJSON(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/json"
}
