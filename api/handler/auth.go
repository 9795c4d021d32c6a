package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/api/transport"
	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/pkg/httpcontext"
	authUC "github.com/oicpanel/backend/usecase/auth"
)

// CookieConfig describes the session cookie contract.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

type AuthHandler struct {
	baseHandler
	uc     *authUC.Service
	cookie CookieConfig
}

func NewAuthHandler(uc *authUC.Service, cookie CookieConfig, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "auth-token"
	}
	if cookie.MaxAge <= 0 {
		cookie.MaxAge = 24 * time.Hour
	}
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		cookie:      cookie,
	}
}

// @Summary Log in with email and password
// @Tags auth
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	// Missing fields are not special-cased here: the service folds them
	// into the same generic rejection as every other credential failure.
	var req transport.LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.AuthResponse{
			Success: false,
			Error:   domain.ErrInvalidPayload.Message,
		})
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	result, err := h.uc.Login(stdCtx, req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		message := domain.ErrInvalidCredentials.Message
		if !domain.IsDomainError(err, domain.ErrCodeUnauthorized) {
			h.logger.Error("login failed", zap.Error(err))
			status = http.StatusInternalServerError
			message = "internal error"
		}
		h.respondJSON(ctx, status, transport.AuthResponse{
			Success: false,
			Error:   message,
		})
		return
	}

	h.setSessionCookie(ctx, result.Token)
	h.respondJSON(ctx, http.StatusOK, transport.AuthResponse{
		Success: true,
		User:    result.User,
		Message: "login successful",
	})
}

// @Summary Check the current session
// @Tags auth
// @Router /api/v1/auth/session [get]
func (h *AuthHandler) Session(ctx *fasthttp.RequestCtx) {
	raw := string(ctx.Request.Header.Cookie(h.cookie.Name))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	// Every verification failure degrades to an anonymous result: the
	// caller cannot tell "not logged in" apart from "check failed".
	user, err := h.uc.VerifyToken(stdCtx, raw)
	if err != nil {
		h.respondJSON(ctx, http.StatusOK, transport.SessionResponse{Success: false, User: nil})
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.SessionResponse{Success: true, User: user})
}

// @Summary Log out
// @Tags auth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	h.clearSessionCookie(ctx)
	h.respondJSON(ctx, http.StatusOK, transport.AuthResponse{
		Success: true,
		Message: "logged out",
	})
}

func (h *AuthHandler) setSessionCookie(ctx *fasthttp.RequestCtx, value string) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(h.cookie.Name)
	cookie.SetValue(value)
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	cookie.SetMaxAge(int(h.cookie.MaxAge.Seconds()))
	cookie.SetSecure(h.cookie.Secure)

	ctx.Response.Header.SetCookie(cookie)
}

func (h *AuthHandler) clearSessionCookie(ctx *fasthttp.RequestCtx) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(h.cookie.Name)
	cookie.SetValue("")
	cookie.SetPath("/")
	cookie.SetHTTPOnly(true)
	cookie.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	cookie.SetExpire(fasthttp.CookieExpireDelete)
	cookie.SetSecure(h.cookie.Secure)

	ctx.Response.Header.SetCookie(cookie)
}
