package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/oicpanel/backend/api/transport"
	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/internal/access"
	"github.com/oicpanel/backend/pkg/httpcontext"
)

// Identity headers populated after cookie verification. The values are
// overwritten on every request so clients cannot inject them.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Middleware is a fasthttp handler decorator.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

// TokenVerifier is the slice of the auth service the middleware needs.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, raw string) (*domain.User, error)
}

// CookieAuth verifies the session cookie on every protected request and
// forwards the re-read identity via request headers. Any verification
// failure, including upstream errors, is treated as unauthenticated.
func CookieAuth(verifier TokenVerifier, cookieName string, adapter *httpcontext.Adapter, logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			raw := string(ctx.Request.Header.Cookie(cookieName))
			if raw == "" {
				respondUnauthorized(ctx)
				return
			}

			stdCtx, cancel := adapter.Attach(ctx)
			defer cancel()

			user, err := verifier.VerifyToken(stdCtx, raw)
			if err != nil {
				logger.Debug("session verification failed", zap.Error(err))
				respondUnauthorized(ctx)
				return
			}

			ctx.Request.Header.Set(HeaderUserID, user.ID)
			ctx.Request.Header.Set(HeaderUserRole, string(user.Role))

			next(ctx)
		}
	}
}

// RequireRoles gates a route on the allow-list, reusing the same decision
// function the client-side guard runs. This is the enforced server-side
// contract: the client gate alone is never a security boundary.
func RequireRoles(logger *zap.Logger, allowed ...domain.Role) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			var user *domain.User
			if role := domain.Role(ctx.Request.Header.Peek(HeaderUserRole)); role != "" {
				user = &domain.User{
					ID:   string(ctx.Request.Header.Peek(HeaderUserID)),
					Role: role,
				}
			}

			switch access.Evaluate(user, false, allowed) {
			case access.Authorized:
				next(ctx)
			case access.Unauthenticated:
				respondUnauthorized(ctx)
			default:
				logger.Warn("role denied",
					zap.String("user_id", string(ctx.Request.Header.Peek(HeaderUserID))),
					zap.String("role", string(ctx.Request.Header.Peek(HeaderUserRole))),
					zap.ByteString("path", ctx.Path()))
				respondJSON(ctx, http.StatusForbidden,
					transport.NewError(string(domain.ErrCodeForbidden), domain.ErrForbidden.Message, nil))
			}
		}
	}
}

func respondUnauthorized(ctx *fasthttp.RequestCtx) {
	respondJSON(ctx, http.StatusUnauthorized,
		transport.NewError(string(domain.ErrCodeUnauthorized), domain.ErrUnauthenticated.Message, nil))
}

func respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}
