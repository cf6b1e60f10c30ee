package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskpilot/internal/auth"
	"taskpilot/pkg/response"
)

const stateCookie = "taskpilot_oauth_state"

// Login godoc
// @Summary     Begin Google sign-in
// @Description Redirects the browser to the Google consent screen.
// @Tags        Auth
// @Success     302
// @Router      /api/v1/auth/google [GET]
func (h *handler) Login(c *gin.Context) {
	state := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/", "", h.cookie.Secure, true)

	c.Redirect(http.StatusFound, h.uc.AuthURL(state))
}

// Callback godoc
// @Summary     OAuth callback
// @Description Completes the authorization-code exchange and establishes a session.
// @Tags        Auth
// @Success     302
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	wantState, err := c.Cookie(stateCookie)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		response.Error(c, errors.New("oauth state mismatch"))
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.cookie.Secure, true)

	code := c.Query("code")
	if code == "" {
		response.Error(c, errors.New("authorization code is required"))
		return
	}

	sess, err := h.uc.HandleCallback(ctx, code)
	if err != nil {
		h.l.Errorf(ctx, "auth.Callback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, sess.Token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)

	c.Redirect(http.StatusFound, h.publicURL+"/")
}

// Logout godoc
// @Summary     Sign out
// @Description Destroys the session and clears the cookie.
// @Tags        Auth
// @Success     200 {object} response.Resp
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		h.uc.Logout(ctx, token)
	}
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)

	response.OK(c, nil)
}

// Me godoc
// @Summary     Current user
// @Description Returns the signed-in user, or authenticated=false.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} meResp
// @Router      /api/v1/user [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := c.Cookie(h.cookie.Name)
	if err != nil || token == "" {
		response.OK(c, meResp{Authenticated: false})
		return
	}

	sess, err := h.uc.CurrentSession(ctx, token)
	switch {
	case err == nil:
		response.OK(c, newMeResp(sess))
	case errors.Is(err, auth.ErrReauthRequired):
		// Session survives a failed refresh so the client can show a
		// re-auth prompt instead of a silent logout.
		resp := newMeResp(sess)
		resp.ReauthRequired = true
		response.OK(c, resp)
	default:
		response.OK(c, meResp{Authenticated: false})
	}
}
