package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	goauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"taskpilot/internal/auth"
	"taskpilot/internal/model"
)

// AuthURL builds the Google consent URL. Offline access with a forced
// consent prompt guarantees a refresh token on first sign-in.
func (uc *implUseCase) AuthURL(state string) string {
	return uc.oauthCfg.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// HandleCallback exchanges the authorization code, fetches the user's
// profile, and creates a session.
func (uc *implUseCase) HandleCallback(ctx context.Context, code string) (model.Session, error) {
	tok, err := uc.oauthCfg.Exchange(ctx, code)
	if err != nil {
		return model.Session{}, fmt.Errorf("%w: %v", auth.ErrExchangeFailed, err)
	}

	user, err := uc.fetchProfile(ctx, tok)
	if err != nil {
		return model.Session{}, err
	}

	sess := &model.Session{
		Token:     uuid.NewString(),
		User:      user,
		OAuth:     tok,
		CreatedAt: time.Now(),
	}

	if err := uc.sessions.Create(ctx, sess); err != nil {
		return model.Session{}, fmt.Errorf("failed to store session: %w", err)
	}

	uc.l.Infof(ctx, "auth: session created for user=%s", user.Email)
	return *sess, nil
}

// fetchProfile resolves the signed-in user's identity via the userinfo API.
func (uc *implUseCase) fetchProfile(ctx context.Context, tok *oauth2.Token) (model.User, error) {
	svc, err := goauth.NewService(ctx, option.WithTokenSource(uc.oauthCfg.TokenSource(ctx, tok)))
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", auth.ErrProfileFetch, err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", auth.ErrProfileFetch, err)
	}

	return model.User{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}

// Logout destroys the session.
func (uc *implUseCase) Logout(ctx context.Context, token string) {
	uc.sessions.Delete(ctx, token)
}
