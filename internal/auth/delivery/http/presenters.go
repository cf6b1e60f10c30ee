package http

import "taskpilot/internal/model"

type userResp struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"image,omitempty"`
}

type meResp struct {
	Authenticated  bool      `json:"authenticated"`
	ReauthRequired bool      `json:"reauth_required,omitempty"`
	User           *userResp `json:"user,omitempty"`
}

func newMeResp(sess model.Session) meResp {
	return meResp{
		Authenticated: true,
		User: &userResp{
			ID:      sess.User.ID,
			Email:   sess.User.Email,
			Name:    sess.User.Name,
			Picture: sess.User.Picture,
		},
	}
}
