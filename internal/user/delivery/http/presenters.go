package http

import (
	"time"

	"daily-task-management/internal/model"
	"daily-task-management/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=20,alphanum"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    r.Email,
		Username: r.Username,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

// userResp never carries the password hash.
type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

type registerResp struct {
	User userResp `json:"user"`
}

func (h *handler) newRegisterResp(out user.RegisterOutput) registerResp {
	return registerResp{User: newUserResp(out.User)}
}

type loginResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func (h *handler) newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		User:  newUserResp(out.User),
		Token: out.Token,
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(out user.MeOutput) meResp {
	return meResp{User: newUserResp(out.User)}
}
