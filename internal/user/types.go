package user

import "daily-task-management/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User model.User
}

type LoginOutput struct {
	User  model.User
	Token string
}

type MeOutput struct {
	User model.User
}
