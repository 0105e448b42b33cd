package repository

// CreateUserOptions holds parameters for inserting a new User.
// PasswordHash is the bcrypt hash, never the plaintext.
type CreateUserOptions struct {
	Email        string
	Username     string
	PasswordHash string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID       string
	Email    string
	Username string
}
