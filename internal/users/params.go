package users

// Parameter structs for the user routines. The args order is the positional
// contract with the routine signatures; see the routine registry in the store
// package.

// registerParams feeds register_user(first_name, last_name, role, email,
// username, password_digest).
type registerParams struct {
	firstName string
	lastName  string
	role      string
	email     string
	username  string
	digest    string
}

func (p registerParams) args() []any {
	return []any{p.firstName, p.lastName, p.role, p.email, p.username, p.digest}
}

// resetPasswordParams feeds reset_user_password(username, password_digest).
type resetPasswordParams struct {
	username string
	digest   string
}

func (p resetPasswordParams) args() []any {
	return []any{p.username, p.digest}
}
