package users

// Credentials pairs a username with a secret. The secret is plaintext only on
// the way into the hashing boundary; hashing produces a separate digest value
// and never rewrites a Credentials in place, so a given value is always
// unambiguously one or the other.
type Credentials struct {
	Username string
	Secret   string
}

// Account is a user profile as submitted at registration. The role is
// assigned at creation; later role changes go through an administrative path
// outside this workflow.
type Account struct {
	FirstName   string
	LastName    string
	Email       string
	Role        string
	Credentials Credentials
}

// storedCredentials is the digest row read back from the store.
type storedCredentials struct {
	Username string
	Digest   string
}
