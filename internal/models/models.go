package models

// Account is a registered user identity.
// Password is stored and returned as-is; see utils.PasswordScheme.
type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Message is a short text post authored by an Account.
// TimePosted is an opaque epoch value supplied by the client and never validated.
type Message struct {
	ID          int    `json:"id"`
	PostedBy    int    `json:"postedBy"`
	MessageText string `json:"messageText"`
	TimePosted  *int64 `json:"timePosted"`
}
