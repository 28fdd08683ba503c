package model

// Session is the identity of the caller for one request or sweep pass. The
// user id is an opaque reference into the external identity provider; the
// service never owns user records.
type Session struct {
	UserID string
}
