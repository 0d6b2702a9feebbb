package dto

// IdentityEvent is the identity provider's user-lifecycle webhook payload.
// Event types mirror the provider's: user.created, user.updated, user.deleted.
type IdentityEvent struct {
	Type string            `json:"type" binding:"required" example:"user.created"`
	Data IdentityEventData `json:"data"`
}

// IdentityEventData carries the provider's user record
type IdentityEventData struct {
	ID             string                 `json:"id"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	ImageURL       string                 `json:"image_url"`
	EmailAddresses []IdentityEmailAddress `json:"email_addresses"`
}

// IdentityEmailAddress is one email entry in the provider's user record
type IdentityEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail returns the first email the provider reports, or "".
func (d IdentityEventData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return d.EmailAddresses[0].EmailAddress
}
