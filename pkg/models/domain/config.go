package domain

import "fmt"

type ProfileType string

const (
	ProfileTypeContentStore ProfileType = "content_store"
	ProfileTypeEmail        ProfileType = "email"
)

type ConfigProfile struct {
	Name string
	Type ProfileType
}

func (c ConfigProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Type, c.Name)
}

// ContentStoreConfig holds credentials for the headless content store.
// Token is only required by the write client.
type ContentStoreConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
}

// EmailConfig holds credentials for the email delivery API.
type EmailConfig struct {
	APIKey string
	From   string
	To     string
}
