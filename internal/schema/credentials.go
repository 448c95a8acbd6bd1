package schema

// CredentialKeyFirecrawl is the secret-store key the firecrawl tools resolve
// their credentials under.
const CredentialKeyFirecrawl = "firecrawlApi"

// DefaultFirecrawlBaseURL is used when the credential record leaves baseUrl empty.
const DefaultFirecrawlBaseURL = "https://api.firecrawl.dev/v2"

// Credentials is one remote-API credential record from the host's secret store.
type Credentials struct {
	BaseURL string `json:"baseUrl,omitempty"`
	APIKey  string `json:"apiKey"`
}
