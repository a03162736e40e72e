package transport

// NameSearchRequest carries the name fragment for a name search.
type NameSearchRequest struct {
	Name string `form:"name" validate:"required,min=1,max=100,personname"`
}

// PhoneSearchRequest carries the phone number for a phone lookup.
type PhoneSearchRequest struct {
	PhoneNumber string `form:"phoneNumber" validate:"required,phonenum"`
}

// NameSearchResult is one entry in a name search response. Name searches
// never disclose email.
type NameSearchResult struct {
	Name           string `json:"name"`
	PhoneNumber    string `json:"phoneNumber"`
	SpamLikelihood int    `json:"spamLikelihood"`
	IsRegistered   bool   `json:"isRegistered"`
}

// NameSearchResponse wraps name search results.
type NameSearchResponse struct {
	Results []NameSearchResult `json:"results"`
	Count   int                `json:"count"`
}

// PhoneSearchResult is one entry in a phone lookup response. Email is always
// present in the payload and null unless the privacy rule allows disclosure.
type PhoneSearchResult struct {
	Name           string  `json:"name"`
	PhoneNumber    string  `json:"phoneNumber"`
	Email          *string `json:"email"`
	SpamLikelihood int     `json:"spamLikelihood"`
	IsRegistered   bool    `json:"isRegistered"`
}

// PhoneSearchResponse wraps phone lookup results.
type PhoneSearchResponse struct {
	Results []PhoneSearchResult `json:"results"`
	Count   int                 `json:"count"`
}
