package entity

// CompanyProfile holds the shop identity printed on invoice headers.
// Served by GET /company-profile/.
type CompanyProfile struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	GSTIN   string `json:"gstin,omitempty"`
	State   string `json:"state,omitempty"`
	Logo    string `json:"logo,omitempty"` // media path relative to the API origin
}
