package models

// Experience is a role on the experience page.
type Experience struct {
	ID          string   `json:"id"`
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
	Skills      []string `json:"skills"`
	Logo        string   `json:"logo,omitempty"`
}

// Project is a side project listed under the experience timeline.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}
