package models

// PublicationType is the closed set of venues a publication can appear in.
type PublicationType string

// Publication types.
const (
	PublicationJournal    PublicationType = "journal"
	PublicationConference PublicationType = "conference"
	PublicationPreprint   PublicationType = "preprint"
)

// PublicationTypes lists every valid PublicationType.
var PublicationTypes = []PublicationType{PublicationJournal, PublicationConference, PublicationPreprint}

// Valid reports whether t is one of PublicationTypes.
func (t PublicationType) Valid() bool {
	switch t {
	case PublicationJournal, PublicationConference, PublicationPreprint:
		return true
	}
	return false
}

// Label returns the human readable name of the type.
func (t PublicationType) Label() string {
	switch t {
	case PublicationJournal:
		return "Journal"
	case PublicationConference:
		return "Conference"
	case PublicationPreprint:
		return "Preprint"
	}
	return string(t)
}

// Publication is a static bibliographic record.
type Publication struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Authors         string          `json:"authors"`
	Conference      string          `json:"conference"`
	Year            int             `json:"year"`
	Abstract        string          `json:"abstract"`
	Tags            []string        `json:"tags"`
	PublicationType PublicationType `json:"publication_type"`
	PDFURL          string          `json:"pdf_url"`
	CodeURL         string          `json:"code_url,omitempty"`
	ArxivURL        string          `json:"arxiv_url,omitempty"`
}
