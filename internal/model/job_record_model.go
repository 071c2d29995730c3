package model

import "strings"

const (
	PlaceholderTitle       = "Position Available"
	PlaceholderCompany     = "Company Not Specified"
	PlaceholderLocation    = "Location Not Specified"
	PlaceholderDescription = "Description Not Specified"
)

// JobRecord is one posting extracted from a scraped page. Fields are never empty.
type JobRecord struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// NewJobRecord trims every field and substitutes placeholders for blank ones.
func NewJobRecord(title, company, location, description string) JobRecord {
	return JobRecord{
		Title:       orPlaceholder(title, PlaceholderTitle),
		Company:     orPlaceholder(company, PlaceholderCompany),
		Location:    orPlaceholder(location, PlaceholderLocation),
		Description: orPlaceholder(description, PlaceholderDescription),
	}
}

// HasRealTitle reports whether the title carries extracted information.
func (j JobRecord) HasRealTitle() bool {
	return j.Title != PlaceholderTitle
}

func orPlaceholder(v, placeholder string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return placeholder
	}
	return v
}
