package model

// HelpPage is a rendered markdown help document.
type HelpPage struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	HTML  string `json:"html"`
}
