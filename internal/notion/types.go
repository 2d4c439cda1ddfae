package notion

import "strings"

// Page is one record returned by a database query. Properties is keyed by the
// column name as configured in the workspace; looking up a missing name yields
// the zero Property, which every accessor treats as "absent".
type Page struct {
	ID         string              `json:"id"`
	CreatedAt  string              `json:"created_time"`
	Properties map[string]Property `json:"properties"`
}

// Property is a single typed column value. Only the payload matching Type is
// populated; the rest stay at their zero values.
type Property struct {
	Type     string     `json:"type"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	Select   *Option    `json:"select,omitempty"`
	Number   *float64   `json:"number,omitempty"`
	Checkbox bool       `json:"checkbox,omitempty"`
	Files    []FileRef  `json:"files,omitempty"`
}

type RichText struct {
	PlainText string `json:"plain_text"`
}

type Option struct {
	Name string `json:"name"`
}

// FileRef is one attachment. Uploaded files carry File, linked ones External.
type FileRef struct {
	Name     string   `json:"name,omitempty"`
	File     *FileURL `json:"file,omitempty"`
	External *FileURL `json:"external,omitempty"`
}

type FileURL struct {
	URL string `json:"url"`
}

// PlainText flattens a text-bearing property to a display string: the joined
// runs of a title/rich_text value, or the selected option's name. Any other
// type (or an absent property) comes back as "".
func (p Property) PlainText() string {
	switch p.Type {
	case "title":
		return joinRuns(p.Title)
	case "rich_text":
		return joinRuns(p.RichText)
	case "select":
		if p.Select == nil {
			return ""
		}
		return p.Select.Name
	default:
		return ""
	}
}

// NumberValue returns the numeric payload and whether it was set. A stored
// zero reports (0, true); an empty cell or non-number property reports
// (0, false).
func (p Property) NumberValue() (float64, bool) {
	if p.Type != "number" || p.Number == nil {
		return 0, false
	}
	return *p.Number, true
}

// Bool reports a checkbox value; anything else is false.
func (p Property) Bool() bool {
	return p.Type == "checkbox" && p.Checkbox
}

// FileURLs extracts the attachment URLs in source order. Uploaded-file URLs
// win over external links; attachments with neither are skipped, so the
// result never contains empty strings.
func (p Property) FileURLs() []string {
	urls := make([]string, 0, len(p.Files))
	for _, f := range p.Files {
		switch {
		case f.File != nil && f.File.URL != "":
			urls = append(urls, f.File.URL)
		case f.External != nil && f.External.URL != "":
			urls = append(urls, f.External.URL)
		}
	}
	return urls
}

func joinRuns(runs []RichText) string {
	if len(runs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.PlainText)
	}
	return b.String()
}
