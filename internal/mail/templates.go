package mail

import (
	"html/template"
	"strings"

	"dialedbyh/internal/domain"
)

// Template is one rendered notification: subject line plus HTML body.
type Template struct {
	Subject string
	Body    string
}

type templateData struct {
	Heading   string
	FullName  string
	Email     string
	WatchName string
	WatchRef  string
	Details   string
}

var joinListTmpl = template.Must(template.New("join_list").Parse(
	`<h2>New Private List Signup</h2>
<p><strong>Name:</strong> {{if .FullName}}{{.FullName}}{{else}}Not provided{{end}}</p>
<p><strong>Email:</strong> {{.Email}}</p>`))

var requestTmpl = template.Must(template.New("request").Parse(
	`<h2>{{.Heading}}</h2>
<p><strong>Name:</strong> {{.FullName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{- if .WatchName}}
<p><strong>Watch:</strong> {{.WatchName}}</p>
{{- end}}
{{- if .WatchRef}}
<p><strong>Reference:</strong> {{.WatchRef}}</p>
{{- end}}
{{- if .Details}}
<p><strong>Details:</strong> {{.Details}}</p>
{{- end}}`))

// ForSubmission builds the operator notification for a stored row. The switch
// is exhaustive over the recognized submission types; anything else reports
// ok=false and the caller skips notification.
func ForSubmission(s domain.Submission) (Template, bool) {
	data := templateData{
		FullName:  s.FullName.String,
		Email:     s.Email,
		WatchName: s.WatchName.String,
		WatchRef:  s.WatchRef.String,
		Details:   s.WatchDetails.String,
	}

	switch s.Type {
	case domain.TypeJoinList:
		return Template{
			Subject: "New Private List Signup",
			Body:    render(joinListTmpl, data),
		}, true
	case domain.TypeBuy:
		data.Heading = "New Sourcing Request"
		return Template{
			Subject: "Sourcing Request: " + orElse(data.WatchName, "New Request"),
			Body:    render(requestTmpl, data),
		}, true
	case domain.TypeSell:
		data.Heading = "New Sell Request"
		return Template{
			Subject: "Sell Request: " + orElse(data.WatchName, "New Request"),
			Body:    render(requestTmpl, data),
		}, true
	case domain.TypeTrade:
		data.Heading = "New Trade Request"
		return Template{
			Subject: "Trade Request: " + orElse(data.WatchName, "New Request"),
			Body:    render(requestTmpl, data),
		}, true
	case domain.TypeWatchDetail:
		data.Heading = "New Watch Inquiry"
		return Template{
			Subject: "Watch Inquiry: " + orElse(data.WatchName, "Unknown"),
			Body:    render(requestTmpl, data),
		}, true
	default:
		return Template{}, false
	}
}

func render(t *template.Template, data templateData) string {
	var b strings.Builder
	_ = t.Execute(&b, data)
	return b.String()
}

func orElse(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
