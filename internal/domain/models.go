package domain

import "database/sql"

// Watch is the client-facing listing shape built fresh from each upstream
// record on every request. ID is the upstream page id, carried through.
type Watch struct {
	ID          string   `json:"id"`
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Ref         string   `json:"ref"`
	Price       string   `json:"price"` // "$12,345" or "Inquire"
	Details     string   `json:"details"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Year        string   `json:"year"`
	Condition   string   `json:"condition"`
	Material    string   `json:"material"`
	Dial        string   `json:"dial"`
	CaseSize    string   `json:"caseSize"`
	Contents    string   `json:"contents"` // "Box & Papers" | "Watch Only"
	Description string   `json:"description"`
	Model       string   `json:"model"`
}

// Submission types accepted by the form endpoint.
const (
	TypeJoinList    = "JOIN_LIST"
	TypeBuy         = "BUY"
	TypeSell        = "SELL"
	TypeTrade       = "TRADE"
	TypeWatchDetail = "WATCH_DETAIL"
)

// SubmissionTypes is the closed set of recognized form categories.
var SubmissionTypes = []string{TypeJoinList, TypeBuy, TypeSell, TypeTrade, TypeWatchDetail}

// ValidSubmissionType reports membership in the recognized set.
func ValidSubmissionType(t string) bool {
	for _, v := range SubmissionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// StatusNew is the status every fresh submission row starts with.
const StatusNew = "new"

// Submission is one persisted form submission. Rows are written once with
// status "new"; later status changes happen outside this service.
type Submission struct {
	ID           string         `db:"id"`
	Type         string         `db:"submission_type"`
	Email        string         `db:"email"`
	FullName     sql.NullString `db:"full_name"`
	WatchDetails sql.NullString `db:"watch_details"`
	WatchName    sql.NullString `db:"watch_name"`
	WatchRef     sql.NullString `db:"watch_ref"`
	Status       string         `db:"status"`
	CreatedAt    string         `db:"created_at"`
}
