package services

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"dialedbyh/internal/domain"
	"dialedbyh/internal/notion"
)

// ListingOptions selects which database a listing reads and how it is scoped.
// The inventory listing filters to Available pieces and hides ones without
// photos; the collectibles listing shows everything.
type ListingOptions struct {
	DatabaseID    string
	StatusFilter  string // select value to match; "" disables the filter
	RequireImages bool
}

type InventoryService struct {
	Notion *notion.Client
}

func NewInventoryService(client *notion.Client) *InventoryService {
	return &InventoryService{Notion: client}
}

// Watches runs one scoped query (creation time ascending) and maps every page
// into its display shape. The RequireImages narrowing is left to the caller
// since a direct id lookup bypasses it.
func (s *InventoryService) Watches(ctx context.Context, opt ListingOptions) ([]domain.Watch, error) {
	q := notion.Query{Sorts: notion.CreatedAscending()}
	if opt.StatusFilter != "" {
		q.Filter = notion.SelectEqualsFilter("Status", opt.StatusFilter)
	}

	pages, err := s.Notion.QueryDatabase(ctx, opt.DatabaseID, q)
	if err != nil {
		return nil, err
	}

	watches := make([]domain.Watch, 0, len(pages))
	for _, pg := range pages {
		watches = append(watches, buildWatch(pg))
	}
	return watches, nil
}

// buildWatch assembles one display item. Every field degrades to its empty
// default when the source property is missing; this never panics on sparse
// records.
func buildWatch(pg notion.Page) domain.Watch {
	p := pg.Properties

	brand := p["Brand"].PlainText()
	model := p["Model"].PlainText()

	name := p["Watch"].PlainText()
	if name == "" {
		name = strings.TrimSpace(brand + " " + model)
	}

	material := p["Material"].PlainText()
	dial := p["Dial Color"].PlainText()
	caseSize := caseSizeText(p["Case Size"])
	description := p["Extra Details"].PlainText()
	images := p["Images"].FileURLs()

	contents := "Watch Only"
	if p["Box & Papers"].Bool() {
		contents = "Box & Papers"
	}

	image := ""
	if len(images) > 0 {
		image = images[0]
	}

	return domain.Watch{
		ID:          pg.ID,
		Brand:       brand,
		Name:        name,
		Ref:         p["Reference Number"].PlainText(),
		Price:       priceText(p["Asking Price"]),
		Details:     detailsText(material, dial, caseSize, description),
		Image:       image,
		Images:      images,
		Year:        yearText(p["Year"]),
		Condition:   p["Condition"].PlainText(),
		Material:    material,
		Dial:        dial,
		CaseSize:    caseSize,
		Contents:    contents,
		Description: description,
		Model:       model,
	}
}

// priceText renders a set, non-zero asking price with thousands separators.
// A zero price means "price on request" upstream, so it falls back the same
// way as an empty cell.
func priceText(p notion.Property) string {
	if v, ok := p.NumberValue(); ok && v != 0 {
		return "$" + humanize.Commaf(v)
	}
	return "Inquire"
}

func caseSizeText(p notion.Property) string {
	if v, ok := p.NumberValue(); ok && v != 0 {
		return strconv.FormatFloat(v, 'f', -1, 64) + "mm"
	}
	return ""
}

func yearText(p notion.Property) string {
	if v, ok := p.NumberValue(); ok && v != 0 {
		return strconv.Itoa(int(math.Round(v)))
	}
	return ""
}

// detailsText builds the short card-view summary: non-empty parts in a fixed
// order, comma-joined, with a closing period only when something was said.
func detailsText(material, dial, caseSize, extra string) string {
	var parts []string
	if material != "" {
		parts = append(parts, material)
	}
	if dial != "" {
		parts = append(parts, dial+" dial")
	}
	if caseSize != "" {
		parts = append(parts, caseSize)
	}
	if extra != "" {
		parts = append(parts, extra)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ", ") + "."
}
