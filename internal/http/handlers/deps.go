package handlers

import (
	"dialedbyh/internal/config"
	"dialedbyh/internal/mail"
	"dialedbyh/internal/notion"
	"dialedbyh/internal/repos"
	"dialedbyh/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Inventory    *ListingHandler
	Collectibles *ListingHandler
	Submissions  *SubmissionHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, client *notion.Client, sender mail.Sender) *Deps {
	subRepo := repos.NewSubmissionRepo(db)

	invSvc := services.NewInventoryService(client)
	subSvc := services.NewSubmissionService(subRepo, sender, cfg.NotifyEmail)

	return &Deps{
		Inventory: &ListingHandler{
			Inv: invSvc,
			Opts: services.ListingOptions{
				DatabaseID:    cfg.InventoryDBID,
				StatusFilter:  "Available",
				RequireImages: true,
			},
			Cache: "public, max-age=60, s-maxage=60",
		},
		Collectibles: &ListingHandler{
			Inv:  invSvc,
			Opts: services.ListingOptions{DatabaseID: cfg.CollectiblesDBID},
		},
		Submissions: &SubmissionHandler{Subs: subSvc},
	}
}
