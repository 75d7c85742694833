package events

import "github.com/SergeyKozhin/presenter-bot/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"event_date",
		"event_type",
		"who",
		"what",
	).
	From(database.EventsTable)
