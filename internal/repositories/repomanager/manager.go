package repomanager

import (
	"context"
	"database/sql"

	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/repositories/itineraries"
	"github.com/planmytrip/tripstore/internal/repositories/itineraryplaces"
	"github.com/planmytrip/tripstore/internal/repositories/places"
	"github.com/planmytrip/tripstore/internal/repositories/useritineraries"
	"github.com/planmytrip/tripstore/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Itineraries(db dbx.DBTX) itineraries.Repository
	UserItineraries(db dbx.DBTX) useritineraries.Repository
	Places(db dbx.DBTX) places.Repository
	ItineraryPlaces(db dbx.DBTX) itineraryplaces.Repository
}
