package trips

import (
	"context"
	"database/sql"
	"time"

	"github.com/planmytrip/tripstore/internal/common"
	"github.com/planmytrip/tripstore/internal/dbx"
	"github.com/planmytrip/tripstore/internal/models"
	"github.com/planmytrip/tripstore/internal/repositories/itineraries"
	"github.com/planmytrip/tripstore/internal/repositories/itineraryplaces"
	"github.com/planmytrip/tripstore/internal/repositories/places"
	"github.com/planmytrip/tripstore/internal/repositories/useritineraries"
	"github.com/planmytrip/tripstore/internal/repositories/users"
)

// memStore is an in-memory stand-in for the database. Writes are not undone
// on rollback; tests assert rollback through sqlmock instead.
type memStore struct {
	nextID int64

	users       []*models.User
	itineraries map[int64]*models.Itinerary
	links       []*models.UserItinerary
	places      map[string]*models.Place
	entries     []*models.ItineraryPlace

	// errs forces a failure from the named repository method, e.g. "users.GetAll".
	errs map[string]error
	// concurrentTouch simulates another writer bumping the version first.
	concurrentTouch bool
}

func newMemStore() *memStore {
	return &memStore{
		itineraries: map[int64]*models.Itinerary{},
		places:      map[string]*models.Place{},
		errs:        map[string]error{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) fail(name string) error { return m.errs[name] }

func (m *memStore) addUser(name string) *models.User {
	u := &models.User{ID: m.id(), UserName: name, CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	m.users = append(m.users, u)
	return u
}

func (m *memStore) addItinerary(userID int64, name string) *models.UserItinerary {
	it := &models.Itinerary{ID: m.id(), Name: name, Version: 1}
	m.itineraries[it.ID] = it
	link := &models.UserItinerary{ID: m.id(), UserID: userID, ItineraryID: it.ID}
	m.links = append(m.links, link)
	return link
}

func (m *memStore) addEntry(itineraryID int64, p models.Place) *models.ItineraryPlace {
	place := m.resolvePlace(&p)
	pos := 0
	for _, e := range m.entries {
		if e.ItineraryID == itineraryID && e.Position > pos {
			pos = e.Position
		}
	}
	e := &models.ItineraryPlace{ID: m.id(), ItineraryID: itineraryID, PlaceID: place.ID, Position: pos + 1}
	m.entries = append(m.entries, e)
	return e
}

// resolvePlace mirrors places.Resolve: a known place is returned as stored.
func (m *memStore) resolvePlace(p *models.Place) *models.Place {
	if cur, ok := m.places[p.GooglePlaceID]; ok {
		*p = *cur
		return cur
	}
	p.ID = m.id()
	stored := *p
	m.places[p.GooglePlaceID] = &stored
	return &stored
}

func (m *memStore) placeByID(id int64) *models.Place {
	for _, p := range m.places {
		if p.ID == id {
			cp := *p
			return &cp
		}
	}
	return nil
}

func (m *memStore) entriesOf(itineraryID int64) []*models.ItineraryPlace {
	var out []*models.ItineraryPlace
	for _, e := range m.entries {
		if e.ItineraryID == itineraryID {
			out = append(out, e)
		}
	}
	return out
}

// --- users ---

type fakeUsers struct{ m *memStore }

func (f *fakeUsers) GetAll(ctx context.Context) ([]*models.User, error) {
	if err := f.m.fail("users.GetAll"); err != nil {
		return nil, err
	}
	out := []*models.User{}
	for _, u := range f.m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUsers) FindByUsername(ctx context.Context, userName string) ([]*models.User, error) {
	if err := f.m.fail("users.FindByUsername"); err != nil {
		return nil, err
	}
	out := []*models.User{}
	for _, u := range f.m.users {
		if u.UserName == userName {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if err := f.m.fail("users.GetByID"); err != nil {
		return nil, err
	}
	for _, u := range f.m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) (bool, error) {
	if err := f.m.fail("users.Create"); err != nil {
		return false, err
	}
	for _, u := range f.m.users {
		if u.UserName == user.UserName {
			return false, nil
		}
	}
	user.ID = f.m.id()
	user.CreatedAt = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	cp := *user
	f.m.users = append(f.m.users, &cp)
	return true, nil
}

// --- itineraries ---

type fakeItineraries struct{ m *memStore }

func (f *fakeItineraries) Create(ctx context.Context, it *models.Itinerary) (*models.Itinerary, error) {
	if err := f.m.fail("itineraries.Create"); err != nil {
		return nil, err
	}
	it.ID = f.m.id()
	it.Version = 1
	cp := *it
	f.m.itineraries[it.ID] = &cp
	return it, nil
}

func (f *fakeItineraries) Touch(ctx context.Context, id int64, version int64, updatedAt time.Time) error {
	if err := f.m.fail("itineraries.Touch"); err != nil {
		return err
	}
	it, ok := f.m.itineraries[id]
	if !ok {
		return common.ErrVersionConflict
	}
	if f.m.concurrentTouch {
		it.Version++
	}
	if it.Version != version {
		return common.ErrVersionConflict
	}
	it.Version++
	it.LastUpdatedDate = updatedAt
	return nil
}

// --- user itineraries ---

type fakeLinks struct{ m *memStore }

func (f *fakeLinks) Create(ctx context.Context, link *models.UserItinerary) (*models.UserItinerary, error) {
	if err := f.m.fail("useritineraries.Create"); err != nil {
		return nil, err
	}
	link.ID = f.m.id()
	cp := *link
	f.m.links = append(f.m.links, &cp)
	return link, nil
}

func (f *fakeLinks) load(l *models.UserItinerary) *models.UserItinerary {
	it := *f.m.itineraries[l.ItineraryID]
	return &models.UserItinerary{ID: l.ID, UserID: l.UserID, ItineraryID: l.ItineraryID, Itinerary: &it}
}

func (f *fakeLinks) ListByUser(ctx context.Context, userID int64) ([]*models.UserItinerary, error) {
	if err := f.m.fail("useritineraries.ListByUser"); err != nil {
		return nil, err
	}
	out := []*models.UserItinerary{}
	for _, l := range f.m.links {
		if l.UserID == userID {
			out = append(out, f.load(l))
		}
	}
	return out, nil
}

func (f *fakeLinks) GetByID(ctx context.Context, userID, id int64) (*models.UserItinerary, error) {
	if err := f.m.fail("useritineraries.GetByID"); err != nil {
		return nil, err
	}
	for _, l := range f.m.links {
		if l.UserID == userID && l.ID == id {
			return f.load(l), nil
		}
	}
	return nil, common.ErrorNotFound
}

// --- places ---

type fakePlaces struct{ m *memStore }

func (f *fakePlaces) Resolve(ctx context.Context, p *models.Place) (*models.Place, error) {
	if err := f.m.fail("places.Resolve"); err != nil {
		return nil, err
	}
	f.m.resolvePlace(p)
	return p, nil
}

func (f *fakePlaces) Update(ctx context.Context, p *models.Place) (int64, error) {
	if err := f.m.fail("places.Update"); err != nil {
		return 0, err
	}
	for key, cur := range f.m.places {
		if cur.ID == p.ID {
			stored := *p
			stored.GooglePlaceID = key
			f.m.places[key] = &stored
			return 1, nil
		}
	}
	return 0, nil
}

// --- itinerary places ---

type fakeEntries struct{ m *memStore }

func (f *fakeEntries) Create(ctx context.Context, e *models.ItineraryPlace) (*models.ItineraryPlace, error) {
	if err := f.m.fail("itineraryplaces.Create"); err != nil {
		return nil, err
	}
	pos := 0
	for _, cur := range f.m.entriesOf(e.ItineraryID) {
		if cur.PlaceID == e.PlaceID {
			return nil, common.ErrorAlreadyExists
		}
		if cur.Position > pos {
			pos = cur.Position
		}
	}
	e.ID = f.m.id()
	e.Position = pos + 1
	f.m.entries = append(f.m.entries, &models.ItineraryPlace{
		ID: e.ID, ItineraryID: e.ItineraryID, PlaceID: e.PlaceID, Position: e.Position,
	})
	return e, nil
}

func (f *fakeEntries) ListByItinerary(ctx context.Context, itineraryID int64) ([]*models.ItineraryPlace, error) {
	if err := f.m.fail("itineraryplaces.ListByItinerary"); err != nil {
		return nil, err
	}
	out := []*models.ItineraryPlace{}
	for _, e := range f.m.entriesOf(itineraryID) {
		cp := *e
		cp.Place = f.m.placeByID(e.PlaceID)
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeEntries) Delete(ctx context.Context, id int64) (int64, error) {
	if err := f.m.fail("itineraryplaces.Delete"); err != nil {
		return 0, err
	}
	for i, e := range f.m.entries {
		if e.ID == id {
			f.m.entries = append(f.m.entries[:i], f.m.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeEntries) UpdatePlace(ctx context.Context, id, placeID int64) (int64, error) {
	if err := f.m.fail("itineraryplaces.UpdatePlace"); err != nil {
		return 0, err
	}
	for _, e := range f.m.entries {
		if e.ID == id {
			e.PlaceID = placeID
			return 1, nil
		}
	}
	return 0, nil
}

// --- manager ---

type fakeRepoManager struct{ m *memStore }

func (r *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (r *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return &fakeUsers{r.m} }
func (r *fakeRepoManager) Itineraries(dbx.DBTX) itineraries.Repository { return &fakeItineraries{r.m} }
func (r *fakeRepoManager) UserItineraries(dbx.DBTX) useritineraries.Repository {
	return &fakeLinks{r.m}
}
func (r *fakeRepoManager) Places(dbx.DBTX) places.Repository { return &fakePlaces{r.m} }
func (r *fakeRepoManager) ItineraryPlaces(dbx.DBTX) itineraryplaces.Repository {
	return &fakeEntries{r.m}
}
