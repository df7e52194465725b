// Package models defines the entities persisted by the trip store: users,
// itineraries, places and the two join entities linking them.
package models

import "time"

// User is an identity with a unique username. Its itineraries are reached
// through UserItinerary links.
type User struct {
	ID        int64     `db:"id"`
	UserName  string    `db:"username" validate:"required,max=64"`
	Email     string    `db:"email" validate:"omitempty,email"`
	CreatedAt time.Time `db:"created_at"`
}

// UserItinerary links one User to one Itinerary.
type UserItinerary struct {
	ID          int64
	UserID      int64
	ItineraryID int64

	// User and Itinerary are populated when the link is loaded with its graph.
	User      *User
	Itinerary *Itinerary
}
