package domain

import "time"

// Gathering is a public event listed on the marketing site.
type Gathering struct {
	ID        string
	Title     string
	Location  string
	StartsAt  time.Time
	Capacity  int
	RSVPs     []RSVP
	CreatedAt time.Time
}

// RSVP is one attendee registration for a gathering.
type RSVP struct {
	Name      string
	Email     string
	Guests    int
	CreatedAt time.Time
}

// Seats returns the number of seats taken, counting guests.
func (g *Gathering) Seats() int {
	n := 0
	for _, r := range g.RSVPs {
		n += 1 + r.Guests
	}
	return n
}
