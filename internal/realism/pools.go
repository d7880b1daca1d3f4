package realism

import (
	"fmt"
	"math/rand"
	"time"
)

var (
	firstNames = []string{
		"John", "Jane", "Mike", "Sarah", "David", "Lisa", "Chris", "Amy", "Mark", "Emma",
		"James", "Jessica", "Robert", "Jennifer", "Michael", "Ashley", "William", "Emily",
		"Richard", "Amanda", "Joseph", "Melissa", "Thomas", "Deborah", "Charles", "Dorothy",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
		"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	}
	streets = []string{"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Pine St", "Elm St", "Park Blvd", "Lake Rd"}
	cities  = []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
		"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
	}
	states = []string{"NY", "CA", "TX", "FL", "IL", "PA", "OH", "GA", "NC", "MI"}
)

// Pools draws from small built-in name and address lists.
type Pools struct {
	rand *rand.Rand
}

func NewPools(seed int64) *Pools {
	return &Pools{rand: newRand(seed)}
}

func (p *Pools) pick(values []string) string {
	return values[p.rand.Intn(len(values))]
}

func (p *Pools) Name() string { return KindPools }

func (p *Pools) FirstName() string { return p.pick(firstNames) }

func (p *Pools) LastName() string { return p.pick(lastNames) }

func (p *Pools) FullName() string {
	return p.FirstName() + " " + p.LastName()
}

func (p *Pools) Phone() string {
	return fmt.Sprintf("(%03d) %03d-%04d", 100+p.rand.Intn(900), 100+p.rand.Intn(900), 1000+p.rand.Intn(9000))
}

func (p *Pools) Address() string {
	return fmt.Sprintf("%d %s, %s, %s", 100+p.rand.Intn(9900), p.pick(streets), p.pick(cities), p.pick(states))
}

func (p *Pools) Date(start, end time.Time) time.Time {
	return dateBetween(p.rand, start, end)
}
