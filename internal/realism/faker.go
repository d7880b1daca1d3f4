package realism

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

type Faker struct {
	faker *gofakeit.Faker
}

func NewFaker(seed int64) *Faker {
	return &Faker{faker: gofakeit.New(resolveSeed(seed))}
}

func (f *Faker) Name() string { return KindFaker }

func (f *Faker) FirstName() string { return f.faker.FirstName() }

func (f *Faker) LastName() string { return f.faker.LastName() }

func (f *Faker) FullName() string { return f.faker.Name() }

func (f *Faker) Phone() string {
	phone := f.faker.PhoneFormatted()
	if len(phone) > 15 {
		phone = phone[:15]
	}
	return phone
}

func (f *Faker) Address() string {
	addr := f.faker.Address()
	return strings.Join([]string{addr.Street, addr.City, addr.State + " " + addr.Zip}, ", ")
}

func (f *Faker) Date(start, end time.Time) time.Time {
	if !end.After(start) {
		return start
	}
	return f.faker.DateRange(start, end)
}
