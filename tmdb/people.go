package tmdb

import (
	"context"
	"fmt"
)

// PeopleService groups the person endpoints
type PeopleService struct {
	client *Client
}

// PersonPath returns the detail path of a person
func PersonPath(id int) string {
	return fmt.Sprintf("person/%d", id)
}

// FindPersonByID returns a person
func (s *PeopleService) FindPersonByID(ctx context.Context, id int) (Person, bool, error) {
	return get[Person](ctx, s.client, PersonPath(id), nil)
}
