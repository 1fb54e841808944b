package queries

import (
	"errors"

	"calendar/internal/pkg/guard"
)

// ErrGetAllRemindersQueryIsNotConstructed is returned when handling a zero GetAllRemindersQuery.
var ErrGetAllRemindersQueryIsNotConstructed = errors.New(
	"GetAllRemindersQuery must be created via NewGetAllRemindersQuery constructor",
)

// GetAllRemindersQuery lists every reminder in calendar order.
//
// Example:
//
//	handler := NewGetAllRemindersQueryHandler(db)
//	reminders, err := handler.Handle(ctx, NewGetAllRemindersQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to list reminders: %w", err)
//	}
//	for _, r := range reminders {
//	    fmt.Printf("%s %s %s\n", r.Date, r.At, r.Title)
//	}
type GetAllRemindersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRemindersQuery returns the query. It has no parameters.
func NewGetAllRemindersQuery() GetAllRemindersQuery {
	return GetAllRemindersQuery{guard: guard.NewConstructorGuard()}
}

// Validate returns ErrGetAllRemindersQueryIsNotConstructed for a zero query.
func (q GetAllRemindersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRemindersQueryIsNotConstructed)
}
