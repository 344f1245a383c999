package actions

import "context"

// IAction is one unit of work run by an operator. Actions sharing a Key are
// always run by the same operator, one after another.
type IAction interface {
	Key() string
	Perform(ctx context.Context) error
}
