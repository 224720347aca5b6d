package core

import "fmt"

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

// ErrorInvalidOwner marks a ScheduledStream with neither or both owner kinds
// set. Treated as a fatal per-item error: skipped with a diagnostic.
type ErrorInvalidOwner struct {
	ID string
}

func (e ErrorInvalidOwner) Error() string {
	return fmt.Sprintf("Invalid Owner (scheduled stream %s)", e.ID)
}

func NewErrorInvalidOwner(id string) ErrorInvalidOwner {
	return ErrorInvalidOwner{ID: id}
}
