package person

import "flickfinder/errs"

var (
	ErrPersonNotFound = errs.Errorf(errs.ENOTFOUND, "Person not found")
	ErrStarsNotFound  = errs.Errorf(errs.ENOTFOUND, "Star(s) not found")
)

// Person is someone credited on a movie. The wire name of the birth year is
// "birth" for compatibility with existing clients.
type Person struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Birth int    `json:"birth"`
}
