package person

import "context"

type Service interface {
	AllPeople(ctx context.Context, limit int) ([]Person, error)
	PersonByID(ctx context.Context, id int) (Person, error)
	StarsOfMovie(ctx context.Context, movieID int) ([]Person, error)
}

type Repository interface {
	AllPeople(ctx context.Context, limit int) ([]Person, error)
	PersonByID(ctx context.Context, id int) (*Person, error)
	StarsOfMovie(ctx context.Context, movieID int) ([]Person, error)
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

func (uc *Usecase) AllPeople(ctx context.Context, limit int) ([]Person, error) {
	return uc.r.AllPeople(ctx, limit)
}

func (uc *Usecase) PersonByID(ctx context.Context, id int) (Person, error) {
	p, err := uc.r.PersonByID(ctx, id)
	if err != nil {
		return Person{}, err
	}
	if p == nil {
		return Person{}, ErrPersonNotFound
	}
	return *p, nil
}

// StarsOfMovie returns the cast of a movie. An empty cast classifies as
// not-found, matching the relationship-endpoint contract.
func (uc *Usecase) StarsOfMovie(ctx context.Context, movieID int) ([]Person, error) {
	stars, err := uc.r.StarsOfMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if len(stars) == 0 {
		return nil, ErrStarsNotFound
	}
	return stars, nil
}
