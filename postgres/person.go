package postgres

import (
	"context"

	"flickfinder/params"
	"flickfinder/person"

	"gorm.io/gorm"
)

// PersonModel represents the database model for people.
type PersonModel struct {
	ID    int    `gorm:"primaryKey"`
	Name  string `gorm:"not null"`
	Birth int    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PersonModel) TableName() string {
	return "people"
}

// PersonRepository implements person.Repository.
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) AllPeople(ctx context.Context, limit int) ([]person.Person, error) {
	limit = params.ClampLimit(limit)

	const sql = `
SELECT id, name, birth
FROM people
ORDER BY id
LIMIT ?`

	var models []PersonModel
	if err := r.db.WithContext(ctx).Raw(sql, limit).Scan(&models).Error; err != nil {
		return nil, err
	}

	people := make([]person.Person, len(models))
	for i, model := range models {
		people[i] = person.Person{
			ID:    model.ID,
			Name:  model.Name,
			Birth: model.Birth,
		}
	}
	return people, nil
}

// PersonByID returns nil when no person has the given id.
func (r *PersonRepository) PersonByID(ctx context.Context, id int) (*person.Person, error) {
	const sql = `
SELECT id, name, birth
FROM people
WHERE id = ?`

	var models []PersonModel
	if err := r.db.WithContext(ctx).Raw(sql, id).Scan(&models).Error; err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}

	p := person.Person{
		ID:    models[0].ID,
		Name:  models[0].Name,
		Birth: models[0].Birth,
	}
	return &p, nil
}

func (r *PersonRepository) StarsOfMovie(ctx context.Context, movieID int) ([]person.Person, error) {
	const sql = `
SELECT people.id, people.name, people.birth
FROM people
INNER JOIN stars ON people.id = stars.person_id
WHERE stars.movie_id = ?
ORDER BY people.id`

	var models []PersonModel
	if err := r.db.WithContext(ctx).Raw(sql, movieID).Scan(&models).Error; err != nil {
		return nil, err
	}

	people := make([]person.Person, len(models))
	for i, model := range models {
		people[i] = person.Person{
			ID:    model.ID,
			Name:  model.Name,
			Birth: model.Birth,
		}
	}
	return people, nil
}
