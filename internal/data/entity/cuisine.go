package entity

import "github.com/google/uuid"

// Cuisine is a row in the flat category table. A cuisine can name up to
// five parent categories; equivalence expansion walks these columns.
type Cuisine struct {
	ID      uuid.UUID `db:"id"`
	Name    string    `db:"name"`
	Parent1 *string   `db:"parent1"`
	Parent2 *string   `db:"parent2"`
	Parent3 *string   `db:"parent3"`
	Parent4 *string   `db:"parent4"`
	Parent5 *string   `db:"parent5"`
}

// Parents returns the non-empty parent names.
func (c *Cuisine) Parents() []string {
	var parents []string
	for _, p := range []*string{c.Parent1, c.Parent2, c.Parent3, c.Parent4, c.Parent5} {
		if p != nil && *p != "" {
			parents = append(parents, *p)
		}
	}
	return parents
}
