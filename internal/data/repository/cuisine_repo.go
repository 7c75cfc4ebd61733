package repository

import (
	"context"
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/pkg/database"

	"go.uber.org/zap"
)

type CuisineRepository interface {
	FindAll(ctx context.Context) ([]*entity.Cuisine, error)
}

type cuisineRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCuisineRepository(db database.PgxIface, log *zap.Logger) CuisineRepository {
	return &cuisineRepository{
		db:  db,
		log: log.With(zap.String("repository", "cuisine")),
	}
}

// FindAll loads the whole category table. It is small and the equivalence
// walk needs the full set, so there is no filtered variant.
func (r *cuisineRepository) FindAll(ctx context.Context) ([]*entity.Cuisine, error) {
	query := `
		SELECT id, name, parent1, parent2, parent3, parent4, parent5
		FROM cuisines
		ORDER BY name ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to load cuisines", zap.Error(err))
		return nil, fmt.Errorf("load cuisines: %w", err)
	}
	defer rows.Close()

	var cuisines []*entity.Cuisine
	for rows.Next() {
		var cuisine entity.Cuisine
		err := rows.Scan(
			&cuisine.ID,
			&cuisine.Name,
			&cuisine.Parent1,
			&cuisine.Parent2,
			&cuisine.Parent3,
			&cuisine.Parent4,
			&cuisine.Parent5,
		)
		if err != nil {
			r.log.Error("Failed to scan cuisine row", zap.Error(err))
			return nil, fmt.Errorf("scan cuisine row: %w", err)
		}
		cuisines = append(cuisines, &cuisine)
	}

	return cuisines, nil
}
