package repository

import (
	"context"
	"fmt"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ListRestaurantRepository interface {
	Add(ctx context.Context, entry *entity.ListRestaurant) error
	FindByListID(ctx context.Context, listID uuid.UUID) ([]*entity.ListRestaurant, error)
	FindEntry(ctx context.Context, listID, restaurantID uuid.UUID) (*entity.ListRestaurant, error)
	MaxPosition(ctx context.Context, listID uuid.UUID) (int, error)
	UpdateNote(ctx context.Context, listID, restaurantID uuid.UUID, note *string) error

	// Remove deletes the entry and shifts later positions down so the list
	// stays a contiguous 1..n sequence. Runs in a transaction.
	Remove(ctx context.Context, listID, restaurantID uuid.UUID) error

	// Reorder moves the entry to target position, shifting entries between
	// the old and new positions. Runs in a transaction.
	Reorder(ctx context.Context, listID, restaurantID uuid.UUID, target int) error
}

type listRestaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewListRestaurantRepository(db database.PgxIface, log *zap.Logger) ListRestaurantRepository {
	return &listRestaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "list_restaurant")),
	}
}

func (r *listRestaurantRepository) Add(ctx context.Context, entry *entity.ListRestaurant) error {
	query := `
		INSERT INTO list_restaurants (id, list_id, restaurant_id, position, note, added_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.ListID,
		entry.RestaurantID,
		entry.Position,
		entry.Note,
		entry.AddedAt,
	)

	if err != nil {
		r.log.Error("Failed to add restaurant to list",
			zap.Error(err),
			zap.String("list_id", entry.ListID.String()),
			zap.String("restaurant_id", entry.RestaurantID.String()),
		)
		return fmt.Errorf("add restaurant %s to list %s: %w",
			entry.RestaurantID.String(), entry.ListID.String(), err)
	}

	return nil
}

func (r *listRestaurantRepository) FindByListID(ctx context.Context, listID uuid.UUID) ([]*entity.ListRestaurant, error) {
	query := `
		SELECT id, list_id, restaurant_id, position, note, added_at
		FROM list_restaurants
		WHERE list_id = $1
		ORDER BY position ASC
	`

	rows, err := r.db.Query(ctx, query, listID)
	if err != nil {
		r.log.Error("Failed to find list entries",
			zap.Error(err),
			zap.String("list_id", listID.String()),
		)
		return nil, fmt.Errorf("find entries of list %s: %w", listID.String(), err)
	}
	defer rows.Close()

	var entries []*entity.ListRestaurant
	for rows.Next() {
		var entry entity.ListRestaurant
		err := rows.Scan(
			&entry.ID,
			&entry.ListID,
			&entry.RestaurantID,
			&entry.Position,
			&entry.Note,
			&entry.AddedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan list entry row", zap.Error(err))
			return nil, fmt.Errorf("scan list entry row: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *listRestaurantRepository) FindEntry(ctx context.Context, listID, restaurantID uuid.UUID) (*entity.ListRestaurant, error) {
	query := `
		SELECT id, list_id, restaurant_id, position, note, added_at
		FROM list_restaurants
		WHERE list_id = $1 AND restaurant_id = $2
	`

	var entry entity.ListRestaurant
	err := r.db.QueryRow(ctx, query, listID, restaurantID).Scan(
		&entry.ID,
		&entry.ListID,
		&entry.RestaurantID,
		&entry.Position,
		&entry.Note,
		&entry.AddedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find list entry",
			zap.Error(err),
			zap.String("list_id", listID.String()),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return nil, fmt.Errorf("find entry %s in list %s: %w",
			restaurantID.String(), listID.String(), err)
	}

	return &entry, nil
}

func (r *listRestaurantRepository) MaxPosition(ctx context.Context, listID uuid.UUID) (int, error) {
	query := `SELECT COALESCE(MAX(position), 0) FROM list_restaurants WHERE list_id = $1`

	var max int
	if err := r.db.QueryRow(ctx, query, listID).Scan(&max); err != nil {
		r.log.Error("Failed to get max position",
			zap.Error(err),
			zap.String("list_id", listID.String()),
		)
		return 0, fmt.Errorf("max position of list %s: %w", listID.String(), err)
	}

	return max, nil
}

func (r *listRestaurantRepository) UpdateNote(ctx context.Context, listID, restaurantID uuid.UUID, note *string) error {
	query := `
		UPDATE list_restaurants
		SET note = $3
		WHERE list_id = $1 AND restaurant_id = $2
	`

	result, err := r.db.Exec(ctx, query, listID, restaurantID, note)
	if err != nil {
		r.log.Error("Failed to update entry note",
			zap.Error(err),
			zap.String("list_id", listID.String()),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return fmt.Errorf("update note in list %s: %w", listID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s not in list %s", restaurantID.String(), listID.String())
	}

	return nil
}

func (r *listRestaurantRepository) Remove(ctx context.Context, listID, restaurantID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin remove tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var position int
	err = tx.QueryRow(ctx,
		`DELETE FROM list_restaurants WHERE list_id = $1 AND restaurant_id = $2 RETURNING position`,
		listID, restaurantID,
	).Scan(&position)

	if err == pgx.ErrNoRows {
		return fmt.Errorf("restaurant %s not in list %s", restaurantID.String(), listID.String())
	}
	if err != nil {
		r.log.Error("Failed to remove list entry",
			zap.Error(err),
			zap.String("list_id", listID.String()),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return fmt.Errorf("remove restaurant %s from list %s: %w",
			restaurantID.String(), listID.String(), err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE list_restaurants SET position = position - 1 WHERE list_id = $1 AND position > $2`,
		listID, position,
	)
	if err != nil {
		return fmt.Errorf("shift positions in list %s: %w", listID.String(), err)
	}

	return tx.Commit(ctx)
}

func (r *listRestaurantRepository) Reorder(ctx context.Context, listID, restaurantID uuid.UUID, target int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reorder tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var current int
	err = tx.QueryRow(ctx,
		`SELECT position FROM list_restaurants WHERE list_id = $1 AND restaurant_id = $2 FOR UPDATE`,
		listID, restaurantID,
	).Scan(&current)

	if err == pgx.ErrNoRows {
		return fmt.Errorf("restaurant %s not in list %s", restaurantID.String(), listID.String())
	}
	if err != nil {
		return fmt.Errorf("lock entry in list %s: %w", listID.String(), err)
	}

	if current == target {
		return tx.Commit(ctx)
	}

	if current < target {
		_, err = tx.Exec(ctx,
			`UPDATE list_restaurants SET position = position - 1
			 WHERE list_id = $1 AND position > $2 AND position <= $3`,
			listID, current, target,
		)
	} else {
		_, err = tx.Exec(ctx,
			`UPDATE list_restaurants SET position = position + 1
			 WHERE list_id = $1 AND position >= $3 AND position < $2`,
			listID, current, target,
		)
	}
	if err != nil {
		return fmt.Errorf("shift positions in list %s: %w", listID.String(), err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE list_restaurants SET position = $3 WHERE list_id = $1 AND restaurant_id = $2`,
		listID, restaurantID, target,
	)
	if err != nil {
		return fmt.Errorf("move entry in list %s: %w", listID.String(), err)
	}

	return tx.Commit(ctx)
}
