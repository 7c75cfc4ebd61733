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

type ListRepository interface {
	Create(ctx context.Context, list *entity.List) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.List, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.List, error)
	FindWantToTry(ctx context.Context, userID uuid.UUID) (*entity.List, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Update(ctx context.Context, list *entity.List) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type listRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewListRepository(db database.PgxIface, log *zap.Logger) ListRepository {
	return &listRepository{
		db:  db,
		log: log.With(zap.String("repository", "list")),
	}
}

const listColumns = `id, user_id, name, description, is_want_to_try, created_at, updated_at`

func (r *listRepository) Create(ctx context.Context, list *entity.List) error {
	query := `
		INSERT INTO lists (id, user_id, name, description, is_want_to_try,
		                  created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		list.ID,
		list.UserID,
		list.Name,
		list.Description,
		list.IsWantToTry,
		list.CreatedAt,
		list.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create list",
			zap.Error(err),
			zap.String("user_id", list.UserID.String()),
			zap.String("name", list.Name),
		)
		return fmt.Errorf("create list %q for user %s: %w", list.Name, list.UserID.String(), err)
	}

	return nil
}

func (r *listRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.List, error) {
	query := `
		SELECT ` + listColumns + `
		FROM lists
		WHERE id = $1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, id), fmt.Sprintf("find list by ID %s", id.String()))
}

func (r *listRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.List, error) {
	query := `
		SELECT ` + listColumns + `
		FROM lists
		WHERE user_id = $1
		ORDER BY is_want_to_try DESC, created_at ASC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find lists by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find lists by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var lists []*entity.List
	for rows.Next() {
		var list entity.List
		err := rows.Scan(
			&list.ID,
			&list.UserID,
			&list.Name,
			&list.Description,
			&list.IsWantToTry,
			&list.CreatedAt,
			&list.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan list row", zap.Error(err))
			return nil, fmt.Errorf("scan list row: %w", err)
		}
		lists = append(lists, &list)
	}

	return lists, nil
}

func (r *listRepository) FindWantToTry(ctx context.Context, userID uuid.UUID) (*entity.List, error) {
	query := `
		SELECT ` + listColumns + `
		FROM lists
		WHERE user_id = $1 AND is_want_to_try = TRUE
		LIMIT 1
	`

	return r.scanOne(r.db.QueryRow(ctx, query, userID),
		fmt.Sprintf("find want-to-try list for user %s", userID.String()))
}

func (r *listRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM lists WHERE user_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		r.log.Error("Failed to count lists by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count lists by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *listRepository) Update(ctx context.Context, list *entity.List) error {
	query := `
		UPDATE lists
		SET name = $2, description = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		list.ID,
		list.Name,
		list.Description,
	)

	if err != nil {
		r.log.Error("Failed to update list",
			zap.Error(err),
			zap.String("list_id", list.ID.String()),
		)
		return fmt.Errorf("update list %s: %w", list.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("list %s not found", list.ID.String())
	}

	return nil
}

func (r *listRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// list_restaurants and list_likes cascade at the database level
	query := `DELETE FROM lists WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete list",
			zap.Error(err),
			zap.String("list_id", id.String()),
		)
		return fmt.Errorf("delete list %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("list %s not found", id.String())
	}

	r.log.Info("List deleted", zap.String("list_id", id.String()))
	return nil
}

func (r *listRepository) scanOne(row pgx.Row, op string) (*entity.List, error) {
	var list entity.List
	err := row.Scan(
		&list.ID,
		&list.UserID,
		&list.Name,
		&list.Description,
		&list.IsWantToTry,
		&list.CreatedAt,
		&list.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to scan list row", zap.Error(err), zap.String("op", op))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &list, nil
}
