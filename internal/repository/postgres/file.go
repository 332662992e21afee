package postgres

import (
	"context"
	"fmt"

	"files-manager/internal/domain/file"
	apperrors "files-manager/pkg/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type FileRepository struct {
	db *DB
}

func NewFileRepository(db *DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) CreateFile(ctx context.Context, input file.CreateInput) (*file.File, error) {
	query := `
		INSERT INTO files (user_id, name, type, is_public, parent_id, local_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, type, is_public, parent_id, local_path, created_at
	`

	f := &file.File{}
	err := r.db.Pool.QueryRow(ctx, query, input.UserID, input.Name, input.Type, input.IsPublic, input.ParentID, input.LocalPath).Scan(
		&f.ID, &f.UserID, &f.Name, &f.Type, &f.IsPublic, &f.ParentID, &f.LocalPath, &f.CreatedAt,
	)

	if err != nil {
		return nil, errFailedCreateFile(err)
	}

	return f, nil
}

func (r *FileRepository) FileByID(ctx context.Context, id uuid.UUID) (*file.File, error) {
	query := `
		SELECT id, user_id, name, type, is_public, parent_id, local_path, created_at
		FROM files WHERE id = $1
	`

	f := &file.File{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.UserID, &f.Name, &f.Type, &f.IsPublic, &f.ParentID, &f.LocalPath, &f.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errFileNotFound)
		}
		return nil, errFailedGetFile(err)
	}

	return f, nil
}

// FilesByParent lists an owner's files under one parent, in insertion order.
// Pages are zero-indexed; a page past the end yields an empty slice.
func (r *FileRepository) FilesByParent(ctx context.Context, ownerID uuid.UUID, parentID *uuid.UUID, page, pageSize int) ([]*file.File, error) {
	query := `
		SELECT id, user_id, name, type, is_public, parent_id, local_path, created_at
		FROM files WHERE user_id = $1
	`
	args := []interface{}{ownerID}

	if parentID != nil {
		query += " AND parent_id = $2"
		args = append(args, *parentID)
	} else {
		query += " AND parent_id IS NULL"
	}

	query += fmt.Sprintf(" ORDER BY created_at ASC, id ASC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, pageSize, page*pageSize)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errFailedListFiles(err)
	}
	defer rows.Close()

	var files []*file.File
	for rows.Next() {
		f := &file.File{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.Name, &f.Type, &f.IsPublic, &f.ParentID, &f.LocalPath, &f.CreatedAt); err != nil {
			return nil, errFailedScanFile(err)
		}
		files = append(files, f)
	}

	if err := rows.Err(); err != nil {
		return nil, errFailedIterateFiles(err)
	}

	return files, nil
}

func (r *FileRepository) SetPublic(ctx context.Context, id uuid.UUID, public bool) error {
	query := "UPDATE files SET is_public = $2 WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, id, public)
	if err != nil {
		return errFailedSetPublic(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errFileNotFound)
	}

	return nil
}

func (r *FileRepository) CountFiles(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM files").Scan(&count); err != nil {
		return 0, errFailedCountFiles(err)
	}
	return count, nil
}
