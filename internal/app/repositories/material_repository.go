package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/db"
)

// MaterialRepository handles database operations for lecture materials
type MaterialRepository struct {
	db *db.PostgresDB
}

// NewMaterialRepository creates a new MaterialRepository
func NewMaterialRepository(database *db.PostgresDB) *MaterialRepository {
	return &MaterialRepository{db: database}
}

// Create inserts a new material
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	sql, args, err := psql.Insert("materials").
		Columns("id", "class_id", "title", "file_url", "uploaded_by", "created_at").
		Values(material.ID, material.ClassID, material.Title, material.FileURL, material.UploadedBy, material.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building create material SQL: %w", err)
	}

	if _, err := r.db.Conn(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error creating material: %w", err)
	}
	return nil
}

// ListDetailsByClassIDs returns materials of the given classes joined with the
// class and uploader names, newest first. Names are empty when the join misses.
func (r *MaterialRepository) ListDetailsByClassIDs(ctx context.Context, classIDs []string) ([]*models.MaterialDetails, error) {
	if len(classIDs) == 0 {
		return []*models.MaterialDetails{}, nil
	}

	sql, args, err := materialDetailsQuery(classIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building list materials SQL: %w", err)
	}

	rows, err := r.db.Conn(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing materials: %w", err)
	}
	defer rows.Close()

	materials := []*models.MaterialDetails{}
	for rows.Next() {
		var m models.MaterialDetails
		if err := rows.Scan(
			&m.ID, &m.ClassID, &m.Title, &m.FileURL, &m.UploadedBy, &m.CreatedAt,
			&m.ClassName, &m.UploaderName,
		); err != nil {
			return nil, fmt.Errorf("error scanning material: %w", err)
		}
		materials = append(materials, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating materials: %w", err)
	}

	return materials, nil
}

func materialDetailsQuery(classIDs []string) squirrel.SelectBuilder {
	return psql.Select(
		"m.id", "m.class_id", "m.title", "m.file_url", "m.uploaded_by", "m.created_at",
		"COALESCE(c.name, '')", "COALESCE(u.name, '')",
	).
		From("materials m").
		LeftJoin("classes c ON c.id = m.class_id").
		LeftJoin("users u ON u.id = m.uploaded_by").
		Where(squirrel.Eq{"m.class_id": classIDs}).
		OrderBy("m.created_at DESC")
}
