package postgres

import (
	"context"
	"encoding/json"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type generationRecordRepo struct {
	db *pgxpool.Pool
}

func newGenerationRecordRepo(db *pgxpool.Pool) GenerationRecord {
	return &generationRecordRepo{db: db}
}

func (r *generationRecordRepo) Create(ctx context.Context, rec *model.GenerationRecord) error {
	userInfoJSON, err := json.Marshal(rec.UserInfo)
	if err != nil {
		return err
	}

	imagesJSON, err := json.Marshal(rec.GeneratedImages)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO generation_records(id, generation_name, size_id, width, height, prompt_text, workspace_id, user_id, user_info, generated_images, is_public, generation_cost, status, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		rec.ID, rec.GenerationName, rec.SizeID, rec.Width, rec.Height, rec.PromptText, rec.WorkspaceID, rec.UserID, userInfoJSON, imagesJSON, rec.IsPublic, rec.GenerationCost, rec.Status, rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}

func (r *generationRecordRepo) Finalize(ctx context.Context, id string, images []model.GeneratedImage, cost int) error {
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(
		ctx,
		"UPDATE generation_records SET generated_images = $1, generation_cost = $2, status = $3, updated_at = now() WHERE id = $4",
		imagesJSON, cost, model.GenerationStatusCompleted, id,
	)
	return err
}

func (r *generationRecordRepo) MarkFailed(ctx context.Context, id string) error {
	_, err := r.db.Exec(
		ctx,
		"UPDATE generation_records SET status = $1, updated_at = now() WHERE id = $2",
		model.GenerationStatusFailed, id,
	)
	return err
}

func (r *generationRecordRepo) FindCompletedByWorkspace(ctx context.Context, workspaceID string, limit, offset int) ([]*model.GenerationRecord, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, generation_name, size_id, width, height, prompt_text, workspace_id, user_id, user_info, generated_images, is_public, generation_cost, status, created_at, updated_at
		FROM generation_records
		WHERE workspace_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`,
		workspaceID, model.GenerationStatusCompleted, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*model.GenerationRecord
	for rows.Next() {
		rec := new(model.GenerationRecord)
		var userInfoJSON, imagesJSON []byte
		if err := rows.Scan(&rec.ID, &rec.GenerationName, &rec.SizeID, &rec.Width, &rec.Height, &rec.PromptText, &rec.WorkspaceID, &rec.UserID, &userInfoJSON, &imagesJSON, &rec.IsPublic, &rec.GenerationCost, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(userInfoJSON, &rec.UserInfo); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(imagesJSON, &rec.GeneratedImages); err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *generationRecordRepo) CountCompletedByWorkspace(ctx context.Context, workspaceID string) (int, error) {
	var count int
	if err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM generation_records WHERE workspace_id = $1 AND status = $2",
		workspaceID, model.GenerationStatusCompleted,
	).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
