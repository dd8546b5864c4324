package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/mentorhub/mentorhub-backend/internal/model"
)

// attachAvatar inserts a new avatar row and points the user record at it.
// It runs on the caller's transaction so a failed profile update rolls the
// avatar back as well. table must be "teachers" or "students".
func attachAvatar(ctx context.Context, tx pgx.Tx, table string, userID int, up *model.AvatarUpload) error {
	var avatarID int
	err := tx.QueryRow(ctx,
		`INSERT INTO avatars (avatar_link, format) VALUES ($1, $2) RETURNING id`,
		up.Link, up.Format,
	).Scan(&avatarID)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx,
		`UPDATE `+table+` SET avatar_id = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		avatarID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
