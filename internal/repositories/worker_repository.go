package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/taskhands/worker-service/internal/models"
	"github.com/taskhands/worker-service/internal/utils"
)

// WorkerRepository is the credential store adapter. Lookups return
// (nil, nil) when no row matches.
type WorkerRepository interface {
	Create(ctx context.Context, w *models.Worker) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Worker, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// UpdateRefreshToken rotates the stored refresh token without
	// touching any other field. Last write wins: concurrent logins for
	// the same account each overwrite the other's token, leaving at
	// most one valid session.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string, expiresAt *time.Time) error

	// AppendGalleryURLs appends urls in order to the worker's gallery
	// and returns the updated record.
	AppendGalleryURLs(ctx context.Context, id uuid.UUID, urls []string) (*models.Worker, error)

	ClearExpiredRefreshTokens(ctx context.Context) error
}

type workerRepo struct {
	db DB
}

func NewWorkerRepository(db DB) WorkerRepository {
	return &workerRepo{db: db}
}

func baseSelectWorker() string {
	return `
        SELECT id, username, email, password_hash,
               refresh_token, refresh_token_expires_at,
               profile_image_url, gallery_urls,
               name, phone_no, address, description,
               working_hours, language, services, experience,
               created_at, updated_at
        FROM workers`
}

func (r *workerRepo) scanWorker(row pgx.Row) (*models.Worker, error) {
	var w models.Worker
	err := row.Scan(
		&w.ID, &w.Username, &w.Email, &w.PasswordHash,
		&w.RefreshToken, &w.RefreshTokenExpiresAt,
		&w.ProfileImageURL, &w.GalleryURLs,
		&w.Name, &w.PhoneNo, &w.Address, &w.Description,
		&w.WorkingHours, &w.Language, &w.Services, &w.Experience,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if w.GalleryURLs == nil {
		w.GalleryURLs = []string{}
	}
	return &w, nil
}

func (r *workerRepo) Create(ctx context.Context, w *models.Worker) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO workers (
            id, username, email, password_hash,
            profile_image_url, gallery_urls,
            name, phone_no, address, description,
            working_hours, language, services, experience
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6,
            $7, $8, $9, $10,
            $11, $12, $13, $14
        )
    `,
		w.ID, w.Username, w.Email, w.PasswordHash,
		w.ProfileImageURL, w.GalleryURLs,
		w.Name, w.PhoneNo, w.Address, w.Description,
		w.WorkingHours, w.Language, w.Services, w.Experience,
	)
	return err
}

func (r *workerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Worker, error) {
	row := r.db.QueryRow(ctx, baseSelectWorker()+" WHERE id=$1", id)
	return r.scanWorker(row)
}

// GetByUsernameOrEmail matches the identifier against the lowercased
// username or the email, the same lookup login uses.
func (r *workerRepo) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.Worker, error) {
	row := r.db.QueryRow(ctx,
		baseSelectWorker()+" WHERE username=lower($1) OR email=$1 LIMIT 1",
		identifier,
	)
	return r.scanWorker(row)
}

func (r *workerRepo) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM workers WHERE username=lower($1) OR email=$2
        )
    `, username, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *workerRepo) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string, expiresAt *time.Time) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE workers
        SET refresh_token=$2, refresh_token_expires_at=$3, updated_at=now()
        WHERE id=$1
    `, id, token, expiresAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrWorkerNotFound
	}
	return nil
}

func (r *workerRepo) AppendGalleryURLs(ctx context.Context, id uuid.UUID, urls []string) (*models.Worker, error) {
	row := r.db.QueryRow(ctx, `
        UPDATE workers
        SET gallery_urls = gallery_urls || $2, updated_at=now()
        WHERE id=$1
        RETURNING id, username, email, password_hash,
                  refresh_token, refresh_token_expires_at,
                  profile_image_url, gallery_urls,
                  name, phone_no, address, description,
                  working_hours, language, services, experience,
                  created_at, updated_at
    `, id, urls)
	return r.scanWorker(row)
}

func (r *workerRepo) ClearExpiredRefreshTokens(ctx context.Context) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE workers
        SET refresh_token='', refresh_token_expires_at=NULL, updated_at=now()
        WHERE refresh_token <> '' AND refresh_token_expires_at < now()
    `)
	if err != nil {
		return err
	}
	if n := tag.RowsAffected(); n > 0 {
		utils.Logger.Infof("Cleared %d expired refresh tokens", n)
	}
	return nil
}
