package pgdb

import (
	"context"
	"database/sql"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo/repo_errors"
	"delivery-market-api/pkg/postgres"
	"errors"
	"time"

	"github.com/google/uuid"
)

type NotificationRepo struct {
	*postgres.Postgres
}

func NewNotificationRepo(pgdb *postgres.Postgres) *NotificationRepo {
	return &NotificationRepo{pgdb}
}

func (r *NotificationRepo) CreateNotification(ctx context.Context, event entity.NotificationEvent) (uuid.UUID, error) {
	createSql, args, _ := r.SqlBuilder.
		Insert("notifications").
		Columns("user_id", "delivery_offer_id", "title").
		Values(event.UserId, event.OfferId, event.Title).
		Suffix("RETURNING id").
		ToSql()

	var notificationId uuid.UUID
	if err := r.Database.QueryRow(createSql, args...).Scan(&notificationId); err != nil {
		return uuid.Nil, err
	}

	return notificationId, nil
}

func (r *NotificationRepo) GetNotificationById(ctx context.Context, id string) (*entity.Notification, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id", "user_id", "delivery_offer_id", "title", "created_at").
		From("notifications").
		Where("id = ?", uuidForm).
		ToSql()

	var notification entity.Notification
	var createdAt time.Time
	row := r.Database.QueryRow(getSql, args...)
	err = row.Scan(&notification.Id, &notification.UserId, &notification.OfferId, &notification.Title, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	notification.CreatedAt = createdAt.Format(time.RFC3339)

	return &notification, nil
}

func (r *NotificationRepo) GetUserNotifications(ctx context.Context, userId uuid.UUID, pg *entity.PaginationInput) ([]entity.Notification, error) {
	sqlReq, args, _ := r.SqlBuilder.
		Select("id", "user_id", "delivery_offer_id", "title", "created_at").
		From("notifications").
		Where("user_id = ?", userId).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]entity.Notification, 0)
	for rows.Next() {
		var notification entity.Notification
		var createdAt time.Time
		if err := rows.Scan(&notification.Id, &notification.UserId, &notification.OfferId, &notification.Title, &createdAt); err != nil {
			return notifications, err
		}
		notification.CreatedAt = createdAt.Format(time.RFC3339)
		notifications = append(notifications, notification)
	}
	if err = rows.Err(); err != nil {
		return notifications, err
	}

	return notifications, nil
}

func (r *NotificationRepo) DeleteNotificationById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	deleteSql, args, _ := r.SqlBuilder.
		Delete("notifications").
		Where("id = ?", uuidForm).
		ToSql()

	if _, err := r.Database.Exec(deleteSql, args...); err != nil {
		return err
	}

	return nil
}
