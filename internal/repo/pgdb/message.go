package pgdb

import (
	"context"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo/repo_errors"
	"delivery-market-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type MessageRepo struct {
	*postgres.Postgres
}

func NewMessageRepo(pgdb *postgres.Postgres) *MessageRepo {
	return &MessageRepo{pgdb}
}

func (r *MessageRepo) CreateMessage(ctx context.Context, message *entity.Message) (uuid.UUID, error) {
	createSql, args, _ := r.SqlBuilder.
		Insert("messages").
		Columns("delivery_offer_id", "message_from", "message_to", "content").
		Values(message.OfferId, message.FromId, message.ToId, message.Content).
		Suffix("RETURNING id").
		ToSql()

	var messageId uuid.UUID
	if err := r.Database.QueryRow(createSql, args...).Scan(&messageId); err != nil {
		return uuid.Nil, err
	}

	return messageId, nil
}

func (r *MessageRepo) GetOfferMessages(ctx context.Context, offerId string, pg *entity.PaginationInput) ([]entity.Message, error) {
	uuidForm, err := uuid.Parse(offerId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select("m.id, m.delivery_offer_id, m.message_from, u.username, m.message_to, m.content, m.created_at").
		From("messages m").
		InnerJoin("users u on m.message_from = u.id").
		Where("m.delivery_offer_id = ?", uuidForm).
		OrderBy("m.created_at ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]entity.Message, 0)
	for rows.Next() {
		var message entity.Message
		var createdAt time.Time
		if err := rows.Scan(&message.Id, &message.OfferId, &message.FromId, &message.FromName,
			&message.ToId, &message.Content, &createdAt); err != nil {
			return messages, err
		}
		message.CreatedAt = createdAt.Format(time.RFC3339)
		messages = append(messages, message)
	}
	if err = rows.Err(); err != nil {
		return messages, err
	}

	return messages, nil
}
