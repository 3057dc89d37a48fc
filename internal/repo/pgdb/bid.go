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

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

func (r *BidRepo) CreateBid(ctx context.Context, bid *entity.UserBid) (uuid.UUID, error) {
	createBidSql, args, _ := r.SqlBuilder.
		Insert("user_bids").
		Columns("owner_id", "delivery_offer_id", "value").
		Values(bid.OwnerId, bid.OfferId, bid.Value).
		Suffix("RETURNING id").
		ToSql()

	var bidId uuid.UUID
	if err := r.Database.QueryRow(createBidSql, args...).Scan(&bidId); err != nil {
		return uuid.Nil, err
	}

	return bidId, nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.UserBid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getBidSql, args, _ := r.SqlBuilder.
		Select("b.id, b.owner_id, u.username, b.delivery_offer_id, b.value, b.created_at").
		From("user_bids b").
		InnerJoin("users u on b.owner_id = u.id").
		Where("b.id = ?", uuidForm).
		ToSql()

	var bid entity.UserBid
	var createdAt time.Time
	row := r.Database.QueryRow(getBidSql, args...)
	err = row.Scan(&bid.Id, &bid.OwnerId, &bid.OwnerName, &bid.OfferId, &bid.Value, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	bid.CreatedAt = createdAt.Format(time.RFC3339)

	return &bid, nil
}

func (r *BidRepo) GetOfferBids(ctx context.Context, offerId string, pg *entity.PaginationInput) ([]entity.UserBid, error) {
	uuidForm, err := uuid.Parse(offerId)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	sqlReq, args, _ := r.SqlBuilder.
		Select("b.id, b.owner_id, u.username, b.delivery_offer_id, b.value, b.created_at").
		From("user_bids b").
		InnerJoin("users u on b.owner_id = u.id").
		Where("b.delivery_offer_id = ?", uuidForm).
		OrderBy("b.created_at ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.UserBid, 0)
	for rows.Next() {
		var bid entity.UserBid
		var createdAt time.Time
		if err := rows.Scan(&bid.Id, &bid.OwnerId, &bid.OwnerName, &bid.OfferId, &bid.Value, &createdAt); err != nil {
			return bids, err
		}
		bid.CreatedAt = createdAt.Format(time.RFC3339)
		bids = append(bids, bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}
