package pgdb

import (
	"context"
	"database/sql"
	"delivery-market-api/internal/common"
	"delivery-market-api/internal/entity"
	"delivery-market-api/internal/repo/repo_errors"
	"delivery-market-api/pkg/postgres"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type OfferRepo struct {
	*postgres.Postgres
}

func NewOfferRepo(pgdb *postgres.Postgres) *OfferRepo {
	return &OfferRepo{pgdb}
}

const offerColumns = "d.id, d.name, d.description, d.wage, d.distance, d.owner_id, ow.username, " +
	"d.contractor_id, ct.username, d.is_active, d.final_bid, d.created_at, " +
	"di.id, di.city_from, di.city_to, di.street_from, di.street_to, di.street_from_number, di.street_to_number, di.extras"

func (r *OfferRepo) offerSelect() squirrel.SelectBuilder {
	return r.SqlBuilder.
		Select(offerColumns).
		From("delivery_offers d").
		InnerJoin("users ow on d.owner_id = ow.id").
		LeftJoin("users ct on d.contractor_id = ct.id").
		InnerJoin("delivery_info di on d.delivery_info_id = di.id")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(row rowScanner) (*entity.DeliveryOffer, error) {
	var offer entity.DeliveryOffer
	var contractorName sql.NullString
	var createdAt time.Time
	err := row.Scan(&offer.Id, &offer.Name, &offer.Description, &offer.Wage, &offer.Distance,
		&offer.OwnerId, &offer.OwnerName, &offer.ContractorId, &contractorName,
		&offer.IsActive, &offer.FinalBid, &createdAt,
		&offer.DeliveryInfo.Id, &offer.DeliveryInfo.CityFrom, &offer.DeliveryInfo.CityTo,
		&offer.DeliveryInfo.StreetFrom, &offer.DeliveryInfo.StreetTo,
		&offer.DeliveryInfo.StreetFromNumber, &offer.DeliveryInfo.StreetToNumber,
		&offer.DeliveryInfo.Extras)
	if err != nil {
		return nil, err
	}
	offer.ContractorName = contractorName.String
	offer.CreatedAt = createdAt.Format(time.RFC3339)

	return &offer, nil
}

// CreateOffer inserts the delivery info first, then the offer pointing at it,
// both in one transaction.
func (r *OfferRepo) CreateOffer(ctx context.Context, offer *entity.DeliveryOffer) (uuid.UUID, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	info := offer.DeliveryInfo
	createInfoSql, args, _ := r.SqlBuilder.
		Insert("delivery_info").
		Columns("city_from", "city_to", "street_from", "street_to", "street_from_number", "street_to_number", "extras").
		Values(info.CityFrom, info.CityTo, info.StreetFrom, info.StreetTo, info.StreetFromNumber, info.StreetToNumber, info.Extras).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var infoId uuid.UUID
	err = tx.QueryRow(createInfoSql, args...).Scan(&infoId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	createOfferSql, args, _ := r.SqlBuilder.
		Insert("delivery_offers").
		Columns("name", "description", "wage", "distance", "owner_id", "delivery_info_id", "is_active", "final_bid").
		Values(offer.Name, offer.Description, offer.Wage, offer.Distance, offer.OwnerId, infoId, common.OfferOpen, 0).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var offerId uuid.UUID
	err = tx.QueryRow(createOfferSql, args...).Scan(&offerId)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return offerId, nil
}

func (r *OfferRepo) GetOfferById(ctx context.Context, id string) (*entity.DeliveryOffer, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	getOfferSql, args, _ := r.offerSelect().
		Where("d.id = ?", uuidForm).
		ToSql()

	offer, err := scanOffer(r.Database.QueryRow(getOfferSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return offer, nil
}

func (r *OfferRepo) SearchOffers(ctx context.Context, query string, pg *entity.PaginationInput) ([]entity.DeliveryOffer, error) {
	builder := r.offerSelect()

	if query != "" {
		pattern := "%" + query + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"d.name": pattern},
			squirrel.ILike{"ow.username": pattern},
			squirrel.ILike{"di.city_from": pattern},
			squirrel.ILike{"di.city_to": pattern},
		})
	}

	sqlReq, args, _ := builder.
		OrderBy("d.created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryOffers(sqlReq, args)
}

func (r *OfferRepo) GetOffersByOwnerId(ctx context.Context, ownerId uuid.UUID, pg *entity.PaginationInput) ([]entity.DeliveryOffer, error) {
	sqlReq, args, _ := r.offerSelect().
		Where("d.owner_id = ?", ownerId).
		OrderBy("d.created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryOffers(sqlReq, args)
}

func (r *OfferRepo) queryOffers(sqlReq string, args []any) ([]entity.DeliveryOffer, error) {
	rows, err := r.Database.Query(sqlReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]entity.DeliveryOffer, 0)
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return offers, err
		}
		offers = append(offers, *offer)
	}
	if err = rows.Err(); err != nil {
		return offers, err
	}

	return offers, nil
}

func (r *OfferRepo) UpdateOfferById(ctx context.Context, id string, update *entity.OfferUpdate) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	offerBuilder := r.SqlBuilder.Update("delivery_offers")
	offerChanged := false
	if update.Name != nil {
		offerBuilder, offerChanged = offerBuilder.Set("name", *update.Name), true
	}
	if update.Description != nil {
		offerBuilder, offerChanged = offerBuilder.Set("description", *update.Description), true
	}
	if update.Wage != nil {
		offerBuilder, offerChanged = offerBuilder.Set("wage", *update.Wage), true
	}
	if update.Distance != nil {
		offerBuilder, offerChanged = offerBuilder.Set("distance", *update.Distance), true
	}

	if offerChanged {
		updateOfferSql, args, _ := offerBuilder.
			Where("id = ?", uuidForm).
			RunWith(tx).
			ToSql()
		if _, err = tx.Exec(updateOfferSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return e
			}

			return err
		}
	}

	infoBuilder := r.SqlBuilder.Update("delivery_info")
	infoChanged := false
	if update.CityFrom != nil {
		infoBuilder, infoChanged = infoBuilder.Set("city_from", *update.CityFrom), true
	}
	if update.CityTo != nil {
		infoBuilder, infoChanged = infoBuilder.Set("city_to", *update.CityTo), true
	}
	if update.StreetFrom != nil {
		infoBuilder, infoChanged = infoBuilder.Set("street_from", *update.StreetFrom), true
	}
	if update.StreetTo != nil {
		infoBuilder, infoChanged = infoBuilder.Set("street_to", *update.StreetTo), true
	}
	if update.StreetFromNumber != nil {
		infoBuilder, infoChanged = infoBuilder.Set("street_from_number", *update.StreetFromNumber), true
	}
	if update.StreetToNumber != nil {
		infoBuilder, infoChanged = infoBuilder.Set("street_to_number", *update.StreetToNumber), true
	}
	if update.Extras != nil {
		infoBuilder, infoChanged = infoBuilder.Set("extras", *update.Extras), true
	}

	if infoChanged {
		getInfoIdSql, args, _ := r.SqlBuilder.
			Select("delivery_info_id").
			From("delivery_offers").
			Where("id = ?", uuidForm).
			RunWith(tx).
			ToSql()

		var infoId uuid.UUID
		if err = tx.QueryRow(getInfoIdSql, args...).Scan(&infoId); err != nil {
			if e := tx.Rollback(); e != nil {
				return e
			}
			if errors.Is(err, sql.ErrNoRows) {
				return repo_errors.ErrNotFound
			}

			return err
		}

		updateInfoSql, args, _ := infoBuilder.
			Where("id = ?", infoId).
			RunWith(tx).
			ToSql()
		if _, err = tx.Exec(updateInfoSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return e
			}

			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}

// DeleteOfferById removes the offer and its delivery info together.
func (r *OfferRepo) DeleteOfferById(ctx context.Context, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	getInfoIdSql, args, _ := r.SqlBuilder.
		Select("delivery_info_id").
		From("delivery_offers").
		Where("id = ?", uuidForm).
		RunWith(tx).
		ToSql()

	var infoId uuid.UUID
	if err = tx.QueryRow(getInfoIdSql, args...).Scan(&infoId); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}
		if errors.Is(err, sql.ErrNoRows) {
			return repo_errors.ErrNotFound
		}

		return err
	}

	deleteOfferSql, args, _ := r.SqlBuilder.
		Delete("delivery_offers").
		Where("id = ?", uuidForm).
		RunWith(tx).
		ToSql()

	if _, err = tx.Exec(deleteOfferSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	deleteInfoSql, args, _ := r.SqlBuilder.
		Delete("delivery_info").
		Where("id = ?", infoId).
		RunWith(tx).
		ToSql()

	if _, err = tx.Exec(deleteInfoSql, args...); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}

// CloseOffer applies the acceptance transition with a compare-and-set on the
// active flag, so of two concurrent acceptances only one can land.
func (r *OfferRepo) CloseOffer(ctx context.Context, id string, contractorId uuid.UUID, finalBid float64) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	closeOfferSql, args, _ := r.SqlBuilder.
		Update("delivery_offers").
		Set("contractor_id", contractorId).
		Set("final_bid", finalBid).
		Set("is_active", common.OfferClosed).
		Where("id = ?", uuidForm).
		Where("is_active = ?", common.OfferOpen).
		ToSql()

	result, err := r.Database.Exec(closeOfferSql, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrAlreadyClosed
	}

	return nil
}
