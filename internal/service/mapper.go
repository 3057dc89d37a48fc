package service

import (
	"delivery-market-api/internal/entity"
)

func mapUser(u *entity.User) *entity.UserOutputModel {
	return &entity.UserOutputModel{
		Id:       u.Id.String(),
		Username: u.Username,
		Email:    u.Email,
	}
}

func mapOffer(o *entity.DeliveryOffer) *entity.OfferOutputModel {
	return &entity.OfferOutputModel{
		Id:             o.Id.String(),
		Name:           o.Name,
		Description:    o.Description,
		Wage:           o.Wage,
		Distance:       o.Distance,
		OwnerName:      o.OwnerName,
		ContractorName: o.ContractorName,
		IsActive:       o.IsActive,
		FinalBid:       o.FinalBid,
		CreatedAt:      o.CreatedAt,
		DeliveryInfo: entity.DeliveryInfoOutputModel{
			CityFrom:         o.DeliveryInfo.CityFrom,
			CityTo:           o.DeliveryInfo.CityTo,
			StreetFrom:       o.DeliveryInfo.StreetFrom,
			StreetTo:         o.DeliveryInfo.StreetTo,
			StreetFromNumber: o.DeliveryInfo.StreetFromNumber,
			StreetToNumber:   o.DeliveryInfo.StreetToNumber,
			Extras:           o.DeliveryInfo.Extras,
		},
	}
}

func mapOffers(offers []entity.DeliveryOffer) []entity.OfferOutputModel {
	s := make([]entity.OfferOutputModel, 0)
	for _, offer := range offers {
		s = append(s, *mapOffer(&offer))
	}

	return s
}

func mapBid(b *entity.UserBid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:        b.Id.String(),
		OwnerName: b.OwnerName,
		Value:     b.Value,
		CreatedAt: b.CreatedAt,
	}
}

func mapBids(bids []entity.UserBid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, bid := range bids {
		s = append(s, *mapBid(&bid))
	}

	return s
}

func mapNotification(n *entity.Notification) *entity.NotificationOutputModel {
	return &entity.NotificationOutputModel{
		Id:        n.Id.String(),
		OfferId:   n.OfferId.String(),
		Title:     n.Title,
		CreatedAt: n.CreatedAt,
	}
}

func mapNotifications(notifications []entity.Notification) []entity.NotificationOutputModel {
	s := make([]entity.NotificationOutputModel, 0)
	for _, notification := range notifications {
		s = append(s, *mapNotification(&notification))
	}

	return s
}

func mapMessage(m *entity.Message) *entity.MessageOutputModel {
	return &entity.MessageOutputModel{
		Id:        m.Id.String(),
		FromName:  m.FromName,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func mapMessages(messages []entity.Message) []entity.MessageOutputModel {
	s := make([]entity.MessageOutputModel, 0)
	for _, message := range messages {
		s = append(s, *mapMessage(&message))
	}

	return s
}
