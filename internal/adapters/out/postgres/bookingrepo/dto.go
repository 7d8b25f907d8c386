// Package bookingrepo provides data transfer objects and mapping functions
// for booking persistence. It implements the repository pattern for the
// booking aggregate, handling the conversion between domain entities and
// database representations.
package bookingrepo

import (
	"encoding/json"
	"time"

	"freight/internal/core/domain/model/booking"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BookingDTO represents the database structure for persisting booking
// aggregates. The article lines and the POD block are stored as JSONB
// documents; they are read and written whole with the aggregate and never
// queried by field.
type BookingDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	LRNumber           string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Origin             string    `gorm:"type:varchar(8);not null;index"`
	Destination        string    `gorm:"type:varchar(8);not null;index"`
	Consignor          PartyDTO  `gorm:"embedded;embeddedPrefix:consignor_"`
	Consignee          PartyDTO  `gorm:"embedded;embeddedPrefix:consignee_"`
	DestinationAddress string    `gorm:"type:varchar(512);not null"`
	Articles           datatypes.JSON
	PaymentMode        string     `gorm:"type:varchar(16);not null"`
	TotalPackages      int        `gorm:"type:int;not null"`
	TotalAmount        float64    `gorm:"not null"`
	Status             string     `gorm:"type:varchar(16);not null;index"`
	POD                datatypes.JSON
	UnloadingStatus    string     `gorm:"type:varchar(16);not null"`
	ManifestID         *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt          time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for booking entities.
func (BookingDTO) TableName() string {
	return "bookings"
}

// PartyDTO represents the embedded consignor or consignee snapshot within
// the booking table.
type PartyDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Mobile  string `gorm:"type:varchar(16);not null"`
	Address string `gorm:"type:varchar(512)"`
}

type articleLineDTO struct {
	Description string  `json:"description"`
	Packages    int     `json:"packages"`
	WeightKg    float64 `json:"weight_kg"`
	Amount      float64 `json:"amount"`
}

type podDTO struct {
	Status           string    `json:"status"`
	ConditionKind    string    `json:"condition_kind"`
	ConditionRemarks string    `json:"condition_remarks,omitempty"`
	PhotoRef         string    `json:"photo_ref,omitempty"`
	ReceivedAt       time.Time `json:"received_at"`
}

// fromDomain converts a booking domain aggregate to its database
// representation, serializing the article lines and POD block to JSON.
func fromDomain(aggregate *booking.Booking) (BookingDTO, error) {
	articles := make([]articleLineDTO, 0, len(aggregate.Articles()))
	for _, a := range aggregate.Articles() {
		articles = append(articles, articleLineDTO{
			Description: a.Description(),
			Packages:    a.Packages(),
			WeightKg:    a.WeightKg(),
			Amount:      a.Amount(),
		})
	}
	articlesJSON, err := json.Marshal(articles)
	if err != nil {
		return BookingDTO{}, err
	}

	var podJSON datatypes.JSON
	if pod := aggregate.ProofOfDelivery(); pod != nil {
		raw, podErr := json.Marshal(podDTO{
			Status:           pod.Status().String(),
			ConditionKind:    pod.Condition().Kind().String(),
			ConditionRemarks: pod.Condition().Remarks(),
			PhotoRef:         pod.PhotoRef(),
			ReceivedAt:       pod.ReceivedAt(),
		})
		if podErr != nil {
			return BookingDTO{}, podErr
		}
		podJSON = raw
	}

	var manifestID *uuid.UUID
	if id := aggregate.ManifestID(); id != nil {
		raw := id.Bytes()
		manifestID = &raw
	}

	return BookingDTO{
		ID:          aggregate.ID().Bytes(),
		LRNumber:    aggregate.LRNumber().String(),
		CustomerID:  aggregate.CustomerID().Bytes(),
		Origin:      aggregate.Origin().String(),
		Destination: aggregate.Destination().String(),
		Consignor: PartyDTO{
			Name:    aggregate.Consignor().Name(),
			Mobile:  aggregate.Consignor().Mobile(),
			Address: aggregate.Consignor().Address(),
		},
		Consignee: PartyDTO{
			Name:    aggregate.Consignee().Name(),
			Mobile:  aggregate.Consignee().Mobile(),
			Address: aggregate.Consignee().Address(),
		},
		DestinationAddress: aggregate.DestinationAddress(),
		Articles:           articlesJSON,
		PaymentMode:        aggregate.PaymentMode().String(),
		TotalPackages:      aggregate.TotalPackages(),
		TotalAmount:        aggregate.TotalAmount(),
		Status:             aggregate.Status().String(),
		POD:                podJSON,
		UnloadingStatus:    aggregate.UnloadingStatus().String(),
		ManifestID:         manifestID,
		CreatedAt:          aggregate.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to a booking domain aggregate using
// RestoreBooking.
func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lrNumber, err := booking.ParseLRNumber(dto.LRNumber)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewBranchCode(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewBranchCode(dto.Destination)
	if err != nil {
		return nil, err
	}

	consignor, err := booking.NewParty(dto.Consignor.Name, dto.Consignor.Mobile, dto.Consignor.Address)
	if err != nil {
		return nil, err
	}

	consignee, err := booking.NewParty(dto.Consignee.Name, dto.Consignee.Mobile, dto.Consignee.Address)
	if err != nil {
		return nil, err
	}

	var articleDTOs []articleLineDTO
	if err = json.Unmarshal(dto.Articles, &articleDTOs); err != nil {
		return nil, err
	}
	articles := make([]booking.ArticleLine, 0, len(articleDTOs))
	for _, a := range articleDTOs {
		line, lineErr := booking.NewArticleLine(a.Description, a.Packages, a.WeightKg, a.Amount)
		if lineErr != nil {
			return nil, lineErr
		}
		articles = append(articles, line)
	}

	paymentMode, err := booking.PaymentModeFromString(dto.PaymentMode)
	if err != nil {
		return nil, err
	}

	status, err := booking.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pod, err := podToDomain(dto.POD)
	if err != nil {
		return nil, err
	}

	var manifestID *kernel.UUID
	if dto.ManifestID != nil {
		mID, mErr := kernel.UUIDFromBytes((*dto.ManifestID)[:])
		if mErr != nil {
			return nil, mErr
		}
		manifestID = &mID
	}

	unloadingStatus := booking.UnloadingNone
	if dto.UnloadingStatus == booking.UnloadingMissing.String() {
		unloadingStatus = booking.UnloadingMissing
	}

	return booking.RestoreBooking(
		id, lrNumber, customerID,
		origin, destination,
		consignor, consignee,
		dto.DestinationAddress,
		articles, paymentMode, dto.TotalAmount,
		status, pod, unloadingStatus, manifestID,
		dto.CreatedAt,
	)
}

func podToDomain(raw datatypes.JSON) (*booking.ProofOfDelivery, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var dto podDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, err
	}

	status, err := booking.PODStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	condition, err := conditionToDomain(dto.ConditionKind, dto.ConditionRemarks)
	if err != nil {
		return nil, err
	}

	pod, err := booking.RestoreProofOfDelivery(status, condition, dto.PhotoRef, dto.ReceivedAt)
	if err != nil {
		return nil, err
	}
	return &pod, nil
}

func conditionToDomain(kind, remarks string) (booking.Condition, error) {
	k, err := booking.ConditionKindFromString(kind)
	if err != nil {
		return booking.Condition{}, err
	}

	switch k {
	case booking.ConditionDamaged:
		return booking.NewDamagedCondition(remarks)
	case booking.ConditionMissing:
		return booking.NewMissingCondition(), nil
	default:
		return booking.NewGoodCondition(), nil
	}
}
