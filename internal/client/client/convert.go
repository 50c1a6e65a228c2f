package client

import (
	"time"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	pb "github.com/dmitrijs2005/hoopaconnect/internal/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timeOrZero maps an unset timestamp to the zero time.
func timeOrZero(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func profileFromPB(p *pb.Profile) *models.Profile {
	return &models.Profile{
		ID:         p.GetId(),
		Email:      p.GetEmail(),
		FullName:   p.GetFullName(),
		Phone:      p.GetPhone(),
		ProfilePic: p.GetProfilePic(),
		UpdatedAt:  timeOrZero(p.GetUpdatedAt()),
	}
}

func messageFromPB(m *pb.Message) *models.ChairmanMessage {
	return &models.ChairmanMessage{
		ID:        m.GetId(),
		Message:   m.GetMessage(),
		CreatedBy: m.GetCreatedBy(),
		CreatedAt: timeOrZero(m.GetCreatedAt()),
	}
}

func vaultFromPB(v *pb.VaultEntry) *models.VaultEntry {
	return &models.VaultEntry{
		UserID:     v.GetUserId(),
		StorageKey: v.GetStorageKey(),
		IDImageURL: v.GetIdImageUrl(),
		UpdatedAt:  timeOrZero(v.GetUpdatedAt()),
	}
}

// itemFromPB maps an unknown category to models.CategoryOther.
func itemFromPB(i *pb.Item) *models.MarketplaceItem {
	cat, _ := models.ParseCategory(i.GetCategory())
	return &models.MarketplaceItem{
		ID:          i.GetId(),
		Owner:       i.GetUserId(),
		Title:       i.GetTitle(),
		Description: i.GetDescription(),
		Price:       i.GetPrice(),
		Category:    cat,
		ImageURL:    i.GetImageUrl(),
		SellerEmail: i.GetSellerEmail(),
		SellerPhone: i.GetSellerPhone(),
		CreatedAt:   timeOrZero(i.GetCreatedAt()),
	}
}

func itemToPB(i *models.MarketplaceItem) *pb.Item {
	return &pb.Item{
		Id:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		Price:       i.Price,
		Category:    i.Category.String(),
		ImageUrl:    i.ImageURL,
	}
}
