package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/hoopaconnect/internal/proto"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/services"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// timestampOrNil keeps unset times off the wire.
func timestampOrNil(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func tokenResponse(p *services.TokenPair) *pb.TokenResponse {
	return &pb.TokenResponse{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

func profileToPB(p *models.Profile) *pb.Profile {
	return &pb.Profile{
		Id:         p.ID,
		Email:      p.Email,
		FullName:   p.FullName,
		Phone:      p.Phone,
		ProfilePic: p.ProfilePic,
		UpdatedAt:  timestampOrNil(p.UpdatedAt),
	}
}

func messageToPB(m *models.ChairmanMessage) *pb.Message {
	return &pb.Message{Id: m.ID, Message: m.Message, CreatedBy: m.CreatedBy, CreatedAt: timestampOrNil(m.CreatedAt)}
}

func vaultToPB(v *models.VaultEntry) *pb.VaultEntry {
	return &pb.VaultEntry{UserId: v.UserID, StorageKey: v.StorageKey, IdImageUrl: v.IDImageURL, UpdatedAt: timestampOrNil(v.UpdatedAt)}
}

func itemToPB(i *models.MarketplaceItem) *pb.Item {
	return &pb.Item{
		Id:          i.ID,
		UserId:      i.UserID,
		Title:       i.Title,
		Description: i.Description,
		Price:       i.Price,
		Category:    i.Category,
		ImageUrl:    i.ImageURL,
		SellerEmail: i.SellerEmail,
		SellerPhone: i.SellerPhone,
		CreatedAt:   timestampOrNil(i.CreatedAt),
	}
}

func itemFromPB(i *pb.Item) *models.MarketplaceItem {
	return &models.MarketplaceItem{
		ID:          i.GetId(),
		Title:       i.GetTitle(),
		Description: i.GetDescription(),
		Price:       i.GetPrice(),
		Category:    i.GetCategory(),
		ImageURL:    i.GetImageUrl(),
	}
}
