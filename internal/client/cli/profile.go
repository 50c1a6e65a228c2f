package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/access"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/media"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
)

// Profile handles the profile screen:
//
//	profile                show the profile
//	profile edit           change name and phone
//	profile avatar <file>  replace the profile picture
func (a *App) Profile(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if !a.canWrite(access.Resource{Kind: access.KindProfile, Owner: a.subject()}) {
		return a.fail(ctx, "Profile", common.ErrorForbidden)
	}

	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "":
		p, err := a.loadProfile(ctx)
		if err != nil || p == nil {
			return err
		}
		fmt.Fprintf(a.out, "Name:    %s\nEmail:   %s\nPhone:   %s\nPicture: %s\n", p.FullName, p.Email, p.Phone, p.ProfilePic)
		return nil
	case "edit":
		return a.editProfile(ctx)
	case "avatar":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: profile avatar <file>")
			return nil
		}
		return a.changeAvatar(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "Usage: profile [edit|avatar <file>]")
		return nil
	}
}

// loadProfile returns nil without error when no profile exists yet.
func (a *App) loadProfile(ctx context.Context) (*models.Profile, error) {
	var p *models.Profile
	err := a.do(ctx, func(ctx context.Context) error {
		var err error
		p, err = a.portal.GetProfile(ctx)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintln(a.out, "No profile yet. Use 'profile edit' to create it.")
		return nil, nil
	}
	if err != nil {
		return nil, a.fail(ctx, "Profile", common.Remote("GetProfile", err))
	}
	return p, nil
}

func (a *App) saveProfile(ctx context.Context, p *models.Profile, okMsg string) error {
	if err := p.Validate(); err != nil {
		return a.fail(ctx, "Profile", err)
	}
	err := a.do(ctx, func(ctx context.Context) error {
		_, err := a.portal.UpdateProfile(ctx, p)
		return err
	})
	if err != nil {
		return a.fail(ctx, "Profile", common.Remote("UpdateProfile", err))
	}
	a.notifier.Success("Profile", okMsg)
	return nil
}

func (a *App) editProfile(ctx context.Context) error {
	p, err := a.loadProfile(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		p = &models.Profile{}
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Full name [%s]", p.FullName), a.out)
	if err != nil {
		return err
	}
	if name != "" {
		p.FullName = name
	}
	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", p.Phone), a.out)
	if err != nil {
		return err
	}
	if phone != "" {
		p.Phone = phone
	}

	return a.saveProfile(ctx, p, "saved")
}

// changeAvatar uploads the picture first and only then stores its URL, so a
// failed upload leaves the previous picture in place.
func (a *App) changeAvatar(ctx context.Context, path string) error {
	p, err := a.loadProfile(ctx)
	if err != nil {
		return err
	}
	if p == nil {
		return a.fail(ctx, "Profile", &common.ValidationError{Field: "full_name", Reason: "required"})
	}

	res, err := a.uploader.Upload(ctx, media.PathPicker(path), media.Avatars, a.subject())
	if err != nil {
		return a.fail(ctx, "Profile", err)
	}
	p.ProfilePic = res.URL
	return a.saveProfile(ctx, p, "picture updated")
}

// Vault handles the ID vault:
//
//	vault                 show the stored ID document link
//	vault upload <file>   upload a tribal ID image or PDF
func (a *App) Vault(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if !a.canWrite(access.Resource{Kind: access.KindVaultEntry, Owner: a.subject()}) {
		return a.fail(ctx, "ID Vault", common.ErrorForbidden)
	}

	if len(args) == 0 {
		var e *models.VaultEntry
		err := a.do(ctx, func(ctx context.Context) error {
			var err error
			e, err = a.portal.GetVaultEntry(ctx)
			return err
		})
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "No ID uploaded yet. Use 'vault upload <file>'.")
			return nil
		}
		if err != nil {
			return a.fail(ctx, "ID Vault", common.Remote("GetVaultEntry", err))
		}
		fmt.Fprintf(a.out, "ID document: %s\nUploaded:    %s\n", e.IDImageURL, e.UpdatedAt.Format(dateLayout))
		return nil
	}

	if args[0] != "upload" || len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: vault [upload <file>]")
		return nil
	}

	res, err := a.uploader.Upload(ctx, media.PathPicker(args[1]), media.IDCards, a.subject())
	if err != nil {
		return a.fail(ctx, "ID Vault", err)
	}
	err = a.do(ctx, func(ctx context.Context) error {
		_, err := a.portal.UpsertVaultEntry(ctx, res.Key, res.URL)
		return err
	})
	if err != nil {
		return a.fail(ctx, "ID Vault", common.Remote("UpsertVaultEntry", err))
	}
	a.notifier.Success("ID Vault", "ID uploaded")
	return nil
}
