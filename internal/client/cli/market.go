package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/access"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/media"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
)

// Market handles the marketplace screens:
//
//	market                 list every item, newest first
//	market search <text>   items whose title or category contains text
//	market mine            the user's own listings
//	market add             create a listing with a picture
//	market edit <id>       change one of the user's listings
//	market delete <id>     remove one of the user's listings
func (a *App) Market(ctx context.Context, args []string) error {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "", "list":
		a.market.SetSearch("")
		return a.listMarket(ctx, "")
	case "search":
		a.market.SetSearch(strings.Join(args[1:], " "))
		return a.listMarket(ctx, "")
	case "mine":
		if err := a.requireLogin(); err != nil {
			return err
		}
		a.market.SetSearch("")
		return a.listMarket(ctx, a.subject())
	case "add":
		if err := a.requireLogin(); err != nil {
			return err
		}
		return a.addItem(ctx)
	case "edit", "delete":
		if err := a.requireLogin(); err != nil {
			return err
		}
		if len(args) < 2 {
			fmt.Fprintf(a.out, "Usage: market %s <id>\n", sub)
			return nil
		}
		if sub == "edit" {
			return a.editItem(ctx, args[1])
		}
		return a.deleteItem(ctx, args[1])
	default:
		fmt.Fprintln(a.out, "Usage: market [list|search <text>|mine|add|edit <id>|delete <id>]")
		return nil
	}
}

func (a *App) listMarket(ctx context.Context, owner string) error {
	if err := a.market.Load(ctx, owner); err != nil {
		return err
	}
	items := a.market.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items found.")
		return nil
	}
	for _, it := range items {
		printItem(a, it)
	}
	return nil
}

func printItem(a *App, it *models.MarketplaceItem) {
	fmt.Fprintf(a.out, "[%s] %s - $%.2f (%s)\n", it.ID, it.Title, it.Price, it.Category)
	fmt.Fprintf(a.out, "    %s\n", it.Description)
	contact := it.SellerEmail
	if it.SellerPhone != "" {
		contact += ", " + it.SellerPhone
	}
	if contact != "" {
		fmt.Fprintf(a.out, "    Seller: %s\n", contact)
	}
	fmt.Fprintf(a.out, "    Image: %s\n", it.ImageURL)
}

// promptItem fills item from user input. Empty answers keep the current
// value, which makes it usable for both add and edit.
func (a *App) promptItem(item *models.MarketplaceItem) (picture string, err error) {
	ask := func(label, current string) (string, error) {
		prompt := label
		if current != "" {
			prompt = fmt.Sprintf("%s [%s]", label, current)
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return "", err
		}
		if v == "" {
			return current, nil
		}
		return v, nil
	}

	if item.Title, err = ask("Title", item.Title); err != nil {
		return "", err
	}
	desc, err := getMultiline(a.reader, "Description", a.out)
	if err != nil {
		return "", err
	}
	if desc != "" {
		item.Description = desc
	}

	price := ""
	if item.ID != "" {
		price = strconv.FormatFloat(item.Price, 'f', 2, 64)
	}
	if price, err = ask("Price", price); err != nil {
		return "", err
	}
	if price == "" {
		return "", &common.ValidationError{Field: "price", Reason: "required"}
	}
	p, perr := strconv.ParseFloat(strings.TrimPrefix(price, "$"), 64)
	if perr != nil {
		return "", &common.ValidationError{Field: "price", Reason: "not a number"}
	}
	item.Price = p

	names := make([]string, 0, len(models.Categories()))
	for _, c := range models.Categories() {
		names = append(names, c.String())
	}
	cat, err := ask("Category ("+strings.Join(names, ", ")+")", item.Category.String())
	if err != nil {
		return "", err
	}
	if item.Category, err = models.ParseCategory(cat); err != nil {
		return "", &common.ValidationError{Field: "category", Reason: err.Error()}
	}

	return getSimpleText(a.reader, "Picture file (empty to keep)", a.out)
}

// addItem validates the listing before uploading its picture, so a bad form
// makes no network call. A failed upload creates nothing.
func (a *App) addItem(ctx context.Context) error {
	item := &models.MarketplaceItem{Category: models.CategoryOther}
	picture, err := a.promptItem(item)
	if err != nil {
		return a.fail(ctx, a.market.Title, err)
	}

	draft := *item
	draft.ImageURL = picture
	if err := draft.Validate(); err != nil {
		return a.fail(ctx, a.market.Title, err)
	}

	res, err := a.uploader.Upload(ctx, media.PathPicker(picture), media.MarketplaceImages, a.subject())
	if err != nil {
		return a.fail(ctx, a.market.Title, err)
	}
	item.ImageURL = res.URL

	created, err := a.market.Create(ctx, item)
	if err != nil {
		return err
	}
	printItem(a, created)
	return nil
}

// ownItem finds id among the user's listings. Other users' items are
// reported as not found.
func (a *App) ownItem(ctx context.Context, id string) (*models.MarketplaceItem, error) {
	a.market.SetSearch("")
	if err := a.market.Load(ctx, a.subject()); err != nil {
		return nil, err
	}
	for _, it := range a.market.Items() {
		if it.ID != id {
			continue
		}
		if !a.canWrite(access.Resource{Kind: access.KindMarketplaceItem, Owner: it.Owner}) {
			return nil, a.fail(ctx, a.market.Title, common.ErrorForbidden)
		}
		return it, nil
	}
	fmt.Fprintf(a.out, "You have no item %s.\n", id)
	return nil, common.ErrorNotFound
}

func (a *App) editItem(ctx context.Context, id string) error {
	current, err := a.ownItem(ctx, id)
	if err != nil {
		return err
	}

	item := *current
	picture, err := a.promptItem(&item)
	if err != nil {
		return a.fail(ctx, a.market.Title, err)
	}

	if picture != "" {
		draft := item
		draft.ImageURL = picture
		if err := draft.Validate(); err != nil {
			return a.fail(ctx, a.market.Title, err)
		}
		res, err := a.uploader.Upload(ctx, media.PathPicker(picture), media.MarketplaceImages, a.subject())
		if err != nil {
			return a.fail(ctx, a.market.Title, err)
		}
		item.ImageURL = res.URL
	}

	updated, err := a.market.Update(ctx, id, &item)
	if err != nil {
		return err
	}
	printItem(a, updated)
	return nil
}

func (a *App) deleteItem(ctx context.Context, id string) error {
	if _, err := a.ownItem(ctx, id); err != nil {
		return err
	}
	err := a.market.Delete(ctx, id)
	if errors.Is(err, common.ErrCancelled) {
		fmt.Fprintln(a.out, "Cancelled.")
	}
	return err
}
