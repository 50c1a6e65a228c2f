package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hoopaconnect/internal/client/access"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/content"
	"github.com/dmitrijs2005/hoopaconnect/internal/client/models"
	"github.com/dmitrijs2005/hoopaconnect/internal/common"
)

const dateLayout = "Jan 2, 2006"

// Home renders the current landing screen.
func (a *App) Home(ctx context.Context) error {
	switch a.screen {
	case models.ScreenChairmanDashboard:
		fmt.Fprintln(a.out, "Chairman Dashboard")
		fmt.Fprintln(a.out, "Message to the Community:")
		return a.showMessage(ctx)
	case models.ScreenEnrollmentDashboard:
		fmt.Fprintln(a.out, "Enrollment Dashboard")
		fmt.Fprintln(a.out, "Tribal ID uploads for members will be available here.")
		return nil
	case models.ScreenHome:
		fmt.Fprintln(a.out, "Words from our Chairman")
		if err := a.showMessage(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Marketplace: 'market'  Events: 'events'  Directory: 'directory'  Jobs: 'jobs'")
		return nil
	default:
		fmt.Fprintln(a.out, "Welcome to Hoopa Connect. Type 'login' or 'signup' to begin.")
		return nil
	}
}

// Message handles the chairman message screen:
//
//	message            view the latest message
//	message post       post a new message (chairman only)
//	message delete     delete the latest message (chairman only)
func (a *App) Message(ctx context.Context, args []string) error {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "", "view":
		return a.showMessage(ctx)
	case "post":
		return a.postMessage(ctx)
	case "delete":
		return a.deleteMessage(ctx)
	default:
		fmt.Fprintln(a.out, "Usage: message [view|post|delete]")
		return nil
	}
}

// showMessage prints the latest chairman message. Posting controls are
// listed only for users allowed to write messages.
func (a *App) showMessage(ctx context.Context) error {
	var msg *models.ChairmanMessage
	err := a.do(ctx, func(ctx context.Context) error {
		var err error
		msg, err = a.portal.LatestMessage(ctx)
		return err
	})

	switch {
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, "No message posted yet.")
	case err != nil:
		return a.fail(ctx, "Chairman Message", common.Remote("LatestMessage", err))
	default:
		fmt.Fprintf(a.out, "%s\n(%s)\n", msg.Message, msg.CreatedAt.Format(dateLayout))
	}

	if a.canWrite(access.Resource{Kind: access.KindChairmanMessage}) {
		fmt.Fprintln(a.out, "Controls: 'message post', 'message delete'")
	}
	return nil
}

func (a *App) postMessage(ctx context.Context) error {
	if !a.canWrite(access.Resource{Kind: access.KindChairmanMessage}) {
		return a.fail(ctx, "Chairman Message", common.ErrorForbidden)
	}

	text, err := getMultiline(a.reader, "Message to the community", a.out)
	if err != nil {
		return err
	}
	msg := &models.ChairmanMessage{Message: text}
	if err := msg.Validate(); err != nil {
		return a.fail(ctx, "Chairman Message", err)
	}

	err = a.do(ctx, func(ctx context.Context) error {
		_, err := a.portal.PostMessage(ctx, text)
		return err
	})
	if err != nil {
		return a.fail(ctx, "Chairman Message", common.Remote("PostMessage", err))
	}
	a.notifier.Success("Chairman Message", "posted")
	return nil
}

func (a *App) deleteMessage(ctx context.Context) error {
	if !a.canWrite(access.Resource{Kind: access.KindChairmanMessage}) {
		return a.fail(ctx, "Chairman Message", common.ErrorForbidden)
	}

	var msg *models.ChairmanMessage
	err := a.do(ctx, func(ctx context.Context) error {
		var err error
		msg, err = a.portal.LatestMessage(ctx)
		return err
	})
	if errors.Is(err, common.ErrorNotFound) {
		fmt.Fprintln(a.out, "No message posted yet.")
		return nil
	}
	if err != nil {
		return a.fail(ctx, "Chairman Message", common.Remote("LatestMessage", err))
	}

	if !confirm(a.reader, "Delete the current message?", a.out) {
		return a.fail(ctx, "Chairman Message", common.ErrCancelled)
	}

	err = a.do(ctx, func(ctx context.Context) error {
		return a.portal.DeleteMessage(ctx, msg.ID)
	})
	if err != nil {
		return a.fail(ctx, "Chairman Message", common.Remote("DeleteMessage", err))
	}
	a.notifier.Success("Chairman Message", "deleted")
	return nil
}

// Info prints a section of the community catalog, or lists the sections.
func (a *App) Info(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Sections:", strings.Join(a.catalog.Keys(), ", "))
		return nil
	}
	s, ok := a.catalog.Section(args[0])
	if !ok {
		fmt.Fprintf(a.out, "Unknown section %q. Sections: %s\n", args[0], strings.Join(a.catalog.Keys(), ", "))
		return common.ErrorNotFound
	}
	content.Render(a.out, s)
	return nil
}
