package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/hoopaconnect/internal/server"
	"github.com/dmitrijs2005/hoopaconnect/internal/server/config"
)

// grantRoleArgs returns the email and role following a "grant-role"
// subcommand, if present.
func grantRoleArgs(args []string) (email, role string, ok bool) {
	for i, a := range args {
		if a == "grant-role" && i+2 < len(args) {
			return args[i+1], args[i+2], true
		}
	}
	return "", "", false
}

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if email, role, ok := grantRoleArgs(os.Args[1:]); ok {
		defer app.Close()
		if err := app.GrantRole(ctx, email, role); err != nil {
			log.Printf("grant-role: %v", err)
			return
		}
		log.Printf("granted %s to %s", role, email)
		return
	}

	app.Run(ctx)

}
