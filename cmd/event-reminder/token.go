package main

import (
	"fmt"

	"github.com/SergeyKozhin/event-reminder-backend/internal/config"
	"github.com/SergeyKozhin/event-reminder-backend/internal/pkg/jwt"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Issue an API access token for a user.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "user", Required: true, Usage: "User id."},
		},
		Action: func(c *cli.Context) error {
			id, err := uuid.Parse(c.String("user"))
			if err != nil {
				return fmt.Errorf("invalid user id: %w", err)
			}

			jwts, err := jwt.NewManager(config.Secret(), config.JwtTTL())
			if err != nil {
				return err
			}

			token, err := jwts.CreateToken(id)
			if err != nil {
				return err
			}

			fmt.Println(token)
			return nil
		},
	}
}
