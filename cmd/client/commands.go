package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/adapter"
	"github.com/MKhiriev/go-user-auth/models"
)

const usage = `commands (none starts the interactive client):
  register <username> <email> <password> [full name]
  login <username> <password>      prints a token for -token / CLIENT_TOKEN
  me                               identity bound to the token
  users                            list every user
  user <username|id>               show a single user
  health                           check the server
  version                          server build info
`

var errUsage = errors.New("invalid usage")

// run executes a single CLI command against client and writes the result
// to out.
func run(ctx context.Context, client adapter.AuthClient, args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command\n\n%s", errUsage, usage)
	}

	command, params := args[0], args[1:]

	switch command {
	case "register":
		if len(params) < 3 {
			return fmt.Errorf("%w: register <username> <email> <password> [full name]", errUsage)
		}
		echo, err := client.Register(ctx, models.RegistrationRequest{
			Username: params[0],
			Email:    params[1],
			Password: params[2],
			FullName: strings.Join(params[3:], " "),
		})
		if err != nil {
			return err
		}
		return printJSON(out, echo)

	case "login":
		if len(params) != 2 {
			return fmt.Errorf("%w: login <username> <password>", errUsage)
		}
		token, err := client.Login(ctx, models.Credentials{Username: params[0], Password: params[1]})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, token)
		return err

	case "me":
		identity, err := client.Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, identity)

	case "users":
		users, err := client.ListUsers(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, users)

	case "user":
		if len(params) != 1 {
			return fmt.Errorf("%w: user <username|id>", errUsage)
		}
		user, err := lookupUser(ctx, client, params[0])
		if err != nil {
			return err
		}
		return printJSON(out, user)

	case "health":
		if err := client.Health(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out, "ok")
		return err

	case "version":
		info, err := client.Version(ctx)
		if err != nil {
			return err
		}
		return printJSON(out, info)

	default:
		return fmt.Errorf("%w: unknown command %q\n\n%s", errUsage, command, usage)
	}
}

// lookupUser treats a numeric key as a user id and anything else as a
// username.
func lookupUser(ctx context.Context, client adapter.AuthClient, key string) (models.User, error) {
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		return client.GetUserByID(ctx, id)
	}
	return client.GetUserByUsername(ctx, key)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
