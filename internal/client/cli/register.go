package cli

import (
	"context"
	"os"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	name, err := GetSimpleText(a.reader, "Enter display name (optional)", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	session, err := a.client.Register(ctx, email, string(password), name)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	a.user = &session.User
	printlnFn("Account created, you are now logged in.")
	return nil
}
