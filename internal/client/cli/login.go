package cli

import (
	"context"
	"os"
)

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	session, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	a.user = &session.User
	printlnFn("Logged in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	// tokens are stateless; forgetting the session locally is enough
	a.client.SetToken("")
	a.user = nil
	a.board = nil
	printlnFn("Logged out.")
	return nil
}
