package main

import (
	"context"

	"github.com/darasa/lms/core/user"
)

// addUser creates a user.User after running the usual input validation.
func (cli *commandLine) addUser(uname, email, pwd, role string) error {
	nu := user.NewUser{
		Username: uname,
		Email:    email,
		Password: pwd,
		Role:     role,
	}
	if err := nu.Validate(cli.validate, cli.usrSvc); err != nil {
		return err
	}

	_, err := cli.usrSvc.Create(context.Background(), nu)
	return err
}
