package main

import (
	"database/sql"
	"io/fs"

	"github.com/trezcool/goose"

	appfs "github.com/darasa/lms/fs"
)

var gooseRunFunc = func(command string, db *sql.DB, fsys fs.FS, dir string, args ...string) error {
	return goose.RunFS(command, db, fsys, dir, args...)
} // mockable

func (cli *commandLine) migrate(args []string) error {
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	var db *sql.DB
	if cli.db != nil {
		db = cli.db.DB
	}
	return gooseRunFunc(args[0], db, appfs.FS, "migrations", arguments...)
}
