// Package web embeds the login and app pages so the deploy artifact is
// a single binary plus the database.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed login.html app.html static
var files embed.FS

var (
	LoginPage = mustRead("login.html")
	AppPage   = mustRead("app.html")
)

func mustRead(name string) []byte {
	b, err := files.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return b
}

func Static() http.FileSystem {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
