package view

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static holds site.js and site.css.
var Static fs.FS

func init() {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	Static = sub
}
