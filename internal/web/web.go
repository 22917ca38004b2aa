// Package web 約會頁面的模板與靜態檔
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html static/*
var files embed.FS

// Templates 所有頁面模板
func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}

// Static /static 底下的檔案
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
