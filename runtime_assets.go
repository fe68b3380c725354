package pagekit

import (
	"embed"
	"html"
	"io/fs"
)

//go:embed assets/*.js
var embeddedRuntimeAssets embed.FS

// RuntimeScriptName is the file name of the browser runtime bundle.
const RuntimeScriptName = "pagekit.js"

// RuntimeAssetsFS exposes the committed browser runtime so Go applications
// can serve it without a separate asset pipeline.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(pagekit.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}

// RuntimeScript returns the browser runtime bytes.
func RuntimeScript() []byte {
	data, err := fs.ReadFile(embeddedRuntimeAssets, "assets/"+RuntimeScriptName)
	if err != nil {
		return nil
	}
	return data
}

// ScriptTag renders a script element referencing the runtime at src.
func ScriptTag(src string) string {
	return `<script src="` + html.EscapeString(src) + `" defer></script>`
}
