package htmlgrid

import (
	"embed"
	"io/fs"
)

//go:embed templates
var embeddedTemplates embed.FS

// Templates returns the embedded template tree rooted at the template
// directory.
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}
