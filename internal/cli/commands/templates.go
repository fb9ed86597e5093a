package commands

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed all:templates
var templateFS embed.FS

// Template files whose installed name cannot be embedded as is.
var dotfiles = map[string]string{
	"gitignore": ".gitignore",
}

// templateResult lists what installTemplate did, as paths relative to the
// target directory.
type templateResult struct {
	Written []string
	Skipped []string
}

// installTemplate copies the embedded template name into dir. Existing
// files are left alone unless force is set.
func installTemplate(name, dir string, force bool) (templateResult, error) {
	var res templateResult
	root := path.Join("templates", name)

	err := fs.WalkDir(templateFS, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || p == root {
			return err
		}

		rel := installedName(strings.TrimPrefix(p, root+"/"))
		target := filepath.Join(dir, filepath.FromSlash(rel))
		if d.IsDir() {
			return os.MkdirAll(target, 0o750)
		}

		if _, err := os.Stat(target); err == nil && !force {
			res.Skipped = append(res.Skipped, rel)
			return nil
		}

		content, err := templateFS.ReadFile(p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, content, 0o600); err != nil {
			return err
		}
		res.Written = append(res.Written, rel)
		return nil
	})
	return res, err
}

func installedName(rel string) string {
	dir, base := path.Split(rel)
	if name, ok := dotfiles[base]; ok {
		return dir + name
	}
	return rel
}
