package linkverify

import (
	"context"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/rexdocs/internal/logfields"
	"git.home.luguber.info/inful/rexdocs/internal/observability"
)

// BrokenLink is an internal link whose target does not exist.
type BrokenLink struct {
	Page   string // page containing the link, relative to the output directory
	URL    string
	Target string // resolved target, relative to the output directory
	Tag    string
	Line   int
}

// Result summarizes a verification pass.
type Result struct {
	Pages  int
	Links  int // internal links checked
	Broken []BrokenLink
}

// OK reports whether every checked link resolved.
func (r *Result) OK() bool { return len(r.Broken) == 0 }

// Verify parses every .html file below dir and checks that each internal link
// points at an existing file inside dir.
func Verify(ctx context.Context, dir string) (*Result, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "output directory not readable").
			WithContext("path", dir).
			Build()
	}
	if !info.IsDir() {
		return nil, errors.FileSystemError("output path is not a directory").WithContext("path", dir).Build()
	}

	var pages []string
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".html") {
			rel, relErr := filepath.Rel(dir, p)
			if relErr != nil {
				return relErr
			}
			pages = append(pages, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to walk output directory").
			WithContext("path", dir).
			Build()
	}
	sort.Strings(pages)

	res := &Result{}
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		links, err := ExtractLinks(filepath.Join(dir, filepath.FromSlash(page)))
		if err != nil {
			return res, err
		}
		res.Pages++
		for _, link := range links {
			if !ShouldVerifyLink(link) {
				continue
			}
			res.Links++
			target, ok := resolve(page, link.URL)
			if ok && exists(dir, target) {
				continue
			}
			res.Broken = append(res.Broken, BrokenLink{Page: page, URL: link.URL, Target: target, Tag: link.Tag, Line: link.Line})
			observability.WarnContext(ctx, "Broken internal link",
				logfields.Page(page), logfields.Path(link.URL))
		}
	}
	return res, nil
}

// resolve turns a link found on page into a slash-separated path relative to
// the site root. ok is false when the link climbs above the root.
func resolve(page, link string) (string, bool) {
	u, err := url.Parse(link)
	if err != nil {
		return link, false
	}
	p := u.Path
	if p == "" {
		return page, true
	}
	var target string
	if strings.HasPrefix(p, "/") {
		target = path.Clean(strings.TrimPrefix(p, "/"))
	} else {
		target = path.Join(path.Dir(page), p)
	}
	if strings.HasSuffix(p, "/") || target == "." {
		target = path.Join(target, "index.html")
	}
	if target == ".." || strings.HasPrefix(target, "../") {
		return target, false
	}
	return target, true
}

func exists(dir, target string) bool {
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(target)))
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(target), "index.html"))
		return err == nil
	}
	return true
}
