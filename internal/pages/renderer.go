package pages

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"slices"

	"git.home.luguber.info/inful/rexdocs/internal/config"
	"git.home.luguber.info/inful/rexdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/rexdocs/internal/markdown"
	"git.home.luguber.info/inful/rexdocs/internal/tokens"
)

//go:embed templates
var templateFS embed.FS

type siteView struct {
	Title    string
	Language string
}

type navItem struct {
	Title  string
	File   string
	Active bool
}

type pageData struct {
	Site    siteView
	Page    Definition
	Heading string
	Home    string
	Nav     []navItem
	Notes   template.HTML
	Styles  template.CSS
	View    any
}

// Renderer turns catalog data into HTML pages.
type Renderer struct {
	site   siteView
	nav    []Definition
	notes  map[string]template.HTML
	styles template.CSS
	sets   map[string]*template.Template
}

// NewRenderer parses the embedded templates and renders the Markdown notes of the
// configured pages. Navigation lists the pages in site.Pages in registry order.
func NewRenderer(site config.SiteConfig) (*Renderer, error) {
	r := &Renderer{
		site:  siteView{Title: site.Title, Language: site.Language},
		notes: make(map[string]template.HTML),
		sets:  make(map[string]*template.Template),
	}
	for _, d := range registry {
		if len(site.Pages) == 0 || slices.Contains(site.Pages, d.Name) {
			r.nav = append(r.nav, d)
		}
	}

	stylesheet, err := templateFS.ReadFile("templates/styles.css")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to read embedded stylesheet").Build()
	}
	// #nosec G203 -- the stylesheet is compiled into the binary.
	r.styles = template.CSS(stylesheet)

	base, err := template.New("layout").Option("missingkey=error").ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to parse layout template").Build()
	}
	for _, d := range registry {
		set, cloneErr := base.Clone()
		if cloneErr != nil {
			return nil, errors.WrapError(cloneErr, errors.CategoryInternal, "failed to clone layout template").Build()
		}
		if _, err = set.ParseFS(templateFS, "templates/pages/"+d.Name+".html"); err != nil {
			return nil, errors.WrapError(err, errors.CategoryInternal, "failed to parse page template").
				WithContext("page", d.Name).
				Build()
		}
		r.sets[d.Name] = set
	}

	for name, src := range site.Notes {
		html, noteErr := markdown.RenderNotes(src)
		if noteErr != nil {
			return nil, errors.WrapError(noteErr, errors.CategoryConfig, "failed to render page notes").
				WithContext("page", name).
				Build()
		}
		r.notes[name] = html
	}
	return r, nil
}

// Pages returns the pages shown in navigation.
func (r *Renderer) Pages() []Definition {
	return slices.Clone(r.nav)
}

// Render writes the named page and returns the number of token entries on it.
func (r *Renderer) Render(w io.Writer, name string, cat *tokens.Catalog) (int, error) {
	def, ok := Lookup(name)
	if !ok {
		return 0, errors.ValidationError("unknown page").WithContext("page", name).Build()
	}
	view, entries := def.build(cat, r.nav)
	data := r.pageData(def, view)
	data.Nav = r.navFor(def.Name)
	return entries, r.execute(w, def.Name, "layout", data)
}

// RenderColorSheet writes the colors content as a single page without navigation.
func (r *Renderer) RenderColorSheet(w io.Writer, cat *tokens.Catalog) (int, error) {
	def, _ := Lookup("colors")
	def.Title = "Theme Colors"
	view, entries := colorsFromCatalog(cat)
	data := r.pageData(def, view)
	data.Heading = r.site.Title + " Theme Colors"
	return entries, r.execute(w, def.Name, "standalone", data)
}

func (r *Renderer) pageData(def Definition, view any) pageData {
	heading := def.Title
	if def.Name == Index {
		heading = r.site.Title + " Documentation"
	}
	home := "index.html"
	if len(r.nav) > 0 {
		home = r.nav[0].File
	}
	return pageData{
		Site:    r.site,
		Page:    def,
		Heading: heading,
		Home:    home,
		Notes:   r.notes[def.Name],
		Styles:  r.styles,
		View:    view,
	}
}

func (r *Renderer) navFor(active string) []navItem {
	items := make([]navItem, 0, len(r.nav))
	for _, d := range r.nav {
		items = append(items, navItem{Title: d.Title, File: d.File, Active: d.Name == active})
	}
	return items
}

// execute renders into a buffer first so a template failure never leaves a
// partial page in w.
func (r *Renderer) execute(w io.Writer, page, layout string, data pageData) error {
	var buf bytes.Buffer
	if err := r.sets[page].ExecuteTemplate(&buf, layout, data); err != nil {
		return errors.WrapError(err, errors.CategoryRender, fmt.Sprintf("failed to render %s", page)).
			WithContext("page", page).
			Fatal().
			Build()
	}
	if _, err := buf.WriteTo(w); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write page").
			WithContext("page", page).
			Build()
	}
	return nil
}
