// Package svg writes a roadmap scene as an SVG document.
package svg

import (
	"fmt"
	"html"
	"io"
	"net/url"
	"strconv"
	"strings"

	"roadmap/domain/geometry"
	"roadmap/domain/roadmap"

	svgo "github.com/ajstarks/svgo"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// DimOpacity is applied to connectors and labels of inactive quarters.
const DimOpacity = 0.45

// Options controls document-level output.
type Options struct {
	// Inline omits the XML prolog so the output can be embedded in HTML.
	Inline bool
	// Year is added to wedge links so a click keeps the current year.
	Year string
	// Class is set on the root element.
	Class string
}

// Renderer draws scenes.
type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render writes scene to w: wedges, then connectors, then labels.
func (r *Renderer) Render(w io.Writer, scene roadmap.Scene) error {
	ew := &errWriter{w: w}
	canvas := svgo.New(ew)

	attrs := []string{
		attr("viewBox", scene.ViewBox),
		attr("preserveAspectRatio", "xMidYMid meet"),
		attr("data-variant", string(scene.Kind)),
		attr("data-active", strconv.Itoa(int(scene.Active))),
	}
	if r.opts.Class != "" {
		attrs = append(attrs, attr("class", r.opts.Class))
	}
	if r.opts.Inline {
		fmt.Fprint(ew, "<svg")
		for _, a := range attrs {
			fmt.Fprintf(ew, " %s", a)
		}
		fmt.Fprintln(ew, ` xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`)
	} else {
		canvas.Startraw(attrs...)
	}

	canvas.Group(attr("class", "wedges"))
	for _, wd := range scene.Wedges {
		canvas.Link(html.EscapeString(r.href(wd)), wd.Quarter.String())
		style := []string{
			attr("fill", wd.Fill),
			attr("data-quarter", strconv.Itoa(int(wd.Quarter))),
			"cursor:pointer",
		}
		if scene.Style.WedgeStroke > 0 {
			style = append(style, attr("stroke-width", geometry.Num(scene.Style.WedgeStroke)), attr("stroke-linecap", "round"))
		}
		if wd.Active {
			style = append(style, attr("aria-current", "true"))
		}
		canvas.Path(wd.Path, style...)
		canvas.LinkEnd()
	}
	canvas.Gend()

	canvas.Group(attr("class", "connectors"))
	for _, line := range scene.Connectors {
		style := []string{
			attr("fill", "none"),
			attr("stroke", roadmap.ConnectorColor),
			attr("stroke-width", geometry.Num(scene.Style.ConnectorStroke)),
			attr("stroke-linecap", "round"),
			attr("stroke-linejoin", "round"),
			attr("data-quarter", strconv.Itoa(int(line.Quarter))),
		}
		if line.Dimmed {
			style = append(style, attr("opacity", geometry.Num(DimOpacity)))
		}
		canvas.Path(line.Path, style...)
	}
	canvas.Gend()

	canvas.Group(attr("class", "labels"))
	for _, l := range scene.Labels {
		writeLabel(ew, scene.Style, l)
	}
	canvas.Gend()

	canvas.End()
	return ew.err
}

func (r *Renderer) href(wd roadmap.Wedge) string {
	query := url.Values{"q": {strconv.Itoa(int(wd.Quarter))}}
	if r.opts.Year != "" {
		query.Set("year", r.opts.Year)
	}
	return "?" + query.Encode()
}

// writeLabel emits the label as XHTML inside a foreignObject so the text wraps.
func writeLabel(w io.Writer, style roadmap.Style, l roadmap.Label) {
	opacity := ""
	if l.Dimmed {
		opacity = "opacity:" + geometry.Num(DimOpacity) + ";"
	}
	pad := geometry.Num(style.TextPad)

	fmt.Fprintf(w, `<foreignObject x="%s" y="%s" width="%s" height="%s" data-quarter="%d">`+"\n",
		geometry.Num(l.Frame.X), geometry.Num(l.Frame.Y), geometry.Num(l.Frame.W), geometry.Num(l.Frame.H), int(l.Quarter))
	fmt.Fprintf(w, `<div xmlns="http://www.w3.org/1999/xhtml" class="roadmap-label" style="text-align:%s;padding:0 %spx 8px %spx;overflow-wrap:anywhere;%s">`+"\n",
		l.Align, pad, pad, opacity)
	fmt.Fprintf(w, `<p style="margin:0;font-weight:800;font-size:%s">%s</p>`+"\n", style.HeadingSize, html.EscapeString(l.Heading))
	fmt.Fprintf(w, `<div style="font-weight:800;line-height:1.2;margin-top:2px;font-size:%s">%s</div>`+"\n", style.TitleSize, html.EscapeString(l.Title))
	fmt.Fprintf(w, `<div class="blurb" style="margin-top:8px;line-height:1.5;color:%s;font-size:%s">%s</div>`+"\n", roadmap.BlurbColor, style.BlurbSize, blurbHTML(l.Blurb))
	fmt.Fprintln(w, `</div>`)
	fmt.Fprintln(w, `</foreignObject>`)
}

// blurbHTML renders inline Markdown. Raw HTML in the source is dropped and
// output is XHTML so it stays well-formed inside the SVG.
func blurbHTML(s string) string {
	p := parser.NewWithExtensions(parser.NoIntraEmphasis | parser.Strikethrough | parser.Autolink)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.SkipHTML | mdhtml.Safelink | mdhtml.UseXHTML | mdhtml.HrefTargetBlank,
	})
	return strings.TrimSpace(string(markdown.ToHTML([]byte(s), p, r)))
}

func attr(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, html.EscapeString(value))
}

// errWriter keeps the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// DocumentWriter renders standalone documents; it satisfies ports.SceneRenderer.
type DocumentWriter struct {
	Inline bool
}

func (d DocumentWriter) Render(w io.Writer, year string, scene roadmap.Scene) error {
	return NewRenderer(Options{Inline: d.Inline, Year: year, Class: "roadmap roadmap--" + string(scene.Kind)}).Render(w, scene)
}
