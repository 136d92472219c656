package svg

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"roadmap/domain/quarter"
	"roadmap/domain/roadmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarters() quarter.Map {
	m, err := quarter.NewMap(map[quarter.ID]quarter.Info{
		quarter.Q1: {Title: "Launch <beta>", Blurb: "Ship & tell."},
		quarter.Q2: {Title: "Grow", Blurb: "Open the beta."},
		quarter.Q3: {Title: "Scale", Blurb: "Three regions."},
		quarter.Q4: {Title: "Harden", Blurb: `Audit "everything".`},
	})
	if err != nil {
		panic(err)
	}
	return m
}

func render(t *testing.T, v roadmap.Variant, active quarter.ID, opts Options) string {
	t.Helper()
	scene, err := v.Compose(quarters(), active)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(opts).Render(&buf, scene))
	return buf.String()
}

func TestRenderDesktop(t *testing.T) {
	out := render(t, roadmap.NewDesktop(), quarter.Q1, Options{Year: "2024"})

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `viewBox="-441 -118 1722 1315"`)
	assert.Contains(t, out, `data-variant="desktop"`)
	assert.Equal(t, 4, strings.Count(out, "<a xlink:href="))
	assert.Contains(t, out, `xlink:href="?q=3&amp;year=2024"`)
	assert.Equal(t, 4, strings.Count(out, "<foreignObject"))
	assert.Equal(t, 1, strings.Count(out, `fill="`+roadmap.ActiveFill+`"`))
	assert.Equal(t, 3, strings.Count(out, `fill="`+roadmap.InactiveFill+`"`))
	assert.Contains(t, out, `stroke-width="23"`)
	assert.Contains(t, out, `stroke-width="8"`)
	assert.Equal(t, 3+3, strings.Count(out, "opacity"), "three dimmed connectors and three dimmed labels")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestRenderPaintOrder(t *testing.T) {
	out := render(t, roadmap.NewDesktop(), quarter.Q2, Options{})

	wedges := strings.Index(out, `class="wedges"`)
	connectors := strings.Index(out, `class="connectors"`)
	labels := strings.Index(out, `class="labels"`)
	require.True(t, wedges >= 0 && connectors >= 0 && labels >= 0)
	assert.Less(t, wedges, connectors)
	assert.Less(t, connectors, labels)
	assert.Contains(t, out, `xlink:href="?q=2"`)
}

func TestRenderMobileInline(t *testing.T) {
	out := render(t, roadmap.NewMobile(), quarter.Q4, Options{Inline: true, Class: "roadmap roadmap--mobile"})

	assert.True(t, strings.HasPrefix(out, "<svg "), "no XML prolog when inlined")
	assert.Contains(t, out, `class="roadmap roadmap--mobile"`)
	assert.Contains(t, out, `viewBox="-8 -16 336 656"`)
	assert.Equal(t, 1, strings.Count(out, "<foreignObject"))
	assert.Contains(t, out, `data-quarter="4"`)
	assert.Contains(t, out, "text-align:right")
	assert.Contains(t, out, "Audit &quot;everything&quot;.")
	assert.NotContains(t, out, "opacity", "the only label is active")
}

func TestRenderEscapesText(t *testing.T) {
	out := render(t, roadmap.NewDesktop(), quarter.Q1, Options{})
	assert.Contains(t, out, "Launch &lt;beta&gt;")
	assert.Contains(t, out, "Ship &amp; tell.")
	assert.NotContains(t, out, "<beta>")
}

func TestRenderBlurbMarkdown(t *testing.T) {
	assert.Equal(t, "<p>Open the <strong>beta</strong>.</p>", blurbHTML("Open the **beta**."))
	assert.NotContains(t, blurbHTML("Ship <script>x</script> now."), "<script")
	assert.Contains(t, blurbHTML("See [notes](https://example.com/notes)."), `target="_blank"`)
	assert.NotContains(t, blurbHTML("[bad](javascript:alert(1))"), "javascript:")
}

func TestRenderEscapesYearInLinks(t *testing.T) {
	out := render(t, roadmap.NewDesktop(), quarter.Q1, Options{Year: "FY 24&q=3"})
	assert.Contains(t, out, `xlink:href="?q=4&amp;year=FY+24%26q%3D3"`)
	assert.NotContains(t, out, "year=FY 24")
	assert.NotContains(t, out, "&amp;q=3")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderReportsWriteError(t *testing.T) {
	scene, err := roadmap.NewMobile().Compose(quarters(), quarter.Q1)
	require.NoError(t, err)
	assert.EqualError(t, NewRenderer(Options{}).Render(failingWriter{}, scene), "disk full")
}
