package ui

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"roadmap/adapters/svg"
	"roadmap/domain/quarter"
	"roadmap/domain/roadmap"
	"roadmap/domain/viewport"
	"roadmap/internal/errors"
	"roadmap/ui/middleware"

	"github.com/gin-gonic/gin"
)

type indexPage struct {
	Year       string
	Years      []string
	Active     quarter.ID
	Title      string
	Desktop    template.HTML
	Mobile     template.HTML
	Breakpoint int
}

// handleIndex renders the page with both variants inlined; CSS shows one.
// A q parameter selects that quarter, so wedge links work without JS.
func (s *Server) handleIndex(c *gin.Context) {
	sel, ok := middleware.SelectionFrom(c)
	if !ok {
		s.abortWithError(c, errors.InternalError("no session"))
		return
	}
	book := s.roadmaps.Book()
	if book == nil {
		s.abortWithError(c, errors.InternalError("roadmap content not loaded"))
		return
	}
	_, year, err := book.Quarters(c.Query("year"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	if raw := c.Query("q"); raw != "" {
		q, err := quarter.ParseID(raw)
		if err != nil {
			s.abortWithError(c, err)
			return
		}
		if _, err := sel.Select(q); err != nil {
			s.abortWithError(c, err)
			return
		}
	}

	active := sel.Active()
	page := indexPage{
		Active:     active,
		Years:      book.Years(),
		Breakpoint: viewport.BreakpointLG,
	}

	for _, kind := range []roadmap.Kind{roadmap.KindDesktop, roadmap.KindMobile} {
		scene, year, err := s.roadmaps.Scene(year, kind, active)
		if err != nil {
			s.abortWithError(c, err)
			return
		}
		page.Year = year

		var buf bytes.Buffer
		r := svg.NewRenderer(svg.Options{Inline: true, Year: year, Class: "roadmap roadmap--" + string(kind)})
		if err := r.Render(&buf, scene); err != nil {
			s.abortWithError(c, errors.Wrap(err, "render roadmap"))
			return
		}
		// Labels are escaped by the renderer.
		if kind == roadmap.KindDesktop {
			page.Desktop = template.HTML(buf.String())
		} else {
			page.Mobile = template.HTML(buf.String())
		}
	}
	page.Title = "Roadmap " + page.Year

	s.renderTemplate(c, "index.html", page)
}

// sceneRequest reads variant, year and q. q falls back to the session's
// active quarter and never changes it.
func (s *Server) sceneRequest(c *gin.Context) (roadmap.Kind, string, quarter.ID, error) {
	kind := roadmap.KindDesktop
	if raw := c.Query("variant"); raw != "" {
		k, err := roadmap.ParseKind(raw)
		if err != nil {
			return "", "", 0, err
		}
		kind = k
	}

	var active quarter.ID
	if raw := c.Query("q"); raw != "" {
		q, err := quarter.ParseID(raw)
		if err != nil {
			return "", "", 0, err
		}
		active = q
	} else if sel, ok := middleware.SelectionFrom(c); ok {
		active = sel.Active()
	} else {
		active = quarter.Q1
	}
	return kind, c.Query("year"), active, nil
}

func (s *Server) handleRoadmapSVG(c *gin.Context) {
	kind, year, active, err := s.sceneRequest(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	scene, year, err := s.roadmaps.Scene(year, kind, active)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	opts := svg.Options{Year: year, Class: "roadmap roadmap--" + string(kind)}
	opts.Inline, _ = strconv.ParseBool(c.Query("inline"))

	var buf bytes.Buffer
	if err := svg.NewRenderer(opts).Render(&buf, scene); err != nil {
		s.abortWithError(c, errors.Wrap(err, "render roadmap"))
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", buf.Bytes())
}

func (s *Server) handleScene(c *gin.Context) {
	kind, year, active, err := s.sceneRequest(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	scene, year, err := s.roadmaps.Scene(year, kind, active)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "scene": scene})
}

func (s *Server) handleYears(c *gin.Context) {
	book := s.roadmaps.Book()
	c.JSON(http.StatusOK, gin.H{"years": book.Years(), "default": book.DefaultYear()})
}

type selectRequest struct {
	Quarter int `json:"quarter" binding:"required"`
}

func (s *Server) handleSelect(c *gin.Context) {
	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abortWithError(c, errors.InvalidInput("body must be {\"quarter\": 1-4}"))
		return
	}
	sel, ok := middleware.SelectionFrom(c)
	if !ok {
		s.abortWithError(c, errors.InternalError("no session"))
		return
	}

	change, err := sel.Select(quarter.ID(req.Quarter))
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"from":    change.From,
		"to":      change.To,
		"changed": change.Changed(),
		"active":  sel.Active(),
	})
}

func (s *Server) handleViewport(c *gin.Context) {
	w, err := strconv.Atoi(c.Query("w"))
	if err != nil || w < 0 {
		s.abortWithError(c, errors.InvalidInput("w must be a non-negative integer"))
		return
	}
	h, _ := strconv.Atoi(c.DefaultQuery("h", "0"))
	c.JSON(http.StatusOK, viewport.NewBadge(viewport.Size{Width: w, Height: h}))
}
