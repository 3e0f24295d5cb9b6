package controllers

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"contributorsboard/internal/adapters/render"
	"contributorsboard/internal/adapters/twitter"
	"contributorsboard/internal/delivery/http/helpers"
	"contributorsboard/internal/domain"
)

// maxConcurrentEmbeds bounds the oEmbed lookups made for one detail panel.
const maxConcurrentEmbeds = 4

const pageTitle = "Aztec Contributors"

// BoardController serves the HTML awards and people pages.
type BoardController struct {
	Logger   *slog.Logger
	Service  domain.BoardService
	Embeds   domain.EmbedFetcher // nil disables server-side embeds
	Renderer *render.Renderer
	External bool
}

func NewBoardController(logger *slog.Logger, svc domain.BoardService, embeds domain.EmbedFetcher, renderer *render.Renderer, external bool) *BoardController {
	return &BoardController{
		Logger:   logger,
		Service:  svc,
		Embeds:   embeds,
		Renderer: renderer,
		External: external,
	}
}

// Awards renders the awards view: winners of the selected role grouped by Town Hall.
// The role defaults to Meme Lord when it has been awarded.
func (c *BoardController) Awards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st, err := helpers.ParseState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if st.Role == "" {
		if st.Role, err = c.Service.DefaultAwardRole(ctx); err != nil {
			c.fail(w, r, err)
			return
		}
	}

	page := c.newPage("/awards", st)
	if page.Roles, err = c.Service.AwardRoles(ctx); err != nil {
		c.fail(w, r, err)
		return
	}
	ids, err := c.Service.TownHallIDs(ctx)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	page.TownHallIDs = append([]int{domain.AllTownHalls}, ids...)

	if st.Role != domain.RoleAll {
		groups, err := c.Service.AwardeesByRole(ctx, st.Role, st.TownHall)
		if err != nil {
			c.fail(w, r, err)
			return
		}
		for _, g := range groups {
			vg := render.AwardGroup{TownHall: g.TownHall}
			for _, a := range g.Awardees {
				vg.Awardees = append(vg.Awardees, render.Awardee{Award: a, Avatar: twitter.AvatarOrPlaceholder(a.Twitter, c.External)})
			}
			page.Groups = append(page.Groups, vg)
		}
	}

	if err := c.attachDetail(ctx, page); err != nil {
		c.fail(w, r, err)
		return
	}
	c.render(w, r, render.PageAwards, page)
}

// People renders the directory filtered by role and free-text query.
func (c *BoardController) People(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st, err := helpers.ParseState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if st.Role == "" {
		st.Role = domain.RoleAll
	}

	page := c.newPage("/people", st)
	roles, err := c.Service.Roles(ctx)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	page.Roles = append([]domain.Role{domain.RoleAll}, roles...)

	list, err := c.Service.FilterContributors(ctx, st.Role, st.Query)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	for _, ct := range list {
		page.Cards = append(page.Cards, render.Card{Contributor: ct, Avatar: twitter.AvatarOrPlaceholder(ct.Twitter, c.External)})
	}

	if err := c.attachDetail(ctx, page); err != nil {
		c.fail(w, r, err)
		return
	}
	c.render(w, r, render.PagePeople, page)
}

func (c *BoardController) newPage(path string, st render.State) *render.Page {
	return &render.Page{
		Title:                 pageTitle,
		Path:                  path,
		External:              c.External,
		Assets:                render.ExternalAssets(c.External),
		State:                 st,
		ScriptPollAttempts:    twitter.ScriptPollAttempts,
		ScriptPollDelayMillis: twitter.ScriptPollDelayMillis,
	}
}

// attachDetail resolves the open contributor, if any, and builds its panel.
// The people filter applies to id lookups in both views.
func (c *BoardController) attachDetail(ctx context.Context, page *render.Page) error {
	st := page.State
	role := st.Role
	if page.Path == "/awards" {
		role = domain.RoleAll
	}
	person, err := c.Service.OpenPerson(ctx, role, st.Query, st.OpenID, st.OpenTw)
	if err != nil || person == nil {
		return err
	}

	d := &render.Detail{
		Contributor: person,
		Avatar:      twitter.AvatarOrPlaceholder(person.Twitter, c.External),
		Tab:         st.Tab,
	}
	if st.Tab == render.TabGallery {
		if st.Image >= 0 && len(person.Gallery) > 0 {
			lb := domain.Lightbox{Items: person.Gallery}.Open(st.Image)
			d.Lightbox = &lb
		}
	} else {
		d.Posts = c.posts(ctx, person.Tweets)
	}
	page.Detail = d
	return nil
}

// posts resolves embeds concurrently. Lookups that fail leave EmbedHTML empty
// and the page falls back to a client-side blockquote or a plain link.
func (c *BoardController) posts(ctx context.Context, urls []string) []render.Post {
	posts := make([]render.Post, len(urls))
	for i, u := range urls {
		posts[i] = render.Post{URL: u, Fallback: twitter.Fallback(u)}
		posts[i].StatusID, _ = twitter.StatusID(u)
	}
	if !c.External || c.Embeds == nil {
		return posts
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrentEmbeds)
	for i := range posts {
		g.Go(func() error {
			html, err := c.Embeds.Fetch(ctx, posts[i].URL)
			if err != nil {
				c.Logger.DebugContext(ctx, "embed unavailable", "url", posts[i].URL, "err", err)
				return nil
			}
			posts[i].EmbedHTML = template.HTML(html)
			return nil
		})
	}
	_ = g.Wait()
	return posts
}

func (c *BoardController) render(w http.ResponseWriter, r *http.Request, page string, data *render.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Renderer.Render(w, page, data); err != nil {
		c.fail(w, r, err)
	}
}

func (c *BoardController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrUnknownRole) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
