package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contributorsboard/internal/adapters/twitter"
	"contributorsboard/internal/domain"
)

func fallbackFor(u string) twitter.LinkFallback { return twitter.Fallback(u) }

func TestState_Values(t *testing.T) {
	assert.Empty(t, State{Role: domain.RoleAll, Tab: TabPosts, Image: -1}.Values())

	v := State{Query: "maya", Role: domain.RoleBugHunter, TownHall: 9, OpenTw: "x", Tab: TabGallery, Image: 0}.Values()
	assert.Equal(t, "maya", v.Get("q"))
	assert.Equal(t, "Bug Hunter", v.Get("role"))
	assert.Equal(t, "9", v.Get("th"))
	assert.Equal(t, "x", v.Get("tw"))
	assert.Equal(t, "gallery", v.Get("tab"))
	assert.Equal(t, "0", v.Get("img"))
}

func TestPage_Links(t *testing.T) {
	p := &Page{Path: "/people", State: State{Query: "no", Role: domain.RoleMemeLord, OpenID: "c1", Tab: TabGallery, Image: 2}}

	assert.Equal(t, "/people?q=no&role=Meme+Lord", p.CloseLink())
	assert.Equal(t, "/people?open=c4&q=no&role=Meme+Lord", p.OpenLink(&domain.Contributor{ID: "c4"}))
	assert.Equal(t, "/people?q=no&role=Meme+Lord&tw=XZNSEI", p.OpenHandleLink("XZNSEI"))
	assert.Equal(t, "/people?img=0&open=c1&q=no&role=Meme+Lord&tab=gallery", p.ImageLink(0))
	assert.Equal(t, "/awards?img=2&open=c1&role=Meme+Lord&tab=gallery", p.LinkTo("/awards", "q", ""))
	assert.Equal(t, "/people", (&Page{Path: "/people", State: State{Image: -1}}).Link())
}
