package roster

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const sidearmTablePage = `<html><body>
<nav class="main-nav"><a href="/">Home</a></nav>
<table class="sidearm-table roster-table">
  <thead>
    <tr><th>#</th><th>Name</th><th>Pos.</th><th>Ht.</th><th>Yr.</th><th>Hometown</th></tr>
  </thead>
  <tbody>
    <tr><td>1</td><td>Alex Ray</td><td>Goalkeeper</td><td>6'2"</td><td>Junior</td><td>Seattle, Wash.</td></tr>
    <tr><td></td><td>23 John   Smith</td><td>Midfielder/Defender</td><td>5-11</td><td>Fr.</td><td>Denver, Colo.</td></tr>
    <tr><td>7</td><td>Sam  Lee  Park</td><td>F</td><td>6 0</td><td>R-Sr.</td><td></td></tr>
    <tr><td>7</td><td>Sam Lee Park</td><td>Forward</td><td></td><td></td><td></td></tr>
    <tr><td>9</td><td> </td><td>D</td></tr>
  </tbody>
</table>
</body></html>`

const sidearmCardPage = `<html><body>
<div class="c-roster">
  <ul>
    <li class="sidearm-roster-player">
      <div class="sidearm-roster-player-jersey"><span>#10</span></div>
      <div class="sidearm-roster-player-name"><h3><a href="/p/1">Diego  Alvarez</a></h3></div>
      <div class="sidearm-roster-player-position"><span>MF</span></div>
      <span class="sidearm-roster-player-height">5'9"</span>
      <span class="sidearm-roster-player-academic-year">So.</span>
      <span class="sidearm-roster-player-hometown">Austin, Texas</span>
    </li>
    <li class="sidearm-roster-player">
      <div class="sidearm-roster-player-name"><h3>Chris Oduya</h3></div>
      <div class="sidearm-roster-player-position">Defender</div>
    </li>
    <li class="sidearm-roster-player">
      <div class="sidearm-roster-player-name">4 Tom Baker</div>
    </li>
    <li class="sidearm-roster-player">
      <div class="sidearm-roster-player-position">GK</div>
    </li>
  </ul>
</div>
</body></html>`

const plainTablePage = `<html><body>
<h1>Men's Soccer</h1>
<table>
  <tr><th>No.</th><th>Player</th><th>Position</th><th>Class</th></tr>
  <tr><td>3</td><td>Marco Rossi</td><td>Defender</td><td>Fr.</td></tr>
  <tr><td>Lena Fischer</td><td>Forward</td></tr>
  <tr><td>Marco</td><td>GK</td></tr>
  <tr><td>Coach</td><td>John Doe</td></tr>
  <tr><td>3</td><td>Marco Rossi</td><td>Defender</td><td>Fr.</td></tr>
</table>
</body></html>`

const virginiaPage = `<html><body>
<ul class="roster-list">
  <li class="roster-card"><span class="roster-card__number">No. 12</span><h3>Leo  Mendes</h3><span class="roster-card__position">Forward</span></li>
  <li class="roster-card"><span class="roster-card__number">12</span><h3>Leo Mendes</h3><span class="roster-card__pos">MF</span></li>
  <li class="roster-card"><h2>Kai</h2></li>
  <li class="roster-card"><div class="player-name">5 Ben Ito</div><span class="position">D</span></li>
</ul>
</body></html>`

const emptyPage = `<html><body><p>Roster coming soon.</p></body></html>`

func loadDocument(t testing.TB, page string) *goquery.Document {
	doc, err := ParseDocument(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func intp(n int) *int {
	return &n
}

func strp(s string) *string {
	return &s
}
