package filter

import "github.com/jinunyachhyon/folio/internal/models"

// PostGroup is a labelled run of posts in a grouped view.
type PostGroup struct {
	Label string            `json:"label"`
	Posts []models.BlogPost `json:"posts"`
}

// GroupPostsByYear groups posts by year in order of first appearance, so
// a newest-first listing yields newest-first groups.
func GroupPostsByYear(posts []models.BlogPost) []PostGroup {
	var out []PostGroup
	at := make(map[int]int)
	for _, p := range posts {
		y := p.Year()
		i, ok := at[y]
		if !ok {
			i = len(out)
			at[y] = i
			out = append(out, PostGroup{Label: p.Date.Format("2006")})
		}
		out[i].Posts = append(out[i].Posts, p)
	}
	return out
}

// GroupPostsByType splits posts into series parts and standalone posts.
// Empty groups are omitted.
func GroupPostsByType(posts []models.BlogPost) []PostGroup {
	series := PostGroup{Label: InSeries}
	solo := PostGroup{Label: Standalone}
	for _, p := range posts {
		if p.Series != nil {
			series.Posts = append(series.Posts, p)
		} else {
			solo.Posts = append(solo.Posts, p)
		}
	}
	var out []PostGroup
	for _, g := range []PostGroup{series, solo} {
		if len(g.Posts) > 0 {
			out = append(out, g)
		}
	}
	return out
}
