package feed

import (
	"fmt"
	"math/rand"
	"time"
	"unicode"
	"unicode/utf8"
)

// baseMockID anchors the fabricated tweet id sequence
const baseMockID int64 = 1942352849243160964

// mockTexts is the fixed corpus the post generator draws from, in
// chronological order. Batch size is capped at its length
var mockTexts = []string{
	"Firmamos un convenio con el MTC para mejorar y modernizar más de 200 paraderos en Miraflores.",
	"¡Buenas noticias! Gracias a nuestras gestiones, iniciaremos la remodelación del Parque Kennedy.",
	"Seguimos trabajando por una ciudad más verde. Hoy sembramos 50 nuevos árboles en Av. Arequipa.",
	"Participamos en el Foro de Seguridad Ciudadana para fortalecer la coordinación con Serenazgo.",
	"Iniciamos el programa 'Miraflores sin Ruido', promoviendo el respeto por los niveles sonoros urbanos.",
	"Reforzamos la iluminación pública en Av. Benavides y Ricardo Palma para mayor seguridad vecinal.",
	"Campaña gratuita de salud en el Parque Reducto N°2 este fin de semana. ¡Te esperamos!",
	"Inauguramos nueva ciclovía conectando Av. Pardo con el Malecón Cisneros.",
	"Feria de emprendimiento local este sábado en el Parque Central. ¡Apoya a nuestros vecinos!",
	"Implementamos cámaras con inteligencia artificial para reforzar la vigilancia en zonas críticas.",
}

// commentTexts is the reply phrase pool for the comment generator
var commentTexts = []string{
	"¡Excelente iniciativa!",
	"Me parece muy positivo para la comunidad.",
	"Gracias por mantenernos informados.",
	"Espero que esto mejore la seguridad en la zona.",
	"Ojalá continúen con más proyectos como este.",
}

// Generator fabricates Twitter-v2 shaped batches. It is NOT safe for
// concurrent use; construct one per request or guard externally
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// Option customizes a Generator
type Option func(*Generator)

// WithClock overrides the wall clock (test seam)
func WithClock(fn func() time.Time) Option {
	return func(g *Generator) { g.now = fn }
}

// NewGenerator returns a Generator seeded from seed.
// Same seed, same inputs, same batch
func NewGenerator(seed int64, opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Posts fabricates min(limit, corpus size) posts for username with created_at
// values interpolated strictly inside (start, end). The interpolation runs
// chronologically; the returned data array is reversed to newest-first to
// match the upstream ordering convention
func (g *Generator) Posts(username string, start, end time.Time, limit int) PostBatch {
	userID := fmt.Sprintf("user_%d", 1000+g.rng.Intn(9000))
	nextToken := fmt.Sprintf("b%d", 10000+g.rng.Intn(90000))
	prevToken := fmt.Sprintf("a%d", 10000+g.rng.Intn(90000))

	if limit < 0 {
		limit = 0
	}
	if limit > len(mockTexts) {
		limit = len(mockTexts)
	}

	delta := end.Sub(start)
	step := delta / time.Duration(limit+1)

	posts := make([]Post, 0, limit)
	for i := 0; i < limit; i++ {
		createdAt := start.Add(step * time.Duration(i+1))
		id := fmt.Sprintf("%d", baseMockID+int64(i))

		posts = append(posts, Post{
			ID:                  id,
			Text:                mockTexts[i],
			CreatedAt:           stamp(createdAt),
			EditHistoryTweetIDs: []string{id},
			Lang:                "es",
			PublicMetrics: PublicMetrics{
				RetweetCount: g.rng.Intn(51),
				ReplyCount:   g.rng.Intn(11),
				LikeCount:    g.rng.Intn(151),
				QuoteCount:   g.rng.Intn(6),
			},
			PossiblySensitive: false,
			Source:            "Twitter Web App",
			AuthorID:          userID,
		})
	}

	meta := Meta{
		ResultCount:   len(posts),
		NextToken:     nextToken,
		PreviousToken: prevToken,
	}
	if len(posts) > 0 {
		// pre-reversal: last element is the newest
		newest := posts[len(posts)-1].ID
		oldest := posts[0].ID
		meta.NewestID = &newest
		meta.OldestID = &oldest
	}

	data := make([]Post, len(posts))
	for i, p := range posts {
		data[len(posts)-1-i] = p
	}

	return PostBatch{
		Data: data,
		Includes: Includes{
			Users: []Author{{
				ID:          userID,
				Name:        capitalize(username),
				Username:    username,
				Description: fmt.Sprintf("Cuenta mock de @%s para pruebas de análisis social.", username),
				Verified:    true,
				CreatedAt:   stamp(start.AddDate(0, 0, -400)),
				PublicMetrics: AuthorMetrics{
					FollowersCount: 4520,
					FollowingCount: 180,
					TweetCount:     10240,
					ListedCount:    32,
				},
				ProfileImageURL: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", username),
			}},
		},
		Meta: meta,
	}
}

// Comments fabricates replies for each post id. Every input id gets an entry
// with between 1 and maxPerPost comments; created_at values fall within the
// trailing ~7 days (0 to 10000 minutes before now)
func (g *Generator) Comments(postIDs []string, maxPerPost int) map[string][]Comment {
	if maxPerPost < 1 {
		maxPerPost = 1
	}

	out := make(map[string][]Comment, len(postIDs))
	for _, postID := range postIDs {
		n := 1 + g.rng.Intn(maxPerPost)
		comments := make([]Comment, 0, n)
		for i := 0; i < n; i++ {
			createdAt := g.now().UTC().Add(-time.Duration(g.rng.Intn(10001)) * time.Minute)
			comments = append(comments, Comment{
				ID:         fmt.Sprintf("%s_c%d", postID, i),
				TweetID:    postID,
				Text:       commentTexts[g.rng.Intn(len(commentTexts))],
				CreatedAt:  stamp(createdAt),
				AuthorID:   fmt.Sprintf("user_%d", 1000+g.rng.Intn(9000)),
				LikeCount:  g.rng.Intn(51),
				ReplyCount: g.rng.Intn(11),
			})
		}
		out[postID] = comments
	}
	return out
}

// stamp renders t as an RFC3339 UTC timestamp with a Z suffix
func stamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
