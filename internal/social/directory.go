package social

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/mathquest/app/internal/gamification"
	"github.com/mathquest/app/internal/models"
)

// Directory resolves a username to friend card data. Known players come from
// the seed list; anyone else gets stats derived from a hash of the name, so
// the same username always looks the same.
type Directory struct {
	known map[string]models.Friend
	now   func() time.Time
}

func NewDirectory(known []models.Friend, now func() time.Time) *Directory {
	d := &Directory{known: make(map[string]models.Friend, len(known)), now: now}
	for _, f := range known {
		d.known[f.Username] = f
	}
	return d
}

func (d *Directory) Lookup(username string) models.Friend {
	if f, ok := d.known[username]; ok {
		f.Badges = append([]string(nil), f.Badges...)
		return f
	}

	h := fnv.New64a()
	h.Write([]byte(username))
	r := rand.New(rand.NewSource(int64(h.Sum64())))

	total := r.Intn(3000) + 500
	f := models.Friend{
		Username:     username,
		TotalXP:      total,
		Level:        gamification.Level(total),
		WeeklyXP:     r.Intn(500) + 50,
		IsOnline:     r.Float64() > 0.7,
		FriendsSince: d.now().AddDate(0, 0, -r.Intn(30)).Format("2006-01-02"),
		Badges:       []string{"🥉"},
	}
	if !f.IsOnline && r.Float64() > 0.5 {
		f.LastSeen = fmt.Sprintf("%d horas atrás", r.Intn(24))
	}
	return f
}
