package session

import "github.com/mathquest/app/internal/models"

type ScreenKind int

const (
	KindUnauthenticated ScreenKind = iota
	KindHome
	KindCategory
	KindQuestion
	KindProfile
	KindRanking
	KindCommunity
	KindPublicProfile
	KindAchievements
	KindFriends
)

var kindNames = [...]string{
	KindUnauthenticated: "unauthenticated",
	KindHome:            "home",
	KindCategory:        "category",
	KindQuestion:        "question",
	KindProfile:         "profile",
	KindRanking:         "ranking",
	KindCommunity:       "community",
	KindPublicProfile:   "publicProfile",
	KindAchievements:    "achievements",
	KindFriends:         "friends",
}

func (k ScreenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Screen is one of the fixed set of screens. Only types in this package
// implement it.
type Screen interface {
	Kind() ScreenKind
	screen()
}

type Unauthenticated struct{}
type Home struct{}
type Profile struct{}
type Ranking struct{}
type Community struct{}
type Achievements struct{}
type Friends struct{}

type Category struct {
	CategoryID string
}

type Question struct {
	Question models.Question
}

// PublicProfile shows another player. From is where Back returns to; nil
// means the community screen.
type PublicProfile struct {
	Username string
	From     Screen
}

func (Unauthenticated) Kind() ScreenKind { return KindUnauthenticated }
func (Home) Kind() ScreenKind            { return KindHome }
func (Category) Kind() ScreenKind        { return KindCategory }
func (Question) Kind() ScreenKind        { return KindQuestion }
func (Profile) Kind() ScreenKind         { return KindProfile }
func (Ranking) Kind() ScreenKind         { return KindRanking }
func (Community) Kind() ScreenKind       { return KindCommunity }
func (PublicProfile) Kind() ScreenKind   { return KindPublicProfile }
func (Achievements) Kind() ScreenKind    { return KindAchievements }
func (Friends) Kind() ScreenKind         { return KindFriends }

func (Unauthenticated) screen() {}
func (Home) screen()            {}
func (Category) screen()        {}
func (Question) screen()        {}
func (Profile) screen()         {}
func (Ranking) screen()         {}
func (Community) screen()       {}
func (PublicProfile) screen()   {}
func (Achievements) screen()    {}
func (Friends) screen()         {}
