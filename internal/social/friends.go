package social

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mathquest/app/internal/models"
)

// FriendsBook holds one player's friends and pending requests.
type FriendsBook struct {
	mu       sync.Mutex
	owner    string
	friends  []models.Friend
	incoming []models.FriendRequest
	outgoing []models.FriendRequest
	dir      *Directory
	now      func() time.Time
}

func NewFriendsBook(owner string, friends []models.Friend, incoming, outgoing []models.FriendRequest, dir *Directory, now func() time.Time) *FriendsBook {
	return &FriendsBook{
		owner:    owner,
		friends:  append([]models.Friend(nil), friends...),
		incoming: append([]models.FriendRequest(nil), incoming...),
		outgoing: append([]models.FriendRequest(nil), outgoing...),
		dir:      dir,
		now:      now,
	}
}

// Friends lists friends online first, then by weekly XP.
func (b *FriendsBook) Friends() []models.Friend {
	b.mu.Lock()
	out := append([]models.Friend(nil), b.friends...)
	b.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].IsOnline != out[j].IsOnline {
			return out[i].IsOnline
		}
		return out[i].WeeklyXP > out[j].WeeklyXP
	})
	return out
}

func (b *FriendsBook) Incoming() []models.FriendRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.FriendRequest(nil), b.incoming...)
}

func (b *FriendsBook) Outgoing() []models.FriendRequest {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.FriendRequest(nil), b.outgoing...)
}

// Search proposes players matching query: the name itself and two variants.
// Friends, the owner and players already requested are left out.
func (b *FriendsBook) Search(query string) []models.Friend {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var out []models.Friend
	for _, name := range []string{query, query + "123", "Pro" + query} {
		if b.isFriend(name) || name == b.owner || b.requested(name) {
			continue
		}
		out = append(out, b.dir.Lookup(name))
	}
	return out
}

func (b *FriendsBook) SendRequest(username string) (models.FriendRequest, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.FriendRequest{}, ErrEmptyUsername
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case username == b.owner:
		return models.FriendRequest{}, ErrSelfRequest
	case b.isFriend(username):
		return models.FriendRequest{}, ErrAlreadyFriends
	case b.requested(username):
		return models.FriendRequest{}, ErrAlreadyRequested
	}

	req := models.FriendRequest{
		ID:     "req-" + uuid.NewString(),
		From:   b.owner,
		To:     username,
		SentAt: b.now(),
		Status: models.FriendPending,
	}
	b.outgoing = append(b.outgoing, req)
	return req, nil
}

// Accept turns an incoming request into a friendship.
func (b *FriendsBook) Accept(requestID string) (models.Friend, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := indexOf(b.incoming, requestID)
	if i < 0 {
		return models.Friend{}, ErrRequestNotFound
	}
	req := b.incoming[i]
	if b.isFriend(req.From) {
		return models.Friend{}, ErrAlreadyFriends
	}
	b.incoming = append(b.incoming[:i], b.incoming[i+1:]...)

	f := b.dir.Lookup(req.From)
	f.FriendsSince = b.now().Format("2006-01-02")
	b.friends = append(b.friends, f)
	return f, nil
}

func (b *FriendsBook) Reject(requestID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := indexOf(b.incoming, requestID)
	if i < 0 {
		return ErrRequestNotFound
	}
	b.incoming = append(b.incoming[:i], b.incoming[i+1:]...)
	return nil
}

func (b *FriendsBook) Cancel(requestID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := indexOf(b.outgoing, requestID)
	if i < 0 {
		return ErrRequestNotFound
	}
	b.outgoing = append(b.outgoing[:i], b.outgoing[i+1:]...)
	return nil
}

func (b *FriendsBook) Remove(username string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, f := range b.friends {
		if f.Username == username {
			b.friends = append(b.friends[:i], b.friends[i+1:]...)
			return nil
		}
	}
	return ErrFriendNotFound
}

func (b *FriendsBook) isFriend(username string) bool {
	for _, f := range b.friends {
		if f.Username == username {
			return true
		}
	}
	return false
}

func (b *FriendsBook) requested(username string) bool {
	for _, r := range b.outgoing {
		if r.To == username {
			return true
		}
	}
	return false
}

func indexOf(reqs []models.FriendRequest, id string) int {
	for i, r := range reqs {
		if r.ID == id {
			return i
		}
	}
	return -1
}
