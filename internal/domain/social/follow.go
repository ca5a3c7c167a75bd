// Package social реализует правила слияния подписок: список отслеживаемых
// профилей - это упорядоченные снимки на момент импорта, а не живые ссылки.
// Слияние по имени пользователя: существующая запись освежается на месте,
// новая добавляется в конец. Порядок хранения - это порядок подписки;
// сортировка по XP - задача отображения, не инвариант хранилища.
package social

import (
	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

// MergeResult describes the outcome of merging a snapshot into a follow list.
type MergeResult struct {
	// Refreshed is true when an existing entry was replaced rather than a
	// new one appended.
	Refreshed bool

	// Peer is the normalized username of the merged snapshot.
	Peer profile.Username
}

// Merge merges an inbound peer snapshot into owner's followedUsers list.
// The merge is atomic with respect to the list: on any error the owner is
// left untouched. The snapshot is sanitized before it is stored, so a
// followed entry never carries credentials or a transitive follow graph.
//
// Following yourself is rejected: a self-referential entry would be
// meaningless and would double the owner on every peer board.
func Merge(owner *profile.Profile, snapshot *profile.Profile) (MergeResult, error) {
	if snapshot == nil || !profile.NormalizeUsername(string(snapshot.Username)).IsValid() {
		return MergeResult{}, shared.ErrInvalidToken
	}

	peer := snapshot.Clone()
	peer.Sanitize()
	peer.Password = ""
	peer.FollowedUsers = nil

	if peer.Username == owner.Username {
		return MergeResult{}, shared.ErrSelfFollow
	}

	for i := range owner.FollowedUsers {
		if owner.FollowedUsers[i].Username == peer.Username {
			owner.FollowedUsers[i] = *peer
			return MergeResult{Refreshed: true, Peer: peer.Username}, nil
		}
	}
	owner.FollowedUsers = append(owner.FollowedUsers, *peer)
	return MergeResult{Refreshed: false, Peer: peer.Username}, nil
}

// Find returns the followed snapshot for a username, if present.
func Find(owner *profile.Profile, username profile.Username) (*profile.Profile, bool) {
	for i := range owner.FollowedUsers {
		if owner.FollowedUsers[i].Username == username {
			return &owner.FollowedUsers[i], true
		}
	}
	return nil, false
}

// PeerFollowedEvent is published when a peer snapshot is merged into a
// follow list.
type PeerFollowedEvent struct {
	shared.BaseEvent
	Owner     profile.Username
	Peer      profile.Username
	Refreshed bool
}

// NewPeerFollowedEvent creates a PeerFollowedEvent. A refresh of an existing
// entry is reported under its own event type.
func NewPeerFollowedEvent(owner profile.Username, res MergeResult) PeerFollowedEvent {
	eventType := shared.EventPeerFollowed
	if res.Refreshed {
		eventType = shared.EventPeerRefreshed
	}
	return PeerFollowedEvent{
		BaseEvent: shared.NewBaseEvent(eventType, owner.String()),
		Owner:     owner,
		Peer:      res.Peer,
		Refreshed: res.Refreshed,
	}
}

// Payload implements shared.Event.
func (e PeerFollowedEvent) Payload() map[string]interface{} {
	p := e.BaseEvent.Payload()
	p["owner"] = e.Owner.String()
	p["peer"] = e.Peer.String()
	p["refreshed"] = e.Refreshed
	return p
}
