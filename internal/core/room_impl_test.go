package core

import (
	"sync"
	"testing"

	"github.com/dkeye/Plaza/internal/domain"
	"github.com/dkeye/Plaza/internal/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "s3cret"

func newTestRoom(max int) RoomService {
	return NewRoomService(domain.Room{
		ID:               domain.NewRoomID(),
		FriendlyName:     "Test",
		IsPubliclyListed: true,
		MaxOccupancy:     max,
	}, testSecret)
}

type recordingListener struct {
	mu        sync.Mutex
	moved     []domain.Participant
	joined    []domain.Participant
	left      []domain.Participant
	destroyed int
}

func (l *recordingListener) OnParticipantMoved(p domain.Participant) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.moved = append(l.moved, p)
}

func (l *recordingListener) OnParticipantJoined(p domain.Participant) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.joined = append(l.joined, p)
}

func (l *recordingListener) OnParticipantLeft(p domain.Participant) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.left = append(l.left, p)
}

func (l *recordingListener) OnRoomDestroyed() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroyed++
}

func TestRoom_Join_UpToCapacity(t *testing.T) {
	req := require.New(t)
	room := newTestRoom(3)
	tokens := map[domain.SessionToken]struct{}{}

	// When three participants join a room of three
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		s, err := room.Join(name)
		req.NoError(err)
		tokens[s.Token] = struct{}{}
	}

	// Then every token is unique and the next join is rejected
	req.Len(tokens, 3)
	req.Equal(3, room.MemberCount())
	_, err := room.Join("Dave")
	req.ErrorIs(err, domain.ErrRoomFull)
	req.Equal(3, room.MemberCount())
}

func TestRoom_Join_RejectsEmptyDisplayName(t *testing.T) {
	req := require.New(t)
	room := newTestRoom(3)

	_, err := room.Join("")

	req.ErrorIs(err, domain.ErrValidation)
	req.Zero(room.MemberCount())
}

func TestRoom_SessionByToken_Lifecycle(t *testing.T) {
	req := require.New(t)
	room := newTestRoom(5)
	s, err := room.Join("Alice")
	req.NoError(err)

	got, ok := room.SessionByToken(s.Token)
	req.True(ok)
	req.Same(s, got)
	req.Equal("Alice", got.DisplayName())

	// When the session is destroyed twice
	room.Leave(s)
	room.DestroySession(s)

	// Then lookups miss and the room is empty
	_, ok = room.SessionByToken(s.Token)
	req.False(ok)
	req.Zero(room.MemberCount())
}

func TestRoom_Join_NotifiesAttachedListeners(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	room := newTestRoom(5)
	alice, err := room.Join("Alice")
	req.NoError(err)

	listener := mocks.NewMockListener(ctrl)
	req.NoError(room.AttachListener(alice, listener))

	var announced domain.Participant
	listener.EXPECT().OnParticipantJoined(gomock.Any()).
		Do(func(p domain.Participant) { announced = p }).
		Times(1)

	// When Bob joins
	bob, err := room.Join("Bob")
	req.NoError(err)

	// Then Alice's listener saw Bob with the default position
	req.Equal(bob.ParticipantID(), announced.ID)
	req.Equal("Bob", announced.DisplayName)
	req.Equal(domain.DefaultPosition(), announced.Position)
}

func TestRoom_UpdatePosition_OnlyListenersAttachedBefore(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	room := newTestRoom(5)
	alice, err := room.Join("Alice")
	req.NoError(err)

	before := mocks.NewMockListener(ctrl)
	after := mocks.NewMockListener(ctrl)
	pos := domain.Position{X: 12, Y: 34, Orientation: domain.OrientationLeft, IsMoving: true}

	// Given a listener attached before the move
	room.AddListener(before)
	before.EXPECT().OnParticipantMoved(domain.Participant{
		ID:          alice.ParticipantID(),
		DisplayName: "Alice",
		Position:    pos,
	}).Times(1)

	// When Alice moves and another listener attaches afterwards
	room.UpdatePosition(alice, pos)
	room.AddListener(after)

	// Then the late listener has no history and the snapshot carries the move
	members := room.MembersSnapshot()
	req.Len(members, 1)
	req.Equal(pos, members[0].Position)
}

func TestRoom_UpdatePosition_IgnoresForeignSession(t *testing.T) {
	req := require.New(t)
	room := newTestRoom(5)
	other := newTestRoom(5)
	stranger, err := other.Join("Mallory")
	req.NoError(err)
	listener := &recordingListener{}
	room.AddListener(listener)

	room.UpdatePosition(stranger, domain.Position{X: 1, Orientation: domain.OrientationBack})
	room.UpdatePosition(nil, domain.DefaultPosition())

	req.Empty(listener.moved)
}

func TestRoom_Leave_NotifiesRemainingListenersAndDetachesOwn(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	room := newTestRoom(5)
	alice, err := room.Join("Alice")
	req.NoError(err)
	bob, err := room.Join("Bob")
	req.NoError(err)

	aliceListener := mocks.NewMockListener(ctrl)
	bobListener := mocks.NewMockListener(ctrl)
	req.NoError(room.AttachListener(alice, aliceListener))
	req.NoError(room.AttachListener(bob, bobListener))

	// Given only Bob's listener hears about Alice leaving
	bobListener.EXPECT().OnParticipantLeft(gomock.Any()).
		Do(func(p domain.Participant) { req.Equal(alice.ParticipantID(), p.ID) }).
		Times(1)
	bobListener.EXPECT().OnParticipantMoved(gomock.Any()).Times(1)

	// When Alice leaves and Bob moves
	room.Leave(alice)
	room.UpdatePosition(bob, domain.Position{X: 3, Orientation: domain.OrientationRight})

	// Then Alice's detached listener received nothing
	req.Equal(1, room.MemberCount())
	req.ErrorIs(room.AttachListener(alice, aliceListener), domain.ErrNotFound)
}

func TestRoom_AdminOperations_RequireExactSecret(t *testing.T) {
	wrongSecrets := []string{"", "wrong", testSecret + "x", testSecret[:3], " " + testSecret}

	for _, secret := range wrongSecrets {
		t.Run("secret="+secret, func(t *testing.T) {
			req := require.New(t)
			room := newTestRoom(5)

			req.ErrorIs(room.Rename(secret, "Other"), domain.ErrUnauthorized)
			req.ErrorIs(room.SetVisibility(secret, false), domain.ErrUnauthorized)
			req.ErrorIs(room.Destroy(secret), domain.ErrUnauthorized)

			meta := room.Room()
			req.Equal("Test", meta.FriendlyName)
			req.True(meta.IsPubliclyListed)
			req.False(room.Destroyed())
		})
	}

	t.Run("exact secret", func(t *testing.T) {
		req := require.New(t)
		room := newTestRoom(5)

		req.NoError(room.Rename(testSecret, "Renamed"))
		req.NoError(room.SetVisibility(testSecret, false))
		meta := room.Room()
		req.Equal("Renamed", meta.FriendlyName)
		req.False(meta.IsPubliclyListed)
		req.NoError(room.Destroy(testSecret))
	})
}

func TestRoom_Update_Semantics(t *testing.T) {
	req := require.New(t)
	room := newTestRoom(5)
	empty := ""
	private := false

	// A request with neither field is a no-op success
	req.NoError(room.Update(testSecret, nil, nil))
	req.Equal("Test", room.Room().FriendlyName)

	// An empty name fails validation and nothing changes, not even visibility
	req.ErrorIs(room.Update(testSecret, &empty, &private), domain.ErrValidation)
	req.True(room.Room().IsPubliclyListed)

	// A wrong secret with no fields is still unauthorized
	req.ErrorIs(room.Update("nope", nil, nil), domain.ErrUnauthorized)
}

func TestRoom_Destroy_NotifiesAndDisconnectsEverything(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	room := newTestRoom(5)
	alice, err := room.Join("Alice")
	req.NoError(err)
	bob, err := room.Join("Bob")
	req.NoError(err)

	aliceListener := mocks.NewMockListener(ctrl)
	bobListener := mocks.NewMockListener(ctrl)
	req.NoError(room.AttachListener(alice, aliceListener))
	req.NoError(room.AttachListener(bob, bobListener))
	aliceListener.EXPECT().OnRoomDestroyed().Times(1)
	bobListener.EXPECT().OnRoomDestroyed().Times(1)

	// When the room is destroyed
	req.NoError(room.Destroy(testSecret))

	// Then no session survives and the room is terminal
	_, ok := room.SessionByToken(alice.Token)
	req.False(ok)
	_, ok = room.SessionByToken(bob.Token)
	req.False(ok)
	req.Zero(room.MemberCount())
	req.True(room.Destroyed())

	room.UpdatePosition(alice, domain.DefaultPosition())
	room.DestroySession(bob)
	_, err = room.Join("Carol")
	req.ErrorIs(err, domain.ErrRoomDestroyed)
	req.ErrorIs(room.Destroy(testSecret), domain.ErrRoomDestroyed)
	req.ErrorIs(room.Rename(testSecret, "x"), domain.ErrRoomDestroyed)
}

func TestRoom_UpdatePosition_PerParticipantOrder(t *testing.T) {
	req := require.New(t)
	const movers, moves = 4, 200
	room := newTestRoom(movers)
	listener := &recordingListener{}
	room.AddListener(listener)

	sessions := make([]*Session, 0, movers)
	for i := 0; i < movers; i++ {
		s, err := room.Join("p" + string(rune('a'+i)))
		req.NoError(err)
		sessions = append(sessions, s)
	}

	// When every participant moves concurrently
	var wg sync.WaitGroup
	for _, s := range sessions {
		wg.Add(1)
		go func(s *Session) {
			defer wg.Done()
			for i := 1; i <= moves; i++ {
				room.UpdatePosition(s, domain.Position{X: float64(i), Orientation: domain.OrientationFront, IsMoving: true})
			}
		}(s)
	}
	wg.Wait()

	// Then the listener saw each participant's moves in apply order
	req.Len(listener.moved, movers*moves)
	last := map[domain.ParticipantID]float64{}
	for _, p := range listener.moved {
		req.Greater(p.Position.X, last[p.ID])
		last[p.ID] = p.Position.X
	}
	for _, s := range sessions {
		req.Equal(float64(moves), last[s.ParticipantID()])
	}
}

func TestRoom_ConcurrentJoinLeave_KeepsSetsConsistent(t *testing.T) {
	req := require.New(t)
	room := newTestRoom(10)
	listener := &recordingListener{}
	room.AddListener(listener)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		full int
	)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := room.Join("guest")
			if err != nil {
				mu.Lock()
				full++
				mu.Unlock()
				return
			}
			room.UpdatePosition(s, domain.DefaultPosition())
			room.Leave(s)
		}()
	}
	wg.Wait()

	req.Zero(room.MemberCount())
	req.Len(listener.left, len(listener.joined))
	req.Equal(40, len(listener.joined)+full)
}
