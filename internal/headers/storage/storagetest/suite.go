// Package storagetest holds the behaviour every oracle.Database implementation must share.
package storagetest

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/internal/headers/oracle"
	"github.com/goodnatureofminers/headeroracle/internal/headers/work"
	"github.com/stretchr/testify/suite"
)

var testChain = model.NewChainType(model.BTC, model.Regtest)

// DatabaseSuite runs the Database contract against stores built by NewDatabase.
type DatabaseSuite struct {
	suite.Suite

	// NewDatabase returns an empty store; it is called before every test.
	NewDatabase func() oracle.Database

	ctx    context.Context
	cancel context.CancelFunc
	db     oracle.Database
}

func (s *DatabaseSuite) SetupTest() {
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 30*time.Second)
	s.db = s.NewDatabase()
}

func (s *DatabaseSuite) TearDownTest() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Hash derives a deterministic hash from name.
func Hash(name string) chainhash.Hash {
	return chainhash.DoubleHashH([]byte(name))
}

func (s *DatabaseSuite) state(name, parent string, height int64, cumulative uint64, connected bool) model.ChainState {
	var parentHash chainhash.Hash
	if parent != "" {
		parentHash = Hash(parent)
	}
	return model.ChainState{
		Header: model.Header{
			Chain:      testChain,
			Hash:       Hash(name),
			ParentHash: parentHash,
			Height:     height,
			Work:       work.FromUint64(1),
		},
		CumulativeWork: work.FromUint64(cumulative),
		Connected:      connected,
	}
}

// seed stores g <- a <- b as the best chain.
func (s *DatabaseSuite) seed() {
	s.Require().NoError(s.db.ApplyUpdate(s.ctx, &oracle.Update{
		Headers: []model.ChainState{
			s.state("g", "", 0, 1, true),
			s.state("a", "g", 1, 2, true),
			s.state("b", "a", 2, 3, true),
		},
		BestChain: &oracle.BestChainChange{
			Ancestor: model.Position{Height: model.UnknownHeight},
			Added: []model.Position{
				model.NewPosition(0, Hash("g")),
				model.NewPosition(1, Hash("a")),
				model.NewPosition(2, Hash("b")),
			},
		},
	}))
}

func (s *DatabaseSuite) requireTip(height int64, name string) {
	tip, ok, err := s.db.BestChainTip(s.ctx)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Require().Equal(model.NewPosition(height, Hash(name)), tip)
}

func (s *DatabaseSuite) TestEmpty() {
	_, ok, err := s.db.BestChainTip(s.ctx)
	s.Require().NoError(err)
	s.False(ok)

	state, err := s.db.LoadHeader(s.ctx, Hash("g"))
	s.Require().NoError(err)
	s.Nil(state)

	exists, err := s.db.HeaderExists(s.ctx, Hash("g"))
	s.Require().NoError(err)
	s.False(exists)

	siblings, err := s.db.Siblings(s.ctx)
	s.Require().NoError(err)
	s.Empty(siblings)

	_, ok, err = s.db.Checkpoint(s.ctx)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *DatabaseSuite) TestHeadersAndBestChain() {
	s.seed()
	s.requireTip(2, "b")

	for height, name := range []string{"g", "a", "b"} {
		hash, ok, err := s.db.BestHashAt(s.ctx, int64(height))
		s.Require().NoError(err)
		s.Require().True(ok)
		s.Equal(Hash(name), hash)
	}
	_, ok, err := s.db.BestHashAt(s.ctx, 3)
	s.Require().NoError(err)
	s.False(ok)

	state, err := s.db.LoadHeader(s.ctx, Hash("b"))
	s.Require().NoError(err)
	s.Require().NotNil(state)
	s.Equal(testChain, state.Header.Chain)
	s.Equal(Hash("a"), state.Header.ParentHash)
	s.Equal(int64(2), state.Header.Height)
	s.True(state.Header.Work.Equal(work.FromUint64(1)))
	s.True(state.CumulativeWork.Equal(work.FromUint64(3)))
	s.True(state.Connected)

	exists, err := s.db.HeaderExists(s.ctx, Hash("a"))
	s.Require().NoError(err)
	s.True(exists)
}

func (s *DatabaseSuite) TestReplaceBestChainSegment() {
	s.seed()
	s.Require().NoError(s.db.ApplyUpdate(s.ctx, &oracle.Update{
		Headers: []model.ChainState{
			s.state("b2", "a", 2, 4, true),
			s.state("c2", "b2", 3, 5, true),
		},
		BestChain: &oracle.BestChainChange{
			Ancestor: model.NewPosition(1, Hash("a")),
			Added: []model.Position{
				model.NewPosition(2, Hash("b2")),
				model.NewPosition(3, Hash("c2")),
			},
		},
		AddSiblings: []chainhash.Hash{Hash("b")},
	}))

	s.requireTip(3, "c2")
	hash, ok, err := s.db.BestHashAt(s.ctx, 2)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(Hash("b2"), hash)

	siblings, err := s.db.Siblings(s.ctx)
	s.Require().NoError(err)
	s.Equal([]chainhash.Hash{Hash("b")}, siblings)
}

func (s *DatabaseSuite) TestTruncateBestChain() {
	s.seed()
	s.Require().NoError(s.db.ApplyUpdate(s.ctx, &oracle.Update{
		BestChain: &oracle.BestChainChange{Ancestor: model.NewPosition(1, Hash("a"))},
	}))

	s.requireTip(1, "a")
	_, ok, err := s.db.BestHashAt(s.ctx, 2)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *DatabaseSuite) TestRejectedUpdateChangesNothing() {
	s.seed()

	tests := []struct {
		name   string
		change *oracle.BestChainChange
	}{
		{
			name:   "ancestor not on best chain",
			change: &oracle.BestChainChange{Ancestor: model.NewPosition(1, Hash("x"))},
		},
		{
			name:   "ancestor above tip",
			change: &oracle.BestChainChange{Ancestor: model.NewPosition(5, Hash("b"))},
		},
		{
			name: "added out of order",
			change: &oracle.BestChainChange{
				Ancestor: model.NewPosition(1, Hash("a")),
				Added:    []model.Position{model.NewPosition(3, Hash("c"))},
			},
		},
		{
			name:   "empties best chain",
			change: &oracle.BestChainChange{Ancestor: model.Position{Height: model.UnknownHeight}},
		},
	}

	for _, tt := range tests {
		err := s.db.ApplyUpdate(s.ctx, &oracle.Update{
			Headers:     []model.ChainState{s.state("c", "b", 3, 4, true)},
			BestChain:   tt.change,
			AddSiblings: []chainhash.Hash{Hash("c")},
			Checkpoint:  &oracle.CheckpointChange{Checkpoint: model.Checkpoint{Height: 1, Hash: Hash("a")}},
		})
		s.Require().Error(err, tt.name)

		s.requireTip(2, "b")
		state, err := s.db.LoadHeader(s.ctx, Hash("c"))
		s.Require().NoError(err)
		s.Nil(state, tt.name)
		siblings, err := s.db.Siblings(s.ctx)
		s.Require().NoError(err)
		s.Empty(siblings, tt.name)
		_, ok, err := s.db.Checkpoint(s.ctx)
		s.Require().NoError(err)
		s.False(ok, tt.name)
	}
}

func (s *DatabaseSuite) TestDisconnectedEdges() {
	s.seed()
	s.Require().NoError(s.db.ApplyUpdate(s.ctx, &oracle.Update{
		Headers: []model.ChainState{
			s.state("y", "x", model.UnknownHeight, 0, false),
			s.state("z", "x", model.UnknownHeight, 0, false),
		},
		AddDisconnected: []oracle.DisconnectedEdge{
			{Parent: Hash("x"), Child: Hash("y")},
			{Parent: Hash("x"), Child: Hash("z")},
		},
	}))

	children, err := s.db.DisconnectedChildren(s.ctx, Hash("x"))
	s.Require().NoError(err)
	s.ElementsMatch([]chainhash.Hash{Hash("y"), Hash("z")}, children)

	state, err := s.db.LoadHeader(s.ctx, Hash("y"))
	s.Require().NoError(err)
	s.Require().NotNil(state)
	s.False(state.Connected)
	s.Equal(model.UnknownHeight, state.Header.Height)

	s.Require().NoError(s.db.ApplyUpdate(s.ctx, &oracle.Update{
		Headers:            []model.ChainState{s.state("y", "x", 4, 6, true)},
		RemoveDisconnected: []oracle.DisconnectedEdge{{Parent: Hash("x"), Child: Hash("y")}},
	}))

	children, err = s.db.DisconnectedChildren(s.ctx, Hash("x"))
	s.Require().NoError(err)
	s.Equal([]chainhash.Hash{Hash("z")}, children)

	state, err = s.db.LoadHeader(s.ctx, Hash("y"))
	s.Require().NoError(err)
	s.Require().NotNil(state)
	s.True(state.Connected)
	s.Equal(int64(4), state.Header.Height)

	children, err = s.db.DisconnectedChildren(s.ctx, Hash("unknown"))
	s.Require().NoError(err)
	s.Empty(children)
}

func (s *DatabaseSuite) TestSiblings() {
	s.seed()
	s.Require().NoError(s.db.ApplyUpdate(s.ctx, &oracle.Update{
		AddSiblings: []chainhash.Hash{Hash("p"), Hash("q")},
	}))
	s.Require().NoError(s.db.ApplyUpdate(s.ctx, &oracle.Update{
		AddSiblings:    []chainhash.Hash{Hash("r")},
		RemoveSiblings: []chainhash.Hash{Hash("p"), Hash("missing")},
	}))

	siblings, err := s.db.Siblings(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]chainhash.Hash{Hash("q"), Hash("r")}, siblings)
}

func (s *DatabaseSuite) TestCheckpoint() {
	s.seed()
	cp := model.Checkpoint{Height: 2, Hash: Hash("b")}

	s.Require().NoError(s.db.ApplyUpdate(s.ctx, &oracle.Update{
		Checkpoint: &oracle.CheckpointChange{Checkpoint: cp},
	}))
	got, ok, err := s.db.Checkpoint(s.ctx)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.Equal(cp, got)

	s.Require().NoError(s.db.ApplyUpdate(s.ctx, &oracle.Update{
		Checkpoint: &oracle.CheckpointChange{Clear: true},
	}))
	_, ok, err = s.db.Checkpoint(s.ctx)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *DatabaseSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.db.ApplyUpdate(ctx, &oracle.Update{AddSiblings: []chainhash.Hash{Hash("p")}})
	s.Require().ErrorIs(err, context.Canceled)

	siblings, err := s.db.Siblings(s.ctx)
	s.Require().NoError(err)
	s.Empty(siblings)
}
