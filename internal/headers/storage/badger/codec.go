package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/internal/headers/work"
	"github.com/goodnatureofminers/headeroracle/pkg/safe"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Key layout. Hashes are stored in their internal byte order.
var (
	headerPrefix       = []byte("h/") // h/<hash> -> headerRow
	bestPrefix         = []byte("b/") // b/<height be64> -> hash
	siblingPrefix      = []byte("s/") // s/<hash> -> empty
	disconnectedPrefix = []byte("d/") // d/<parent><child> -> empty
	tipKey             = []byte("m/tip")
	checkpointKey      = []byte("m/checkpoint")
)

type headerRow struct {
	Coin           string `json:"coin"`
	Network        string `json:"network"`
	Hash           string `json:"hash"`
	ParentHash     string `json:"parent_hash"`
	Height         int64  `json:"height"`
	Work           string `json:"work"`
	CumulativeWork string `json:"cumulative_work"`
	Connected      bool   `json:"connected"`
}

type checkpointRow struct {
	Height int64  `json:"height"`
	Hash   string `json:"hash"`
}

func prefixed(prefix []byte, parts ...[]byte) []byte {
	size := len(prefix)
	for _, p := range parts {
		size += len(p)
	}
	key := make([]byte, 0, size)
	key = append(key, prefix...)
	for _, p := range parts {
		key = append(key, p...)
	}
	return key
}

func headerKey(hash chainhash.Hash) []byte {
	return prefixed(headerPrefix, hash[:])
}

func bestKey(height int64) []byte {
	return prefixed(bestPrefix, encodeHeight(height))
}

func siblingKey(hash chainhash.Hash) []byte {
	return prefixed(siblingPrefix, hash[:])
}

func disconnectedKey(parent, child chainhash.Hash) []byte {
	return prefixed(disconnectedPrefix, parent[:], child[:])
}

func encodeHeight(height int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(height))
	return buf
}

func decodeHeight(raw []byte) (int64, error) {
	if len(raw) != 8 {
		return 0, fmt.Errorf("height value has %d bytes", len(raw))
	}
	height, err := safe.Int64(binary.BigEndian.Uint64(raw))
	if err != nil {
		return 0, fmt.Errorf("decode height: %w", err)
	}
	return height, nil
}

func hashFromBytes(raw []byte) (chainhash.Hash, error) {
	var hash chainhash.Hash
	if err := hash.SetBytes(raw); err != nil {
		return chainhash.Hash{}, fmt.Errorf("decode hash: %w", err)
	}
	return hash, nil
}

func encodeState(state model.ChainState) ([]byte, error) {
	h := state.Header
	return json.Marshal(headerRow{
		Coin:           string(h.Chain.Coin),
		Network:        string(h.Chain.Network),
		Hash:           h.Hash.String(),
		ParentHash:     h.ParentHash.String(),
		Height:         h.Height,
		Work:           h.Work.Hex(),
		CumulativeWork: state.CumulativeWork.Hex(),
		Connected:      state.Connected,
	})
}

func decodeState(raw []byte) (model.ChainState, error) {
	var row headerRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return model.ChainState{}, fmt.Errorf("unmarshal header row: %w", err)
	}

	hash, err := chainhash.NewHashFromStr(row.Hash)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("parse hash: %w", err)
	}
	parent, err := chainhash.NewHashFromStr(row.ParentHash)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("parse parent hash: %w", err)
	}
	own, err := work.ParseHex(row.Work)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("parse work: %w", err)
	}
	cumulative, err := work.ParseHex(row.CumulativeWork)
	if err != nil {
		return model.ChainState{}, fmt.Errorf("parse cumulative work: %w", err)
	}

	return model.ChainState{
		Header: model.Header{
			Chain:      model.NewChainType(model.Coin(row.Coin), model.Network(row.Network)),
			Hash:       *hash,
			ParentHash: *parent,
			Height:     row.Height,
			Work:       own,
		},
		CumulativeWork: cumulative,
		Connected:      row.Connected,
	}, nil
}

func encodeCheckpoint(cp model.Checkpoint) ([]byte, error) {
	return json.Marshal(checkpointRow{Height: cp.Height, Hash: cp.Hash.String()})
}

func decodeCheckpoint(raw []byte) (model.Checkpoint, error) {
	var row checkpointRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return model.Checkpoint{}, fmt.Errorf("unmarshal checkpoint: %w", err)
	}
	hash, err := chainhash.NewHashFromStr(row.Hash)
	if err != nil {
		return model.Checkpoint{}, fmt.Errorf("parse checkpoint hash: %w", err)
	}
	return model.Checkpoint{Height: row.Height, Hash: *hash}, nil
}
