package chain

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
	"github.com/goodnatureofminers/headeroracle/internal/headers/work"
	"golang.org/x/crypto/scrypt"
)

// FromWire converts a deserialized 80-byte header into an oracle header. Pass
// model.UnknownHeight when the height was not reported alongside the header.
func FromWire(chainType model.ChainType, header *wire.BlockHeader, height int64) model.Header {
	return model.Header{
		Chain:      chainType,
		Hash:       header.BlockHash(),
		ParentHash: header.PrevBlock,
		Height:     height,
		Work:       work.FromBits(header.Bits),
	}
}

// CheckProofOfWork verifies that the header's proof-of-work hash does not exceed the target
// encoded in its bits.
func CheckProofOfWork(chainType model.ChainType, header *wire.BlockHeader) error {
	target := work.TargetFromBits(header.Bits)
	if target.LessOrEqual(work.NumericHash{}) {
		return fmt.Errorf("header %s: non-positive target", header.BlockHash())
	}

	powHash, err := proofOfWorkHash(chainType, header)
	if err != nil {
		return err
	}
	if work.HashToNumeric(powHash).Greater(target) {
		return fmt.Errorf("header %s: hash above target %s", header.BlockHash(), target.Hex())
	}
	return nil
}

func proofOfWorkHash(chainType model.ChainType, header *wire.BlockHeader) (chainhash.Hash, error) {
	if chainType.Coin != model.LTC {
		return header.BlockHash(), nil
	}

	buf := bytes.NewBuffer(make([]byte, 0, wire.MaxBlockHeaderPayload))
	if err := header.Serialize(buf); err != nil {
		return chainhash.Hash{}, fmt.Errorf("serialize header: %w", err)
	}
	raw := buf.Bytes()
	sum, err := scrypt.Key(raw, raw, 1024, 1, 1, chainhash.HashSize)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("scrypt header: %w", err)
	}
	var h chainhash.Hash
	copy(h[:], sum)
	return h, nil
}
