package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/headeroracle/internal/headers/model"
)

func parseCheckpoint(raw string) (model.Checkpoint, error) {
	heightPart, hashPart, ok := strings.Cut(raw, ":")
	if !ok {
		return model.Checkpoint{}, fmt.Errorf("checkpoint %q: want height:hash", raw)
	}
	height, err := strconv.ParseInt(heightPart, 10, 64)
	if err != nil || height < 0 {
		return model.Checkpoint{}, fmt.Errorf("checkpoint %q: invalid height", raw)
	}
	hash, err := chainhash.NewHashFromStr(hashPart)
	if err != nil {
		return model.Checkpoint{}, fmt.Errorf("checkpoint %q: %w", raw, err)
	}
	return model.Checkpoint{Height: height, Hash: *hash}, nil
}
