//go:build !zmq

package main

import (
	"context"

	"go.uber.org/zap"
)

// startBlockSignal without zmq support leaves the follower on its poll interval.
func startBlockSignal(_ context.Context, addr string, logger *zap.Logger) (<-chan struct{}, error) {
	if addr != "" {
		logger.Warn("zmq address ignored, binary built without the zmq tag", zap.String("zmq_addr", addr))
	}
	return nil, nil
}
