package follower

import "time"

const (
	defaultBatchSize    int64 = 2000
	defaultMinLookback  int64 = 6
	defaultMaxLookback  int64 = 2016
	defaultPollInterval       = 5 * time.Second
	errorSleepDuration        = 5 * time.Second
)
