package store

import "time"

const (
	testWait = 2 * time.Second
	testTick = 5 * time.Millisecond
)
