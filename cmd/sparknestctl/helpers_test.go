package main

import (
	"bytes"
	"sync"
)

// syncBuffer is a bytes.Buffer safe for the server goroutine and the test;
// onWrite runs once, after the first write.
type syncBuffer struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	once    sync.Once
	onWrite func()
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	n, err := b.buf.Write(p)
	b.mu.Unlock()

	if b.onWrite != nil {
		b.once.Do(b.onWrite)
	}
	return n, err
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
