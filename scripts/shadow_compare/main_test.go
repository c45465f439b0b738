package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBodiesEqual(t *testing.T) {
	assert.True(t, bodiesEqual([]byte(`{"a":1,"b":[1,2]}`), []byte(`{"b":[1,2], "a":1}`)))
	assert.True(t, bodiesEqual([]byte("\xef\xbb\xbfid,name\n1,A\n"), []byte("id,name\n1,A")))
	assert.False(t, bodiesEqual([]byte(`[{"id":2},{"id":1}]`), []byte(`[{"id":1},{"id":2}]`)))
	assert.False(t, bodiesEqual([]byte("a,b"), []byte("a,c")))
}

func TestDefaultTargetsCoverEveryResource(t *testing.T) {
	targets := defaultTargets()
	assert.Len(t, targets, 12)
	assert.Equal(t, "/api/schools", targets[0].Path)
	assert.True(t, targets[0].Critical)
	assert.False(t, targets[1].Critical)
}

func TestLoadTargetsDefaultsWithoutFile(t *testing.T) {
	targets, err := loadTargets("")
	assert.NoError(t, err)
	assert.NotEmpty(t, targets)
}
