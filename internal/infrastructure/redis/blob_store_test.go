package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpen_URLInvalida(t *testing.T) {
	_, err := Open(context.Background(), "", "")
	assert.Error(t, err)

	_, err = Open(context.Background(), "http://no-es-redis", "")
	assert.ErrorContains(t, err, "parse redis URL")
}
